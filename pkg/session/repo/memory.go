package repo

import (
	"fmt"
	"sync"
	"time"

	sessionPkg "github.com/SNEHARUTH11/fina/pkg/session"
)

// SessionsMem is the in-process store used when no redis addr is
// configured.
type SessionsMem struct {
	mux      sync.Mutex
	sessions map[int64]*sessionPkg.Session
}

func NewMemDB() *SessionsMem {
	return &SessionsMem{sessions: map[int64]*sessionPkg.Session{}}
}

func (sr *SessionsMem) Add(session *sessionPkg.Session) error {
	sr.mux.Lock()
	sr.sessions[session.UserID] = session
	sr.mux.Unlock()
	return nil
}

func (sr *SessionsMem) Get(userID int64) (*sessionPkg.Session, error) {
	sr.mux.Lock()
	defer sr.mux.Unlock()

	sess, ok := sr.sessions[userID]
	if !ok || sess.ExpiresAt <= time.Now().Unix() {
		return nil, fmt.Errorf("session not found")
	}
	return sess, nil
}
