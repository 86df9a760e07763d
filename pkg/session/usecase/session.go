package usecase

import (
	"fmt"
	"sync"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	sessionPkg "github.com/SNEHARUTH11/fina/pkg/session"
)

type JwtClaims struct {
	User UserClaims `json:"user"`
	jwt.StandardClaims
}

type UserClaims struct {
	UserName string `json:"username"`
	UserID   int64  `json:"id"`
}

type SessRepo interface {
	Add(session *sessionPkg.Session) error
	Get(userID int64) (*sessionPkg.Session, error)
}

// SessionsManager issues and checks sessions. The simulation is inert
// while Active is false.
type SessionsManager struct {
	Repo SessRepo

	mux    sync.Mutex
	expiry map[int64]int64
}

var (
	TokenSecret = []byte("der parol")
)

func NewSessionsManager(repo SessRepo) *SessionsManager {
	return &SessionsManager{
		Repo:   repo,
		expiry: map[int64]int64{},
	}
}

func ParseSecretGetter(token *jwt.Token) (interface{}, error) {
	method, ok := token.Method.(*jwt.SigningMethodHMAC)
	if !ok || method.Alg() != "HS256" {
		return nil, fmt.Errorf("bad sign method")
	}
	return TokenSecret, nil
}

func (sm *SessionsManager) GetSession(userID int64) (*sessionPkg.Session, error) {
	sess, err := sm.Repo.Get(userID)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

func (sm *SessionsManager) CreateSession(userID int64, login string, expiresAt time.Time) (string, error) {
	newSession := &sessionPkg.Session{
		UserID:    userID,
		Login:     login,
		ExpiresAt: expiresAt.Unix(),
	}

	err := sm.Repo.Add(newSession)
	if err != nil {
		return "", err
	}

	sm.mux.Lock()
	sm.expiry[userID] = newSession.ExpiresAt
	sm.mux.Unlock()

	claims := &JwtClaims{
		User: UserClaims{UserName: login, UserID: userID},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: newSession.ExpiresAt,
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(TokenSecret)
}

// Active reports whether any session has not yet expired.
func (sm *SessionsManager) Active() bool {
	sm.mux.Lock()
	defer sm.mux.Unlock()

	now := time.Now().Unix()
	for userID, exp := range sm.expiry {
		if exp > now {
			return true
		}
		delete(sm.expiry, userID)
	}
	return false
}
