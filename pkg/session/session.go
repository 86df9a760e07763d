package session

type Session struct {
	UserID    int64  `json:"userId"`
	Login     string `json:"login"`
	ExpiresAt int64  `json:"expiresAt"`
}
