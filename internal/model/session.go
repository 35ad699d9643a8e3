package model

import "time"

type Session struct {
	ID           string
	UserID       int64
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthData то, что отдаём клиенту после регистрации/логина
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
