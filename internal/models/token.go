package models

import "time"

// TokenPayload is what the desk knows about its backend session
type TokenPayload struct {
	UserID    string
	StoreID   string
	ExpiresAt time.Time
}

// Expired reports whether token is past its expiry
func (p *TokenPayload) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt)
}
