package models

import "time"

// RefreshToken is one issued refresh token. Each is single use: redeeming
// it deletes the row and issues a successor.
type RefreshToken struct {
	ID      string
	UserID  string
	Token   string
	Expires time.Time
}

// ExpiredAt reports whether the token can no longer be redeemed at now.
func (t *RefreshToken) ExpiredAt(now time.Time) bool {
	return !now.Before(t.Expires)
}
