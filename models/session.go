package models

import "time"

// Session is the client-held identity: bearer token plus cached profile.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"-"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        User      `json:"user"`
	ValidatedAt time.Time `json:"validatedAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
