package models

import "time"

// AuthToken is an opaque bearer token tied to a user and an expiry instant.
type AuthToken struct {
	Token   string    `db:"token" json:"token"`
	Expires time.Time `db:"expires" json:"expires"`
	UserID  string    `db:"user_id" json:"user_id"`
}

// Expired returns whether or not the token is expired.
func (t *AuthToken) Expired() bool {
	return !time.Now().Before(t.Expires)
}

// Valid returns whether or not the token is not expired.
func (t *AuthToken) Valid() bool {
	return !t.Expired()
}
