package models

import "github.com/lib/pq"

// User represents a registered account. Podcasts holds the ids of the
// podcasts the user is subscribed to, in subscription order.
type User struct {
	ID       string         `db:"id" json:"id"`
	Email    string         `db:"email" json:"email"`
	PassHash string         `db:"pass_hash" json:"-"`
	Podcasts pq.StringArray `db:"podcasts" json:"podcasts"`
}

// Subscribed reports whether the user's list already contains podcastID.
func (u *User) Subscribed(podcastID string) bool {
	for _, id := range u.Podcasts {
		if id == podcastID {
			return true
		}
	}
	return false
}
