package models

// Podcast is a feed that at least one user has subscribed to. URL is the
// canonical feed URL and is unique across all podcasts; it is the key used
// to decide whether two subscriptions refer to the same feed. A podcast is
// created once, by the first subscriber, and not updated afterwards.
type Podcast struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Explicit    bool   `db:"explicit" json:"explicit"`
	URL         string `db:"url" json:"url"`
	Image       string `db:"image" json:"image"`
}
