package models

// Episode is a single entry of a podcast feed. ReleaseDate is UTC ISO-8601
// text, Duration is whole seconds, Link is the audio enclosure URL and is
// always non-empty for a persisted episode. Filesize is best-effort.
type Episode struct {
	ID          string `db:"id" json:"id"`
	PodcastID   string `db:"podcast_id" json:"podcast_id"`
	GUID        string `db:"guid" json:"guid"`
	Description string `db:"description" json:"description"`
	ReleaseDate string `db:"release_date" json:"release_date"`
	Duration    int    `db:"duration" json:"duration"`
	Link        string `db:"link" json:"link"`
	Filesize    int64  `db:"filesize" json:"filesize"`
}
