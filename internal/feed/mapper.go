package feed

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/yradunchev/podsub/internal/apperr"
	"github.com/yradunchev/podsub/internal/models"
)

const enclosureType = "audio/mpeg"

// MapEpisode normalizes one feed entry into an Episode owned by podcastID.
// An entry without an audio/mpeg enclosure or a publish time cannot be
// represented and fails with a parse error.
func MapEpisode(podcastID string, item *gofeed.Item) (models.Episode, error) {
	if podcastID == "" || item == nil {
		return models.Episode{}, apperr.Parse("could not parse podcast feed")
	}
	if item.PublishedParsed == nil {
		return models.Episode{}, apperr.Parse("could not parse podcast feed")
	}

	episode := models.Episode{
		ID:          uuid.NewString(),
		PodcastID:   podcastID,
		GUID:        item.GUID,
		Description: item.Description,
		ReleaseDate: releaseDate(*item.PublishedParsed),
	}

	if item.ITunesExt != nil {
		episode.Duration = parseDuration(item.ITunesExt.Duration)
	}

	// Every audio/mpeg enclosure overwrites the previous match, so the
	// last one in document order wins.
	for _, enc := range item.Enclosures {
		if enc.Type == enclosureType {
			episode.Link = enc.URL
			episode.Filesize = parseFilesize(enc.Length)
		}
	}
	if episode.Link == "" {
		return models.Episode{}, apperr.Parse("could not parse podcast feed")
	}

	return episode, nil
}

// releaseDate renders the publish time as UTC ISO-8601 text, dropping
// sub-second precision, whatever timezone the feed declared.
func releaseDate(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

// parseDuration converts an itunes duration string to whole seconds. Only
// the full H:M:S form is understood; the two-part M:S form, empty text and
// anything malformed all become 0. The M:S fallthrough looks like a bug but
// is long-standing behavior that stored data depends on, so it stays.
func parseDuration(text string) int {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0
	}
	return h*3600 + m*60 + sec
}

// parseFilesize is best-effort: enclosure lengths are frequently absent or
// junk, and a zero size is acceptable.
func parseFilesize(text string) int64 {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
