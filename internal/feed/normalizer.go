// Package feed turns a raw RSS document into Podcast and Episode records.
// Both transforms are pure: nothing here touches the store or the network.
package feed

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/yradunchev/podsub/internal/apperr"
	"github.com/yradunchev/podsub/internal/models"
)

// Normalize parses raw feed bytes into one Podcast plus its episodes, in
// document order. The podcast's canonical URL is sourceURL, not anything
// the document claims about itself. A parse failure on any single entry
// fails the whole feed; callers persist either everything or nothing.
func Normalize(sourceURL string, raw []byte) (models.Podcast, []models.Episode, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil || parsed == nil {
		return models.Podcast{}, nil, apperr.Parse("could not parse podcast feed")
	}

	podcast := models.Podcast{
		ID:          uuid.NewString(),
		Title:       parsed.Title,
		Description: parsed.Description,
		Explicit:    explicit(parsed),
		URL:         sourceURL,
	}
	if parsed.Image != nil {
		podcast.Image = parsed.Image.URL
	}

	episodes := make([]models.Episode, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		episode, err := MapEpisode(podcast.ID, item)
		if err != nil {
			return models.Podcast{}, nil, err
		}
		episodes = append(episodes, episode)
	}

	return podcast, episodes, nil
}

func explicit(parsed *gofeed.Feed) bool {
	if parsed.ITunesExt == nil {
		return false
	}
	switch strings.ToLower(parsed.ITunesExt.Explicit) {
	case "yes", "true", "explicit":
		return true
	}
	return false
}
