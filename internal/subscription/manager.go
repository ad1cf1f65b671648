// Package subscription orchestrates the ingestion pipeline: fetch,
// normalize, dedupe, persist, then mutate the user's subscription list.
package subscription

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/yradunchev/podsub/internal/apperr"
	"github.com/yradunchev/podsub/internal/feed"
	"github.com/yradunchev/podsub/internal/fetch"
	"github.com/yradunchev/podsub/internal/models"
	"github.com/yradunchev/podsub/internal/store"
)

// episodePageSize is the fixed episode window returned by GetSubscription.
const episodePageSize = 10

type Manager struct {
	store   *store.Store
	fetcher fetch.Fetcher
}

func New(s *store.Store, f fetch.Fetcher) *Manager {
	return &Manager{store: s, fetcher: f}
}

// Subscribe adds the podcast at feedURL to the user's list. If a podcast
// with that canonical URL already exists it is returned as stored, with no
// re-fetch: podcast metadata and episodes are frozen at first ingestion
// even if the live feed has since changed. Otherwise the feed is fetched
// and normalized, and only after normalization fully succeeds are the
// podcast, its episodes and the updated user written, in that order. The
// three writes are not atomic; a crash in between can leave a podcast
// without episodes or without a subscriber.
func (m *Manager) Subscribe(ctx context.Context, user *models.User, feedURL string) (*models.Podcast, error) {
	if user == nil {
		return nil, apperr.Authentication("authentication failure")
	}
	if feedURL == "" {
		return nil, apperr.Validation("missing required field url")
	}

	existing, err := m.store.GetPodcastByURL(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !user.Subscribed(existing.ID) {
			user.Podcasts = append(user.Podcasts, existing.ID)
			if err := m.store.PutUser(ctx, user); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	status, body, err := m.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", feedURL, err)
	}
	if status != http.StatusOK {
		return nil, apperr.Fetch(status, "could not fetch podcast URL")
	}

	podcast, episodes, err := feed.Normalize(feedURL, body)
	if err != nil {
		return nil, err
	}

	if err := m.store.InsertPodcast(ctx, &podcast); err != nil {
		return nil, err
	}
	for i := range episodes {
		if err := m.store.InsertEpisode(ctx, &episodes[i]); err != nil {
			return nil, err
		}
	}

	user.Podcasts = append(user.Podcasts, podcast.ID)
	if err := m.store.PutUser(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("Subscribed user %s to %s (%d episodes)", user.ID, feedURL, len(episodes))
	return &podcast, nil
}

// Unsubscribe removes podcastID from the user's list. Removing an id that
// is not in the list succeeds as a no-op.
func (m *Manager) Unsubscribe(ctx context.Context, user *models.User, podcastID string) error {
	if user == nil {
		return apperr.Authentication("authentication failure")
	}

	for i, id := range user.Podcasts {
		if id == podcastID {
			user.Podcasts = append(user.Podcasts[:i], user.Podcasts[i+1:]...)
			return m.store.PutUser(ctx, user)
		}
	}
	return nil
}

// ListSubscriptions returns one page of the user's podcasts in subscription
// order. Pages are 1-based; a page starting beyond the end of the list is
// an empty result, not an error.
func (m *Manager) ListSubscriptions(ctx context.Context, user *models.User, page, limit int) ([]models.Podcast, error) {
	if user == nil {
		return nil, apperr.Authentication("authentication failure")
	}
	if page < 1 || limit < 1 {
		return nil, apperr.Validation("page and limit must be positive")
	}

	start := limit * (page - 1)
	if start >= len(user.Podcasts) {
		return []models.Podcast{}, nil
	}
	end := limit * page
	if end > len(user.Podcasts) {
		end = len(user.Podcasts)
	}
	ids := user.Podcasts[start:end]

	fetched, err := m.store.PodcastsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// A single ANY($1) query does not preserve list order; restore it.
	byID := make(map[string]models.Podcast, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}
	podcasts := make([]models.Podcast, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			podcasts = append(podcasts, p)
		}
	}
	return podcasts, nil
}

// GetSubscription returns one podcast with its first ten episodes.
func (m *Manager) GetSubscription(ctx context.Context, user *models.User, podcastID string) (*models.Podcast, []models.Episode, error) {
	if user == nil {
		return nil, nil, apperr.Authentication("authentication failure")
	}

	podcast, err := m.store.GetPodcastByID(ctx, podcastID)
	if err != nil {
		return nil, nil, err
	}
	episodes, err := m.store.EpisodesByPodcast(ctx, podcastID, episodePageSize, 0)
	if err != nil {
		return nil, nil, err
	}
	return podcast, episodes, nil
}
