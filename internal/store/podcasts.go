package store

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/yradunchev/podsub/internal/models"
)

// GetPodcastByURL is the deduplication lookup: url is the canonical feed
// URL and unique store-wide. A miss returns (nil, nil).
func (s *Store) GetPodcastByURL(ctx context.Context, url string) (*models.Podcast, error) {
	podcast := &models.Podcast{}
	err := s.db.GetContext(ctx, podcast, "SELECT id, title, description, explicit, url, image FROM podcasts WHERE url = $1", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Printf("Error getting podcast by url: %v", err)
		return nil, err
	}
	return podcast, nil
}

func (s *Store) GetPodcastByID(ctx context.Context, id string) (*models.Podcast, error) {
	podcast := &models.Podcast{}
	err := s.db.GetContext(ctx, podcast, "SELECT id, title, description, explicit, url, image FROM podcasts WHERE id = $1", id)
	if err != nil {
		log.Printf("Error getting podcast %s: %v", id, err)
		return nil, err
	}
	return podcast, nil
}

// PodcastsByIDs fetches several podcasts in one query. Result order is not
// defined; callers that care about order reorder by id.
func (s *Store) PodcastsByIDs(ctx context.Context, ids []string) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	err := s.db.SelectContext(ctx, &podcasts, "SELECT id, title, description, explicit, url, image FROM podcasts WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		log.Printf("Error getting podcasts by ids: %v", err)
		return nil, err
	}
	return podcasts, nil
}

func (s *Store) InsertPodcast(ctx context.Context, podcast *models.Podcast) error {
	query := `
		INSERT INTO podcasts (id, title, description, explicit, url, image)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query, podcast.ID, podcast.Title, podcast.Description, podcast.Explicit, podcast.URL, podcast.Image)
	if err != nil {
		log.Printf("Error inserting podcast %s: %v", podcast.ID, err)
		return err
	}
	return nil
}
