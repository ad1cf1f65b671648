package store

import (
	"context"
	"log"

	"github.com/yradunchev/podsub/internal/models"
)

func (s *Store) InsertEpisode(ctx context.Context, episode *models.Episode) error {
	query := `
		INSERT INTO episodes (id, podcast_id, guid, description, release_date, duration, link, filesize)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		episode.ID, episode.PodcastID, episode.GUID, episode.Description,
		episode.ReleaseDate, episode.Duration, episode.Link, episode.Filesize)
	if err != nil {
		log.Printf("Error inserting episode %s: %v", episode.ID, err)
		return err
	}
	return nil
}

// EpisodesByPodcast returns a page of a podcast's episodes, newest first.
func (s *Store) EpisodesByPodcast(ctx context.Context, podcastID string, limit, offset int) ([]models.Episode, error) {
	query := `
		SELECT id, podcast_id, guid, description, release_date, duration, link, filesize
		FROM episodes
		WHERE podcast_id = $1
		ORDER BY release_date DESC
		LIMIT $2 OFFSET $3
	`
	var episodes []models.Episode
	err := s.db.SelectContext(ctx, &episodes, query, podcastID, limit, offset)
	if err != nil {
		log.Printf("Error getting episodes for podcast %s: %v", podcastID, err)
		return nil, err
	}
	return episodes, nil
}
