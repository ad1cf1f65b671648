// Package test holds shared fakes for the store and the feed fetcher.
package test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/yradunchev/podsub/internal/store"
)

// NewMockStore returns a Store backed by sqlmock.
func NewMockStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	mockDb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { mockDb.Close() })
	return store.New(sqlx.NewDb(mockDb, "sqlmock")), mock
}

// StubFetcher is a canned fetch.Fetcher; it records the URLs it was asked
// to fetch.
type StubFetcher struct {
	Status int
	Body   []byte
	Err    error
	URLs   []string
}

func (f *StubFetcher) Fetch(ctx context.Context, url string) (int, []byte, error) {
	f.URLs = append(f.URLs, url)
	return f.Status, f.Body, f.Err
}
