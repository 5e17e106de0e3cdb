package storage

import (
	"context"

	"github.com/pitchmate/pitchmate/pkg/api"
)

//go:generate moq -out feed_mock.go . FeedStorage

// FeedStorage defines interface for the local feed snapshot.
// The client caches the last successfully fetched feed so that
// `pitchmate feed --offline` can render without network access.
type FeedStorage interface {
	// SaveFeed stores the feed snapshot, replacing the previous one
	SaveFeed(ctx context.Context, feed *CachedFeed) error

	// GetFeed retrieves the last cached feed snapshot
	// Returns ErrFeedNotCached if nothing has been cached yet
	GetFeed(ctx context.Context) (*CachedFeed, error)

	// DeleteFeed drops the cached snapshot
	DeleteFeed(ctx context.Context) error
}

// CachedFeed представляет последний загруженный список матчей
type CachedFeed struct {
	Posts     []api.Post `json:"posts"`
	FetchedAt int64      `json:"fetched_at"` // unix time момента загрузки
}
