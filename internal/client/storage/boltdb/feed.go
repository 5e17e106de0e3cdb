package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pitchmate/pitchmate/internal/client/storage"
)

var feedKey = []byte("latest")

// SaveFeed stores the feed snapshot, replacing the previous one
func (s *Storage) SaveFeed(ctx context.Context, feed *storage.CachedFeed) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFeed)
		if bucket == nil {
			return fmt.Errorf("feed bucket not found")
		}

		data, err := json.Marshal(feed)
		if err != nil {
			return fmt.Errorf("failed to marshal feed snapshot: %w", err)
		}

		if err := bucket.Put(feedKey, data); err != nil {
			return fmt.Errorf("failed to save feed snapshot: %w", err)
		}

		return nil
	})
}

// GetFeed retrieves the last cached feed snapshot
func (s *Storage) GetFeed(ctx context.Context) (*storage.CachedFeed, error) {
	var feed *storage.CachedFeed

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFeed)
		if bucket == nil {
			return fmt.Errorf("feed bucket not found")
		}

		data := bucket.Get(feedKey)
		if data == nil {
			return storage.ErrFeedNotCached
		}

		feed = &storage.CachedFeed{}
		if err := json.Unmarshal(data, feed); err != nil {
			return fmt.Errorf("failed to unmarshal feed snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return feed, nil
}

// DeleteFeed drops the cached snapshot
func (s *Storage) DeleteFeed(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketFeed)
		if bucket == nil {
			return fmt.Errorf("feed bucket not found")
		}

		if err := bucket.Delete(feedKey); err != nil {
			return fmt.Errorf("failed to delete feed snapshot: %w", err)
		}

		return nil
	})
}
