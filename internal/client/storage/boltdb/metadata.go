package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

const keyClientID = "client_id"

// SaveClientID saves the stable per-device client identifier
func (s *Storage) SaveClientID(ctx context.Context, clientID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyClientID), []byte(clientID)); err != nil {
			return fmt.Errorf("failed to save client id: %w", err)
		}

		return nil
	})
}

// GetClientID retrieves the stored client identifier
// Returns empty string if none has been generated yet
func (s *Storage) GetClientID(ctx context.Context) (string, error) {
	var clientID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if data := bucket.Get([]byte(keyClientID)); data != nil {
			clientID = string(data)
		}
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get client id: %w", err)
	}

	return clientID, nil
}
