package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/pitchmate/pitchmate/internal/client/storage"
)

var sessionKey = []byte("current")

// SaveSession stores the credential record
func (s *Storage) SaveSession(ctx context.Context, rec *storage.SessionRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		// Сериализуем запись в JSON
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal session record: %w", err)
		}

		if err := bucket.Put(sessionKey, data); err != nil {
			return fmt.Errorf("failed to save session record: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored credential record
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionRecord, error) {
	var rec *storage.SessionRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(sessionKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		rec = &storage.SessionRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal session record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return rec, nil
}

// DeleteSession removes the stored credential record (logout).
// Повторное удаление не является ошибкой: logout должен быть идемпотентным.
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session record: %w", err)
		}

		return nil
	})
}
