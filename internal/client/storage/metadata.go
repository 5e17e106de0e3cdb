package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveClientID saves the stable per-device client identifier
	SaveClientID(ctx context.Context, clientID string) error

	// GetClientID retrieves the stored client identifier
	// Returns empty string if none has been generated yet
	GetClientID(ctx context.Context) (string, error)
}
