package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no persisted session record exists
	ErrSessionNotFound = errors.New("session record not found")

	// ErrFeedNotCached indicates that no feed snapshot has been cached yet
	ErrFeedNotCached = errors.New("feed is not cached")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
