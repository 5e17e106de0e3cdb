package storage

import (
	"context"

	"github.com/pitchmate/pitchmate/pkg/api"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for the persisted credential record.
// This is the lowest storage layer - it stores the record as-is and knows
// nothing about token refresh or expiry policy beyond the recorded deadline.
type SessionStorage interface {
	// SaveSession stores the credential record, replacing any previous one
	SaveSession(ctx context.Context, rec *SessionRecord) error

	// GetSession retrieves the stored credential record
	// Returns ErrSessionNotFound if no record exists
	GetSession(ctx context.Context) (*SessionRecord, error)

	// DeleteSession removes the stored credential record (logout).
	// Deleting a missing record is not an error: logout must be idempotent.
	DeleteSession(ctx context.Context) error
}

// SessionRecord представляет учетные данные сессии в хранилище.
// Запись переживает перезапуск процесса; access token в ней не должен
// пережить записанный дедлайн ExpiresAt.
type SessionRecord struct {
	User         *api.User `json:"user,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    int64     `json:"expires_at"` // unix time истечения access token
}
