package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/pitchmate/internal/client/storage"
	"github.com/pitchmate/pitchmate/pkg/api"
)

// newMemoryStorage делает mock хранилища с поведением in-memory
func newMemoryStorage() *storage.SessionStorageMock {
	var rec *storage.SessionRecord

	mock := &storage.SessionStorageMock{}
	mock.SaveSessionFunc = func(ctx context.Context, r *storage.SessionRecord) error {
		rec = r
		return nil
	}
	mock.GetSessionFunc = func(ctx context.Context) (*storage.SessionRecord, error) {
		if rec == nil {
			return nil, storage.ErrSessionNotFound
		}
		return rec, nil
	}
	mock.DeleteSessionFunc = func(ctx context.Context) error {
		rec = nil
		return nil
	}
	return mock
}

func testUser() *api.User {
	return &api.User{
		ID:       "user-123",
		Username: "testuser",
		Email:    "test@example.com",
	}
}

func TestStore_SetAuthInfo(t *testing.T) {
	ctx := context.Background()
	mock := newMemoryStorage()

	store := NewStore(mock, 10*time.Minute)
	fixedNow := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixedNow }

	require.NoError(t, store.SetAuthInfo(ctx, testUser(), "access-1", "refresh-1"))

	// Память обновлена
	assert.Equal(t, "access-1", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
	require.NotNil(t, store.User())
	assert.Equal(t, "user-123", store.User().ID)
	assert.True(t, store.IsAuthenticated())

	// Сквозная запись в хранилище с вычисленным дедлайном
	saves := mock.SaveSessionCalls()
	require.Len(t, saves, 1)
	assert.Equal(t, "access-1", saves[0].Rec.AccessToken)
	assert.Equal(t, "refresh-1", saves[0].Rec.RefreshToken)
	assert.Equal(t, fixedNow.Add(10*time.Minute).Unix(), saves[0].Rec.ExpiresAt)
}

func TestStore_SetAuthInfo_EmptyAccessToken(t *testing.T) {
	ctx := context.Background()
	mock := newMemoryStorage()
	store := NewStore(mock, 10*time.Minute)

	err := store.SetAuthInfo(ctx, testUser(), "", "refresh-1")
	assert.Error(t, err)

	// Ни память, ни хранилище не тронуты
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, mock.SaveSessionCalls())
}

func TestStore_SetAuthInfo_SaveError(t *testing.T) {
	ctx := context.Background()
	mock := &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, rec *storage.SessionRecord) error {
			return errors.New("disk full")
		},
	}
	store := NewStore(mock, 10*time.Minute)

	err := store.SetAuthInfo(ctx, testUser(), "access-1", "refresh-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestStore_Rehydrate(t *testing.T) {
	ctx := context.Background()
	mock := newMemoryStorage()

	// Первый процесс: логинимся
	first := NewStore(mock, time.Hour)
	require.NoError(t, first.SetAuthInfo(ctx, testUser(), "access-1", "refresh-1"))

	// Второй процесс: восстанавливаем из того же хранилища
	second := NewStore(mock, time.Hour)
	require.NoError(t, second.Rehydrate(ctx))

	assert.True(t, second.IsAuthenticated())
	accessToken, refreshToken := second.Tokens()
	assert.Equal(t, "access-1", accessToken)
	assert.Equal(t, "refresh-1", refreshToken)
	require.NotNil(t, second.User())
	assert.Equal(t, "testuser", second.User().Username)
}

func TestStore_Rehydrate_NoRecord(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryStorage(), time.Hour)

	// Отсутствие записи не ошибка, сессия остается пустой
	require.NoError(t, store.Rehydrate(ctx))
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
}

func TestStore_Rehydrate_Expired(t *testing.T) {
	ctx := context.Background()
	mock := newMemoryStorage()

	expired := &storage.SessionRecord{
		User:         testUser(),
		AccessToken:  "stale-access",
		RefreshToken: "stale-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
	}
	require.NoError(t, mock.SaveSession(ctx, expired))

	store := NewStore(mock, time.Hour)
	require.NoError(t, store.Rehydrate(ctx))

	// Просроченная запись не восстанавливается и удаляется из хранилища
	assert.False(t, store.IsAuthenticated())
	assert.Len(t, mock.DeleteSessionCalls(), 1)
	_, err := mock.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStore_Rehydrate_TrustsEarlierJWTExpiry(t *testing.T) {
	ctx := context.Background()
	mock := newMemoryStorage()

	// Сам токен истек, хотя записанный дедлайн еще в будущем
	expiredToken := makeToken(t, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	rec := &storage.SessionRecord{
		User:         testUser(),
		AccessToken:  expiredToken,
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, mock.SaveSession(ctx, rec))

	store := NewStore(mock, time.Hour)
	require.NoError(t, store.Rehydrate(ctx))

	assert.False(t, store.IsAuthenticated())
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	mock := newMemoryStorage()
	store := NewStore(mock, time.Hour)

	require.NoError(t, store.SetAuthInfo(ctx, testUser(), "access-1", "refresh-1"))
	require.NoError(t, store.Clear(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	accessToken, refreshToken := store.Tokens()
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)

	// Повторная очистка пустой сессии не ошибка
	require.NoError(t, store.Clear(ctx))
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMemoryStorage(), time.Hour)

	notified := 0
	store.Subscribe(func() { notified++ })

	require.NoError(t, store.SetAuthInfo(ctx, testUser(), "access-1", "refresh-1"))
	assert.Equal(t, 1, notified)

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, 2, notified)

	// Подписчик может читать сессию из колбэка без дедлока
	store.Subscribe(func() { _ = store.IsAuthenticated() })
	require.NoError(t, store.SetAuthInfo(ctx, testUser(), "access-2", "refresh-2"))
	assert.Equal(t, 3, notified)
}
