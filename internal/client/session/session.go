package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pitchmate/pitchmate/internal/client/storage"
	"github.com/pitchmate/pitchmate/pkg/api"
)

// Store — единственный источник правды о текущей сессии:
// кто залогинен и с какими токенами. Данные живут в памяти и
// сквозной записью дублируются в SessionStorage, чтобы пережить
// перезапуск процесса.
//
// SetAuthInfo и Clear — единственные точки мутации; никакой другой
// код токены напрямую не пишет.
type Store struct {
	mu       sync.RWMutex
	storage  storage.SessionStorage
	lifetime time.Duration // настроенный срок жизни access token
	now      func() time.Time

	user         *api.User
	accessToken  string
	refreshToken string

	subs []func()
}

// NewStore creates a session store backed by the given storage.
// lifetime is the configured access token lifetime used to compute
// the persisted record's expiry at write time.
func NewStore(st storage.SessionStorage, lifetime time.Duration) *Store {
	return &Store{
		storage:  st,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Rehydrate восстанавливает сессию из хранилища при старте процесса.
// Просроченная или отсутствующая запись оставляет сессию пустой,
// сетевых вызовов здесь нет.
func (s *Store) Rehydrate(ctx context.Context) error {
	rec, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session record: %w", err)
	}

	expiresAt := time.Unix(rec.ExpiresAt, 0)

	// Сервер мог выдать токен с более ранним exp, чем настроенный
	// срок жизни; верим более раннему из двух дедлайнов.
	if jwtExp, err := TokenExpiry(rec.AccessToken); err == nil && jwtExp.Before(expiresAt) {
		expiresAt = jwtExp
	}

	if !s.now().Before(expiresAt) {
		// Просроченная запись не должна пережить свой дедлайн
		if err := s.storage.DeleteSession(ctx); err != nil {
			slog.Warn("failed to delete expired session record", "error", err)
		}
		return nil
	}

	s.mu.Lock()
	s.user = rec.User
	s.accessToken = rec.AccessToken
	s.refreshToken = rec.RefreshToken
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetAuthInfo атомарно обновляет сессию в памяти и сквозной записью
// сохраняет ее в хранилище с вычисленным дедлайном access token.
func (s *Store) SetAuthInfo(ctx context.Context, user *api.User, accessToken, refreshToken string) error {
	if accessToken == "" {
		return fmt.Errorf("access token cannot be empty")
	}

	s.mu.Lock()
	s.user = user
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	rec := &storage.SessionRecord{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    s.now().Add(s.lifetime).Unix(),
	}
	s.mu.Unlock()

	if err := s.storage.SaveSession(ctx, rec); err != nil {
		return fmt.Errorf("failed to persist session record: %w", err)
	}

	s.notify()
	return nil
}

// Clear удаляет сессию из памяти и хранилища. Идемпотентна:
// очистка пустой сессии не является ошибкой.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.mu.Unlock()

	if err := s.storage.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}

	s.notify()
	return nil
}

// User returns the cached user identity, nil when logged out
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// AccessToken returns the current access token, empty when logged out
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, empty when logged out
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Tokens returns both tokens as one consistent pair
func (s *Store) Tokens() (accessToken, refreshToken string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

// IsAuthenticated reports whether an access token is present
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

// Subscribe регистрирует колбэк, вызываемый после каждой мутации
// сессии. Так интерфейс узнает о смене пользователя, в том числе
// о молчаливой очистке сессии внутри пайплайна.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	// Колбэки зовем вне блокировки, чтобы подписчик мог читать сессию
	for _, fn := range subs {
		fn()
	}
}
