package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/pitchmate/pitchmate/pkg/api"
)

// logoutPath — единственный путь, на который bearer не вешается:
// logout несет refresh token в теле, а access token к этому моменту
// мог быть уже отозван.
const logoutPath = "/auth/logout"

// SessionSource — то, что пайплайну нужно от хранилища сессии
type SessionSource interface {
	// Tokens returns the current token pair
	Tokens() (accessToken, refreshToken string)

	// User returns the cached user identity, nil when logged out
	User() *api.User

	// SetAuthInfo stores a new token pair (write-through)
	SetAuthInfo(ctx context.Context, user *api.User, accessToken, refreshToken string) error

	// Clear wipes the session after an unrecoverable refresh failure
	Clear(ctx context.Context) error
}

// RefreshFunc вызывает endpoint обновления токенов минуя пайплайн
type RefreshFunc func(ctx context.Context, refreshToken string) (*api.RefreshResponse, error)

// AuthTransport — http.RoundTripper, реализующий авторизационный
// пайплайн: вешает bearer на каждый запрос (кроме logout), на 401
// ровно один раз обновляет токены и повторяет исходный запрос.
// Политика retry вынесена в отдельный юнит, а не спрятана в каждом
// вызове, поэтому ее можно тестировать и подменять независимо.
type AuthTransport struct {
	base    http.RoundTripper
	session SessionSource
	refresh RefreshFunc

	// refreshMu сериализует конкурентные refresh: проигравший гонку
	// повторно читает сессию и уходит с токеном победителя
	refreshMu sync.Mutex
}

// NewAuthTransport creates the authenticated request pipeline.
// base may be nil, in which case http.DefaultTransport is used.
func NewAuthTransport(base http.RoundTripper, session SessionSource, refresh RefreshFunc) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{
		base:    base,
		session: session,
		refresh: refresh,
	}
}

// RoundTrip implements http.RoundTripper
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	accessToken, _ := t.session.Tokens()

	// Исходный запрос не трогаем, работаем с копией
	out := req.Clone(req.Context())
	if accessToken != "" && !strings.HasSuffix(req.URL.Path, logoutPath) {
		out.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// 401: пробуем обновить токены и повторить запрос ровно один раз.
	// Запрос с телом, которое нельзя перечитать, повторить не можем.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	_, refreshToken := t.session.Tokens()
	if refreshToken == "" {
		// Без refresh token обновлять нечем, отдаем исходный 401
		return resp, nil
	}

	newAccessToken, err := t.refreshTokens(req.Context(), accessToken)
	if err != nil {
		slog.Debug("token refresh failed", "error", err)
		return resp, nil
	}

	// Исходный 401 нам больше не нужен
	drainBody(resp)

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+newAccessToken)

	// Второй 401 уже не перехватываем: retry только однократный
	return t.base.RoundTrip(retry)
}

// refreshTokens обновляет пару токенов через refresh endpoint.
// staleAccessToken — токен, с которым запрос получил 401: если к
// моменту захвата мьютекса в сессии лежит другой access token, его
// уже обновил конкурентный запрос и сетевой вызов не нужен.
func (t *AuthTransport) refreshTokens(ctx context.Context, staleAccessToken string) (string, error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	accessToken, refreshToken := t.session.Tokens()
	if accessToken != "" && accessToken != staleAccessToken {
		return accessToken, nil
	}
	if refreshToken == "" {
		return "", fmt.Errorf("no refresh token")
	}

	resp, err := t.refresh(ctx, refreshToken)
	if err != nil {
		// Невалидный refresh token означает разлогин
		if clearErr := t.session.Clear(ctx); clearErr != nil {
			slog.Warn("failed to clear session after refresh failure", "error", clearErr)
		}
		return "", fmt.Errorf("refresh request failed: %w", err)
	}

	// user не трогаем: refresh меняет только токены
	if err := t.session.SetAuthInfo(ctx, t.session.User(), resp.AccessToken, resp.RefreshToken); err != nil {
		return "", fmt.Errorf("failed to store refreshed tokens: %w", err)
	}

	return resp.AccessToken, nil
}

func drainBody(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
