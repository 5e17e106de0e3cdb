package auth

import (
	"context"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
	"github.com/pitchmate/pitchmate/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the user-facing authentication operations.
// Implementations translate CLI actions into backend calls and
// session store updates; raw transport errors never reach commands.
type Service interface {
	// Login выполняет вход по email и паролю.
	// При успехе сохраняет user и токены в сессию.
	Login(ctx context.Context, email, password string) (*api.User, error)

	// GoogleLogin обменивает Google ID token на токены сервиса
	GoogleLogin(ctx context.Context, credential string) (*api.User, error)

	// Register регистрирует пользователя и сразу аутентифицирует его:
	// сервер возвращает токены вместе с профилем
	Register(ctx context.Context, params clientapi.RegisterParams, imagePath string) (*api.User, error)

	// Logout отзывает refresh token на сервере и безусловно чистит
	// локальную сессию, даже если сервер недоступен
	Logout(ctx context.Context) error

	// CurrentUser запрашивает профиль с сервера и обновляет его в сессии
	CurrentUser(ctx context.Context) (*api.User, error)

	// UpdateProfile обновляет профиль текущего пользователя
	UpdateProfile(ctx context.Context, params clientapi.UpdateUserParams, imagePath string) (*api.User, error)
}

// SessionStore — мутационные и читающие точки сессии, нужные операциям.
// *session.Store реализует этот интерфейс.
type SessionStore interface {
	SetAuthInfo(ctx context.Context, user *api.User, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
	User() *api.User
	Tokens() (accessToken, refreshToken string)
}
