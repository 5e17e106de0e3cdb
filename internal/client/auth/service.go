package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
	"github.com/pitchmate/pitchmate/internal/validation"
	"github.com/pitchmate/pitchmate/pkg/api"
)

// service предоставляет операции аутентификации поверх API клиента
// и хранилища сессии
type service struct {
	apiClient clientapi.ClientAPI
	session   SessionStore
}

// Compile-time check that service implements Service
var _ Service = (*service)(nil)

// NewService создает сервис аутентификации
func NewService(apiClient clientapi.ClientAPI, session SessionStore) Service {
	return &service{
		apiClient: apiClient,
		session:   session,
	}
}

// Login выполняет вход по email и паролю
func (s *service) Login(ctx context.Context, email, password string) (*api.User, error) {
	// Валидация до любого сетевого вызова
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		// Сессию при неудачном входе не трогаем
		return nil, loginError(err)
	}

	if err := s.session.SetAuthInfo(ctx, &resp.User, resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &resp.User, nil
}

// GoogleLogin обменивает Google ID token на токены сервиса
func (s *service) GoogleLogin(ctx context.Context, credential string) (*api.User, error) {
	if credential == "" {
		return nil, fmt.Errorf("google credential cannot be empty")
	}

	resp, err := s.apiClient.GoogleLogin(ctx, api.GoogleLoginRequest{Credential: credential})
	if err != nil {
		return nil, loginError(err)
	}

	if err := s.session.SetAuthInfo(ctx, &resp.User, resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &resp.User, nil
}

// Register регистрирует нового пользователя.
// Сервер возвращает токены вместе с профилем, поэтому после успешной
// регистрации пользователь сразу залогинен.
func (s *service) Register(ctx context.Context, params clientapi.RegisterParams, imagePath string) (*api.User, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(params.Username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidateEmail(params.Email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(params.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateSkillLevel(params.SkillLevel); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Register(ctx, params, imagePath)
	if err != nil {
		if clientapi.IsStatus(err, http.StatusConflict) {
			return nil, fmt.Errorf("user with this email or username already exists")
		}
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := s.session.SetAuthInfo(ctx, &resp.User, resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &resp.User, nil
}

// Logout отзывает refresh token на сервере и чистит локальную сессию.
// Локальный logout должен удаться всегда, поэтому ошибка сервера
// только логируется.
func (s *service) Logout(ctx context.Context) error {
	_, refreshToken := s.session.Tokens()

	if refreshToken != "" {
		if err := s.apiClient.Logout(ctx, refreshToken); err != nil {
			slog.Warn("failed to logout on server", "error", err)
		}
	} else {
		slog.Debug("no refresh token found during logout")
	}

	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return nil
}

// CurrentUser запрашивает профиль с сервера и обновляет его в сессии
func (s *service) CurrentUser(ctx context.Context) (*api.User, error) {
	user, err := s.apiClient.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	// Токены не меняются, обновляем только user
	accessToken, refreshToken := s.session.Tokens()
	if accessToken != "" {
		if err := s.session.SetAuthInfo(ctx, user, accessToken, refreshToken); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}

	return user, nil
}

// UpdateProfile обновляет профиль текущего пользователя
func (s *service) UpdateProfile(ctx context.Context, params clientapi.UpdateUserParams, imagePath string) (*api.User, error) {
	current := s.session.User()
	if current == nil {
		return nil, fmt.Errorf("not authenticated")
	}

	if params.Username != "" {
		if err := validation.ValidateUsername(params.Username); err != nil {
			return nil, fmt.Errorf("invalid username: %w", err)
		}
	}
	if params.SkillLevel != "" {
		if err := validation.ValidateSkillLevel(params.SkillLevel); err != nil {
			return nil, err
		}
	}

	user, err := s.apiClient.UpdateUser(ctx, current.ID, params, imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	accessToken, refreshToken := s.session.Tokens()
	if accessToken != "" {
		if err := s.session.SetAuthInfo(ctx, user, accessToken, refreshToken); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}

	return user, nil
}

// loginError переводит ответ сервера в сообщение для пользователя.
// Транспортные ошибки отличаем от неверных учетных данных.
func loginError(err error) error {
	if clientapi.IsUnauthorized(err) || clientapi.IsStatus(err, http.StatusBadRequest) {
		return fmt.Errorf("invalid credentials")
	}
	var apiErr *clientapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("login failed: %w", err)
	}
	return fmt.Errorf("could not reach server, please try again later: %w", err)
}
