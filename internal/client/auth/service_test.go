package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
	"github.com/pitchmate/pitchmate/pkg/api"
)

// mockSessionStore implements SessionStore for testing
type mockSessionStore struct {
	user         *api.User
	accessToken  string
	refreshToken string
	setErr       error
	clearErr     error
	setCalls     int
	clearCalls   int
}

func (m *mockSessionStore) SetAuthInfo(ctx context.Context, user *api.User, accessToken, refreshToken string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.user = user
	m.accessToken = accessToken
	m.refreshToken = refreshToken
	m.setCalls++
	return nil
}

func (m *mockSessionStore) Clear(ctx context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.user = nil
	m.accessToken = ""
	m.refreshToken = ""
	m.clearCalls++
	return nil
}

func (m *mockSessionStore) User() *api.User {
	return m.user
}

func (m *mockSessionStore) Tokens() (string, string) {
	return m.accessToken, m.refreshToken
}

func authResponse() *api.AuthResponse {
	return &api.AuthResponse{
		User:         api.User{ID: "user-123", Username: "testuser", Email: "test@example.com"},
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	mockAPI := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			assert.Equal(t, "test@example.com", req.Email)
			assert.Equal(t, "password123", req.Password)
			return authResponse(), nil
		},
	}
	session := &mockSessionStore{}
	svc := NewService(mockAPI, session)

	user, err := svc.Login(ctx, "test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)

	// Сессия обновлена целиком: user и оба токена
	assert.Equal(t, 1, session.setCalls)
	assert.Equal(t, "access-1", session.accessToken)
	assert.Equal(t, "refresh-1", session.refreshToken)
	require.NotNil(t, session.user)
	assert.Equal(t, "testuser", session.user.Username)
}

func TestService_Login_InvalidEmail(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	session := &mockSessionStore{}
	svc := NewService(mockAPI, session)

	// Невалидный email отсекается до сетевого вызова
	_, err := svc.Login(context.Background(), "not-an-email", "password123")
	require.Error(t, err)
	assert.Empty(t, mockAPI.LoginCalls())
}

func TestService_Login_EmptyPassword(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	svc := NewService(mockAPI, &mockSessionStore{})

	_, err := svc.Login(context.Background(), "test@example.com", "")
	require.Error(t, err)
	assert.Empty(t, mockAPI.LoginCalls())
}

func TestService_Login_WrongCredentials(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			return nil, &clientapi.Error{StatusCode: http.StatusBadRequest, Message: "wrong email or password"}
		},
	}
	session := &mockSessionStore{}
	svc := NewService(mockAPI, session)

	_, err := svc.Login(context.Background(), "test@example.com", "wrongpass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Сессия при неудачном входе не тронута
	assert.Equal(t, 0, session.setCalls)
	assert.Equal(t, 0, session.clearCalls)
}

func TestService_Login_ServerUnreachable(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	svc := NewService(mockAPI, &mockSessionStore{})

	_, err := svc.Login(context.Background(), "test@example.com", "password123")
	require.Error(t, err)
	// Транспортная ошибка не выглядит как неверный пароль
	assert.NotContains(t, err.Error(), "invalid credentials")
	assert.Contains(t, err.Error(), "could not reach server")
}

func TestService_GoogleLogin(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		GoogleLoginFunc: func(ctx context.Context, req api.GoogleLoginRequest) (*api.AuthResponse, error) {
			assert.Equal(t, "google-id-token", req.Credential)
			return authResponse(), nil
		},
	}
	session := &mockSessionStore{}
	svc := NewService(mockAPI, session)

	user, err := svc.GoogleLogin(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "access-1", session.accessToken)
}

func TestService_GoogleLogin_EmptyCredential(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	svc := NewService(mockAPI, &mockSessionStore{})

	_, err := svc.GoogleLogin(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, mockAPI.GoogleLoginCalls())
}

func TestService_Register(t *testing.T) {
	params := clientapi.RegisterParams{
		Username:   "testuser",
		Email:      "test@example.com",
		Password:   "password123",
		SkillLevel: "Intermediate",
	}

	mockAPI := &clientapi.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, p clientapi.RegisterParams, imagePath string) (*api.AuthResponse, error) {
			assert.Equal(t, params, p)
			assert.Equal(t, "/tmp/avatar.png", imagePath)
			return authResponse(), nil
		},
	}
	session := &mockSessionStore{}
	svc := NewService(mockAPI, session)

	user, err := svc.Register(context.Background(), params, "/tmp/avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)

	// После регистрации пользователь сразу залогинен
	assert.Equal(t, 1, session.setCalls)
	assert.Equal(t, "access-1", session.accessToken)
	assert.Equal(t, "refresh-1", session.refreshToken)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params clientapi.RegisterParams
	}{
		{
			name:   "bad username",
			params: clientapi.RegisterParams{Username: "a!", Email: "test@example.com", Password: "password123", SkillLevel: "Beginner"},
		},
		{
			name:   "bad email",
			params: clientapi.RegisterParams{Username: "testuser", Email: "nope", Password: "password123", SkillLevel: "Beginner"},
		},
		{
			name:   "short password",
			params: clientapi.RegisterParams{Username: "testuser", Email: "test@example.com", Password: "short", SkillLevel: "Beginner"},
		},
		{
			name:   "bad skill level",
			params: clientapi.RegisterParams{Username: "testuser", Email: "test@example.com", Password: "password123", SkillLevel: "Pro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := &clientapi.ClientAPIMock{}
			svc := NewService(mockAPI, &mockSessionStore{})

			_, err := svc.Register(context.Background(), tt.params, "")
			require.Error(t, err)
			assert.Empty(t, mockAPI.RegisterCalls())
		})
	}
}

func TestService_Register_Conflict(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, p clientapi.RegisterParams, imagePath string) (*api.AuthResponse, error) {
			return nil, &clientapi.Error{StatusCode: http.StatusConflict, Message: "duplicate"}
		},
	}
	session := &mockSessionStore{}
	svc := NewService(mockAPI, session)

	_, err := svc.Register(context.Background(), clientapi.RegisterParams{
		Username:   "testuser",
		Email:      "test@example.com",
		Password:   "password123",
		SkillLevel: "Beginner",
	}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, 0, session.setCalls)
}

func TestService_Logout(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		LogoutFunc: func(ctx context.Context, refreshToken string) error {
			assert.Equal(t, "refresh-1", refreshToken)
			return nil
		},
	}
	session := &mockSessionStore{
		user:         &api.User{ID: "user-123"},
		accessToken:  "access-1",
		refreshToken: "refresh-1",
	}
	svc := NewService(mockAPI, session)

	require.NoError(t, svc.Logout(context.Background()))

	assert.Len(t, mockAPI.LogoutCalls(), 1)
	assert.Equal(t, 1, session.clearCalls)
	assert.Nil(t, session.user)
}

func TestService_Logout_ServerErrorStillClears(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		LogoutFunc: func(ctx context.Context, refreshToken string) error {
			return errors.New("server unavailable")
		},
	}
	session := &mockSessionStore{accessToken: "access-1", refreshToken: "refresh-1"}
	svc := NewService(mockAPI, session)

	// Локальный logout удается даже когда сервер недоступен
	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, 1, session.clearCalls)
}

func TestService_Logout_NoRefreshToken(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	session := &mockSessionStore{}
	svc := NewService(mockAPI, session)

	// Без refresh token отзывать нечего, но локальная очистка происходит
	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, mockAPI.LogoutCalls())
	assert.Equal(t, 1, session.clearCalls)
}

func TestService_CurrentUser(t *testing.T) {
	fresh := &api.User{ID: "user-123", Username: "renamed"}
	mockAPI := &clientapi.ClientAPIMock{
		CurrentUserFunc: func(ctx context.Context) (*api.User, error) {
			return fresh, nil
		},
	}
	session := &mockSessionStore{
		user:         &api.User{ID: "user-123", Username: "oldname"},
		accessToken:  "access-1",
		refreshToken: "refresh-1",
	}
	svc := NewService(mockAPI, session)

	user, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "renamed", user.Username)

	// Профиль в сессии обновлен, токены те же
	assert.Equal(t, "renamed", session.user.Username)
	assert.Equal(t, "access-1", session.accessToken)
	assert.Equal(t, "refresh-1", session.refreshToken)
}

func TestService_UpdateProfile(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		UpdateUserFunc: func(ctx context.Context, userID string, params clientapi.UpdateUserParams, imagePath string) (*api.User, error) {
			assert.Equal(t, "user-123", userID)
			assert.Equal(t, "newname", params.Username)
			return &api.User{ID: "user-123", Username: "newname"}, nil
		},
	}
	session := &mockSessionStore{
		user:         &api.User{ID: "user-123", Username: "oldname"},
		accessToken:  "access-1",
		refreshToken: "refresh-1",
	}
	svc := NewService(mockAPI, session)

	user, err := svc.UpdateProfile(context.Background(), clientapi.UpdateUserParams{Username: "newname"}, "")
	require.NoError(t, err)
	assert.Equal(t, "newname", user.Username)
	assert.Equal(t, "newname", session.user.Username)
}

func TestService_UpdateProfile_NotAuthenticated(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	svc := NewService(mockAPI, &mockSessionStore{})

	_, err := svc.UpdateProfile(context.Background(), clientapi.UpdateUserParams{Username: "newname"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
	assert.Empty(t, mockAPI.UpdateUserCalls())
}

func TestService_UpdateProfile_BadSkillLevel(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	session := &mockSessionStore{user: &api.User{ID: "user-123"}}
	svc := NewService(mockAPI, session)

	_, err := svc.UpdateProfile(context.Background(), clientapi.UpdateUserParams{SkillLevel: "Pro"}, "")
	require.Error(t, err)
	assert.Empty(t, mockAPI.UpdateUserCalls())
}
