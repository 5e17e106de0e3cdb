package api

// User представляет публичный профиль пользователя, как его отдает сервер
type User struct {
	ID         string `json:"_id"`                   // идентификатор пользователя
	Username   string `json:"username"`              // отображаемое имя
	Email      string `json:"email"`                 // email пользователя
	SkillLevel string `json:"skillLevel,omitempty"`  // уровень игры: Beginner/Intermediate/Advanced
	ProfileImg string `json:"profile_img,omitempty"` // ссылка на аватар
}

// LoginRequest представляет запрос на вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest представляет обмен Google ID token на токены сервиса
type GoogleLoginRequest struct {
	Credential string `json:"credential"` // ID token, полученный от Google
}

// AuthResponse представляет ответ на успешный login/register/google
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`  // JWT access token
	RefreshToken string `json:"refreshToken"` // refresh token
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse представляет новую пару токенов
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LogoutRequest представляет запрос на выход:
// тело несет refresh token, access token в заголовке не передается
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
