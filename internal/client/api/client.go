package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pitchmate/pitchmate/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the API surface consumed by services and CLI commands
type ClientAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	GoogleLogin(ctx context.Context, req api.GoogleLoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, params RegisterParams, imagePath string) (*api.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context) (*api.User, error)
	GetUser(ctx context.Context, userID string) (*api.User, error)
	UpdateUser(ctx context.Context, userID string, params UpdateUserParams, imagePath string) (*api.User, error)

	ListPosts(ctx context.Context, owner string) ([]api.Post, error)
	GetPost(ctx context.Context, postID string) (*api.Post, error)
	CreatePost(ctx context.Context, post api.Post) (*api.Post, error)
	UpdatePost(ctx context.Context, postID string, post api.Post) (*api.Post, error)
	DeletePost(ctx context.Context, postID string) error
	AddParticipant(ctx context.Context, postID, userID string) (*api.Post, error)
	RemoveParticipant(ctx context.Context, postID, userID string) (*api.Post, error)
	LikePost(ctx context.Context, postID, userID string) (*api.Post, error)
	SplitTeams(ctx context.Context, postID string) (*api.TeamsResponse, error)

	GetPostComments(ctx context.Context, postID string) ([]api.Comment, error)
	CreateComment(ctx context.Context, req api.CreateCommentRequest) (*api.Comment, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером.
// Все запросы идут через AuthTransport, кроме обновления токенов:
// refresh выполняется голым клиентом, чтобы пайплайн не зациклился
// на собственном 401.
type Client struct {
	baseURL    string
	httpClient *http.Client // с авторизационным пайплайном
	bareClient *http.Client // без пайплайна, для /auth/refresh
	clientID   string       // стабильный идентификатор устройства
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент с авторизационным пайплайном
func NewClient(baseURL string, session SessionSource, clientID string) *Client {
	c := &Client{
		baseURL:  baseURL,
		clientID: clientID,
		bareClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	transport := NewAuthTransport(nil, session, c.refreshTokens)

	c.httpClient = &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
		// Настройка обработки редиректов
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Ограничиваем количество редиректов
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			// Копируем заголовки Authorization при редиректе
			if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
				req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
			}
			return nil
		},
	}

	return c
}

// Login выполняет вход по email и паролю
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, "POST", "/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// GoogleLogin обменивает Google ID token на токены сервиса
func (c *Client) GoogleLogin(ctx context.Context, req api.GoogleLoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, "POST", "/auth/google", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("google login request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh token на сервере.
// Access token на этот запрос не вешается (см. AuthTransport).
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := api.LogoutRequest{RefreshToken: refreshToken}
	if err := c.doRequest(ctx, "POST", "/auth/logout", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// CurrentUser возвращает профиль владельца access token
func (c *Client) CurrentUser(ctx context.Context) (*api.User, error) {
	var user api.User
	if err := c.doRequest(ctx, "GET", "/auth/user", nil, &user); err != nil {
		return nil, fmt.Errorf("current user request failed: %w", err)
	}
	return &user, nil
}

// GetUser возвращает профиль пользователя по ID
func (c *Client) GetUser(ctx context.Context, userID string) (*api.User, error) {
	var user api.User
	path := fmt.Sprintf("/user/%s", url.PathEscape(userID))
	if err := c.doRequest(ctx, "GET", path, nil, &user); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &user, nil
}

// ListPosts возвращает ленту матчей; owner фильтрует по автору
func (c *Client) ListPosts(ctx context.Context, owner string) ([]api.Post, error) {
	path := "/posts"
	if owner != "" {
		path += "?owner=" + url.QueryEscape(owner)
	}

	var posts []api.Post
	if err := c.doRequest(ctx, "GET", path, nil, &posts); err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}
	return posts, nil
}

// GetPost возвращает матч по ID
func (c *Client) GetPost(ctx context.Context, postID string) (*api.Post, error) {
	var post api.Post
	path := fmt.Sprintf("/posts/%s", url.PathEscape(postID))
	if err := c.doRequest(ctx, "GET", path, nil, &post); err != nil {
		return nil, fmt.Errorf("get post request failed: %w", err)
	}
	return &post, nil
}

// CreatePost публикует новое объявление о матче
func (c *Client) CreatePost(ctx context.Context, post api.Post) (*api.Post, error) {
	var created api.Post
	if err := c.doRequest(ctx, "POST", "/posts", post, &created); err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}
	return &created, nil
}

// UpdatePost обновляет объявление
func (c *Client) UpdatePost(ctx context.Context, postID string, post api.Post) (*api.Post, error) {
	var updated api.Post
	path := fmt.Sprintf("/posts/%s", url.PathEscape(postID))
	if err := c.doRequest(ctx, "PUT", path, post, &updated); err != nil {
		return nil, fmt.Errorf("update post request failed: %w", err)
	}
	return &updated, nil
}

// DeletePost удаляет объявление
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	path := fmt.Sprintf("/posts/%s", url.PathEscape(postID))
	if err := c.doRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}
	return nil
}

// AddParticipant записывает пользователя на матч
func (c *Client) AddParticipant(ctx context.Context, postID, userID string) (*api.Post, error) {
	var post api.Post
	path := fmt.Sprintf("/posts/%s/participants", url.PathEscape(postID))
	req := api.ParticipantRequest{UserID: userID}
	if err := c.doRequest(ctx, "POST", path, req, &post); err != nil {
		return nil, fmt.Errorf("add participant request failed: %w", err)
	}
	return &post, nil
}

// RemoveParticipant снимает пользователя с матча
func (c *Client) RemoveParticipant(ctx context.Context, postID, userID string) (*api.Post, error) {
	var post api.Post
	path := fmt.Sprintf("/posts/%s/participants/%s", url.PathEscape(postID), url.PathEscape(userID))
	if err := c.doRequest(ctx, "DELETE", path, nil, &post); err != nil {
		return nil, fmt.Errorf("remove participant request failed: %w", err)
	}
	return &post, nil
}

// LikePost ставит/снимает лайк объявлению
func (c *Client) LikePost(ctx context.Context, postID, userID string) (*api.Post, error) {
	var post api.Post
	path := fmt.Sprintf("/posts/%s/like", url.PathEscape(postID))
	req := api.LikeRequest{UserID: userID}
	if err := c.doRequest(ctx, "POST", path, req, &post); err != nil {
		return nil, fmt.Errorf("like post request failed: %w", err)
	}
	return &post, nil
}

// SplitTeams запрашивает у сервера разбиение участников на два состава
func (c *Client) SplitTeams(ctx context.Context, postID string) (*api.TeamsResponse, error) {
	var teams api.TeamsResponse
	path := fmt.Sprintf("/posts/%s/teams", url.PathEscape(postID))
	if err := c.doRequest(ctx, "POST", path, nil, &teams); err != nil {
		return nil, fmt.Errorf("split teams request failed: %w", err)
	}
	return &teams, nil
}

// GetPostComments возвращает комментарии к матчу
func (c *Client) GetPostComments(ctx context.Context, postID string) ([]api.Comment, error) {
	var comments []api.Comment
	path := fmt.Sprintf("/comments/posts/%s", url.PathEscape(postID))
	if err := c.doRequest(ctx, "GET", path, nil, &comments); err != nil {
		return nil, fmt.Errorf("get comments request failed: %w", err)
	}
	return comments, nil
}

// CreateComment добавляет комментарий к матчу
func (c *Client) CreateComment(ctx context.Context, req api.CreateCommentRequest) (*api.Comment, error) {
	var comment api.Comment
	if err := c.doRequest(ctx, "POST", "/comments", req, &comment); err != nil {
		return nil, fmt.Errorf("create comment request failed: %w", err)
	}
	return &comment, nil
}

// refreshTokens вызывает refresh endpoint голым клиентом (минуя пайплайн)
func (c *Client) refreshTokens(ctx context.Context, refreshToken string) (*api.RefreshResponse, error) {
	var resp api.RefreshResponse
	req := api.RefreshRequest{RefreshToken: refreshToken}
	err := c.do(ctx, c.bareClient, "POST", "/auth/refresh", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос через авторизационный пайплайн
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	return c.do(ctx, c.httpClient, method, path, body, result)
}

// do выполняет HTTP запрос указанным клиентом
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return decodeResponse(resp, result)
}

// decodeResponse читает тело ответа, проверяет статус и декодирует результат
func decodeResponse(resp *http.Response, result interface{}) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			msg := errResp.Message
			if msg == "" {
				msg = errResp.Error
			}
			return &Error{StatusCode: resp.StatusCode, Message: msg}
		}
		return &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
