package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
	"github.com/pitchmate/pitchmate/internal/client/storage"
	"github.com/pitchmate/pitchmate/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет операции над матчами и комментариями.
// Все сетевые вызовы идут через авторизационный пайплайн.
type Service interface {
	// Feed загружает ленту матчей и кеширует снимок локально.
	// owner фильтрует ленту по автору, пустая строка — вся лента.
	Feed(ctx context.Context, owner string) ([]api.Post, error)

	// CachedFeed возвращает последний закешированный снимок ленты
	CachedFeed(ctx context.Context) (*storage.CachedFeed, error)

	// ClearCache удаляет локальный снимок ленты
	ClearCache(ctx context.Context) error

	// Get возвращает матч по ID
	Get(ctx context.Context, postID string) (*api.Post, error)

	// Create публикует объявление о матче
	Create(ctx context.Context, post api.Post) (*api.Post, error)

	// Update обновляет объявление
	Update(ctx context.Context, postID string, post api.Post) (*api.Post, error)

	// Delete удаляет объявление
	Delete(ctx context.Context, postID string) error

	// Join записывает пользователя на матч
	Join(ctx context.Context, postID, userID string) (*api.Post, error)

	// Leave снимает пользователя с матча
	Leave(ctx context.Context, postID, userID string) (*api.Post, error)

	// Like ставит лайк объявлению
	Like(ctx context.Context, postID, userID string) (*api.Post, error)

	// Teams запрашивает серверное разбиение участников на два состава
	Teams(ctx context.Context, postID string) (*api.TeamsResponse, error)

	// Participants разворачивает ID участников в профили
	Participants(ctx context.Context, post *api.Post) ([]api.User, error)

	// Comments возвращает комментарии к матчу
	Comments(ctx context.Context, postID string) ([]api.Comment, error)

	// AddComment добавляет комментарий к матчу
	AddComment(ctx context.Context, postID, owner, text string) (*api.Comment, error)
}

// service handles match feed operations and the local feed cache
type service struct {
	apiClient   clientapi.ClientAPI
	feedStorage storage.FeedStorage
	logger      *slog.Logger
	now         func() time.Time
}

// Compile-time check that service implements Service
var _ Service = (*service)(nil)

// NewService creates a new posts service
func NewService(apiClient clientapi.ClientAPI, feedStorage storage.FeedStorage, logger *slog.Logger) Service {
	return &service{
		apiClient:   apiClient,
		feedStorage: feedStorage,
		logger:      logger,
		now:         time.Now,
	}
}

// Feed загружает ленту и кеширует снимок.
// Ошибка кеширования ленту не роняет, только логируется.
func (s *service) Feed(ctx context.Context, owner string) ([]api.Post, error) {
	fetched, err := s.apiClient.ListPosts(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	// Кешируем только полную ленту, фильтрованную по owner не пишем
	if owner == "" {
		snapshot := &storage.CachedFeed{
			Posts:     fetched,
			FetchedAt: s.now().Unix(),
		}
		if err := s.feedStorage.SaveFeed(ctx, snapshot); err != nil {
			s.logger.Warn("failed to cache feed snapshot", "error", err)
		}
	}

	return fetched, nil
}

// CachedFeed возвращает последний закешированный снимок ленты
func (s *service) CachedFeed(ctx context.Context) (*storage.CachedFeed, error) {
	feed, err := s.feedStorage.GetFeed(ctx)
	if err != nil {
		return nil, err
	}
	return feed, nil
}

// ClearCache удаляет локальный снимок ленты.
// Отсутствие снимка ошибкой не считается.
func (s *service) ClearCache(ctx context.Context) error {
	if err := s.feedStorage.DeleteFeed(ctx); err != nil {
		return fmt.Errorf("failed to clear feed cache: %w", err)
	}
	return nil
}

// Get возвращает матч по ID
func (s *service) Get(ctx context.Context, postID string) (*api.Post, error) {
	return s.apiClient.GetPost(ctx, postID)
}

// Create публикует объявление о матче
func (s *service) Create(ctx context.Context, post api.Post) (*api.Post, error) {
	if post.Title == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	if post.Location == "" {
		return nil, fmt.Errorf("location cannot be empty")
	}
	if post.Date == "" {
		return nil, fmt.Errorf("date cannot be empty")
	}
	if _, err := time.Parse(time.RFC3339, post.Date); err != nil {
		return nil, fmt.Errorf("date must be in RFC3339 format (e.g. 2026-09-05T18:30:00Z): %w", err)
	}

	return s.apiClient.CreatePost(ctx, post)
}

// Update обновляет объявление
func (s *service) Update(ctx context.Context, postID string, post api.Post) (*api.Post, error) {
	if post.Date != "" {
		if _, err := time.Parse(time.RFC3339, post.Date); err != nil {
			return nil, fmt.Errorf("date must be in RFC3339 format: %w", err)
		}
	}
	return s.apiClient.UpdatePost(ctx, postID, post)
}

// Delete удаляет объявление
func (s *service) Delete(ctx context.Context, postID string) error {
	return s.apiClient.DeletePost(ctx, postID)
}

// Join записывает пользователя на матч
func (s *service) Join(ctx context.Context, postID, userID string) (*api.Post, error) {
	return s.apiClient.AddParticipant(ctx, postID, userID)
}

// Leave снимает пользователя с матча
func (s *service) Leave(ctx context.Context, postID, userID string) (*api.Post, error) {
	return s.apiClient.RemoveParticipant(ctx, postID, userID)
}

// Like ставит лайк объявлению
func (s *service) Like(ctx context.Context, postID, userID string) (*api.Post, error) {
	return s.apiClient.LikePost(ctx, postID, userID)
}

// Teams запрашивает серверное разбиение на составы.
// Балансировка принадлежит серверу, клиент только отображает списки.
func (s *service) Teams(ctx context.Context, postID string) (*api.TeamsResponse, error) {
	return s.apiClient.SplitTeams(ctx, postID)
}

// Participants разворачивает ID участников в профили.
// Недоступный профиль не роняет весь список.
func (s *service) Participants(ctx context.Context, post *api.Post) ([]api.User, error) {
	users := make([]api.User, 0, len(post.ParticipantsIDs))
	for _, id := range post.ParticipantsIDs {
		user, err := s.apiClient.GetUser(ctx, id)
		if err != nil {
			s.logger.Warn("failed to resolve participant", "user_id", id, "error", err)
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

// Comments возвращает комментарии к матчу
func (s *service) Comments(ctx context.Context, postID string) ([]api.Comment, error) {
	return s.apiClient.GetPostComments(ctx, postID)
}

// AddComment добавляет комментарий к матчу
func (s *service) AddComment(ctx context.Context, postID, owner, text string) (*api.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}

	req := api.CreateCommentRequest{
		PostID:  postID,
		Owner:   owner,
		Comment: text,
	}
	return s.apiClient.CreateComment(ctx, req)
}
