package posts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/pitchmate/pitchmate/internal/client/api"
	"github.com/pitchmate/pitchmate/internal/client/storage"
	"github.com/pitchmate/pitchmate/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(apiClient clientapi.ClientAPI, feedStorage storage.FeedStorage) *service {
	return &service{
		apiClient:   apiClient,
		feedStorage: feedStorage,
		logger:      testLogger(),
		now:         time.Now,
	}
}

func TestService_Feed_CachesSnapshot(t *testing.T) {
	fetched := []api.Post{
		{ID: "post-1", Title: "Evening game"},
		{ID: "post-2", Title: "Weekend match"},
	}

	mockAPI := &clientapi.ClientAPIMock{
		ListPostsFunc: func(ctx context.Context, owner string) ([]api.Post, error) {
			assert.Empty(t, owner)
			return fetched, nil
		},
	}
	mockFeed := &storage.FeedStorageMock{
		SaveFeedFunc: func(ctx context.Context, feed *storage.CachedFeed) error {
			return nil
		},
	}

	svc := newTestService(mockAPI, mockFeed)
	fixedNow := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	posts, err := svc.Feed(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, fetched, posts)

	// Снимок закеширован с отметкой времени загрузки
	saves := mockFeed.SaveFeedCalls()
	require.Len(t, saves, 1)
	assert.Equal(t, fetched, saves[0].Feed.Posts)
	assert.Equal(t, fixedNow.Unix(), saves[0].Feed.FetchedAt)
}

func TestService_Feed_OwnerFilterNotCached(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		ListPostsFunc: func(ctx context.Context, owner string) ([]api.Post, error) {
			assert.Equal(t, "user-123", owner)
			return []api.Post{{ID: "post-1"}}, nil
		},
	}
	mockFeed := &storage.FeedStorageMock{}

	svc := newTestService(mockAPI, mockFeed)

	posts, err := svc.Feed(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	// Фильтрованная лента не перетирает полный снимок
	assert.Empty(t, mockFeed.SaveFeedCalls())
}

func TestService_Feed_CacheErrorNotFatal(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		ListPostsFunc: func(ctx context.Context, owner string) ([]api.Post, error) {
			return []api.Post{{ID: "post-1"}}, nil
		},
	}
	mockFeed := &storage.FeedStorageMock{
		SaveFeedFunc: func(ctx context.Context, feed *storage.CachedFeed) error {
			return errors.New("disk full")
		},
	}

	svc := newTestService(mockAPI, mockFeed)

	// Ошибка кеширования ленту не роняет
	posts, err := svc.Feed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestService_Feed_FetchError(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		ListPostsFunc: func(ctx context.Context, owner string) ([]api.Post, error) {
			return nil, errors.New("connection refused")
		},
	}
	mockFeed := &storage.FeedStorageMock{}

	svc := newTestService(mockAPI, mockFeed)

	_, err := svc.Feed(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, mockFeed.SaveFeedCalls())
}

func TestService_CachedFeed(t *testing.T) {
	snapshot := &storage.CachedFeed{
		Posts:     []api.Post{{ID: "post-1"}},
		FetchedAt: 12345,
	}
	mockFeed := &storage.FeedStorageMock{
		GetFeedFunc: func(ctx context.Context) (*storage.CachedFeed, error) {
			return snapshot, nil
		},
	}

	svc := newTestService(&clientapi.ClientAPIMock{}, mockFeed)

	got, err := svc.CachedFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestService_CachedFeed_NotCached(t *testing.T) {
	mockFeed := &storage.FeedStorageMock{
		GetFeedFunc: func(ctx context.Context) (*storage.CachedFeed, error) {
			return nil, storage.ErrFeedNotCached
		},
	}

	svc := newTestService(&clientapi.ClientAPIMock{}, mockFeed)

	_, err := svc.CachedFeed(context.Background())
	assert.ErrorIs(t, err, storage.ErrFeedNotCached)
}

func TestService_ClearCache(t *testing.T) {
	feedMock := &storage.FeedStorageMock{
		DeleteFeedFunc: func(ctx context.Context) error { return nil },
	}
	svc := newTestService(&clientapi.ClientAPIMock{}, feedMock)

	err := svc.ClearCache(context.Background())
	require.NoError(t, err)
	assert.Len(t, feedMock.DeleteFeedCalls(), 1)
}

func TestService_ClearCache_StorageError(t *testing.T) {
	feedMock := &storage.FeedStorageMock{
		DeleteFeedFunc: func(ctx context.Context) error {
			return errors.New("disk error")
		},
	}
	svc := newTestService(&clientapi.ClientAPIMock{}, feedMock)

	err := svc.ClearCache(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear feed cache")
}

func TestService_Create(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		CreatePostFunc: func(ctx context.Context, post api.Post) (*api.Post, error) {
			created := post
			created.ID = "post-1"
			return &created, nil
		},
	}

	svc := newTestService(mockAPI, &storage.FeedStorageMock{})

	post, err := svc.Create(context.Background(), api.Post{
		Owner:    "user-123",
		Title:    "Evening game",
		Location: "Central park",
		Date:     "2026-09-05T18:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		post api.Post
	}{
		{"empty title", api.Post{Location: "park", Date: "2026-09-05T18:30:00Z"}},
		{"empty location", api.Post{Title: "game", Date: "2026-09-05T18:30:00Z"}},
		{"empty date", api.Post{Title: "game", Location: "park"}},
		{"bad date format", api.Post{Title: "game", Location: "park", Date: "tomorrow evening"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := &clientapi.ClientAPIMock{}
			svc := newTestService(mockAPI, &storage.FeedStorageMock{})

			_, err := svc.Create(context.Background(), tt.post)
			require.Error(t, err)
			assert.Empty(t, mockAPI.CreatePostCalls())
		})
	}
}

func TestService_Update_BadDate(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	svc := newTestService(mockAPI, &storage.FeedStorageMock{})

	_, err := svc.Update(context.Background(), "post-1", api.Post{Date: "next friday"})
	require.Error(t, err)
	assert.Empty(t, mockAPI.UpdatePostCalls())
}

func TestService_JoinLeaveLike(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		AddParticipantFunc: func(ctx context.Context, postID, userID string) (*api.Post, error) {
			return &api.Post{ID: postID, ParticipantsIDs: []string{userID}}, nil
		},
		RemoveParticipantFunc: func(ctx context.Context, postID, userID string) (*api.Post, error) {
			return &api.Post{ID: postID}, nil
		},
		LikePostFunc: func(ctx context.Context, postID, userID string) (*api.Post, error) {
			return &api.Post{ID: postID, LikesNumber: 1}, nil
		},
	}
	svc := newTestService(mockAPI, &storage.FeedStorageMock{})
	ctx := context.Background()

	joined, err := svc.Join(ctx, "post-1", "user-123")
	require.NoError(t, err)
	assert.Contains(t, joined.ParticipantsIDs, "user-123")

	left, err := svc.Leave(ctx, "post-1", "user-123")
	require.NoError(t, err)
	assert.Empty(t, left.ParticipantsIDs)

	liked, err := svc.Like(ctx, "post-1", "user-123")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesNumber)
}

func TestService_Participants(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		GetUserFunc: func(ctx context.Context, userID string) (*api.User, error) {
			if userID == "user-2" {
				return nil, errors.New("not found")
			}
			return &api.User{ID: userID, Username: "player-" + userID}, nil
		},
	}
	svc := newTestService(mockAPI, &storage.FeedStorageMock{})

	post := &api.Post{ParticipantsIDs: []string{"user-1", "user-2", "user-3"}}

	users, err := svc.Participants(context.Background(), post)
	require.NoError(t, err)

	// Недоступный профиль пропускается, остальные на месте
	require.Len(t, users, 2)
	assert.Equal(t, "user-1", users[0].ID)
	assert.Equal(t, "user-3", users[1].ID)
}

func TestService_Teams(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		SplitTeamsFunc: func(ctx context.Context, postID string) (*api.TeamsResponse, error) {
			assert.Equal(t, "post-1", postID)
			return &api.TeamsResponse{TeamA: []string{"alice"}, TeamB: []string{"bob"}}, nil
		},
	}
	svc := newTestService(mockAPI, &storage.FeedStorageMock{})

	teams, err := svc.Teams(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, teams.TeamA)
	assert.Equal(t, []string{"bob"}, teams.TeamB)
}

func TestService_AddComment(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{
		CreateCommentFunc: func(ctx context.Context, req api.CreateCommentRequest) (*api.Comment, error) {
			assert.Equal(t, "post-1", req.PostID)
			assert.Equal(t, "user-123", req.Owner)
			assert.Equal(t, "great match!", req.Comment)
			return &api.Comment{ID: "comment-1", Comment: req.Comment}, nil
		},
	}
	svc := newTestService(mockAPI, &storage.FeedStorageMock{})

	comment, err := svc.AddComment(context.Background(), "post-1", "user-123", "great match!")
	require.NoError(t, err)
	assert.Equal(t, "comment-1", comment.ID)
}

func TestService_AddComment_Empty(t *testing.T) {
	mockAPI := &clientapi.ClientAPIMock{}
	svc := newTestService(mockAPI, &storage.FeedStorageMock{})

	_, err := svc.AddComment(context.Background(), "post-1", "user-123", "")
	require.Error(t, err)
	assert.Empty(t, mockAPI.CreateCommentCalls())
}
