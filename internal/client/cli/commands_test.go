package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchmate/pitchmate/internal/client/auth"
	"github.com/pitchmate/pitchmate/internal/client/iocli"
	"github.com/pitchmate/pitchmate/internal/client/posts"
	"github.com/pitchmate/pitchmate/internal/client/session"
	"github.com/pitchmate/pitchmate/internal/client/storage"
	"github.com/pitchmate/pitchmate/pkg/api"
)

// newTestIO делает IOMock, складывающий весь вывод в общий буфер
func newTestIO(out *strings.Builder) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			for i, v := range a {
				if i > 0 {
					out.WriteString(" ")
				}
				if s, ok := v.(string); ok {
					out.WriteString(s)
				}
			}
			out.WriteString("\n")
		},
		PrintfFunc: func(format string, a ...any) {
			out.WriteString(format)
		},
		WriteFunc: func(p []byte) (int, error) {
			out.Write(p)
			return len(p), nil
		},
	}
}

// newTestSession строит Store поверх in-memory хранилища
func newTestSession(t *testing.T) *session.Store {
	t.Helper()

	var rec *storage.SessionRecord
	mock := &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, r *storage.SessionRecord) error {
			rec = r
			return nil
		},
		GetSessionFunc: func(ctx context.Context) (*storage.SessionRecord, error) {
			if rec == nil {
				return nil, storage.ErrSessionNotFound
			}
			return rec, nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			rec = nil
			return nil
		},
	}
	return session.NewStore(mock, time.Hour)
}

func loginTestUser(t *testing.T, sess *session.Store) *api.User {
	t.Helper()

	user := &api.User{ID: "user-123", Username: "testuser", Email: "test@example.com"}
	require.NoError(t, sess.SetAuthInfo(context.Background(), user, "access-1", "refresh-1"))
	return user
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	var out strings.Builder
	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "unknown", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	// Справка печатается, чтобы подсказать правильную команду
	assert.Contains(t, out.String(), "Usage:")
}

func TestCli_runStatus_NotAuthenticated(t *testing.T) {
	var out strings.Builder
	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Not authenticated")
}

func TestCli_runStatus_Authenticated(t *testing.T) {
	var out strings.Builder
	sess := newTestSession(t)
	loginTestUser(t, sess)

	cli := New(newTestIO(&out), sess, &auth.ServiceMock{}, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Status: Authenticated")
	assert.Contains(t, out.String(), "Username")
}

func TestCli_runLogin_Credentials(t *testing.T) {
	var out strings.Builder
	io := newTestIO(&out)
	io.ReadInputFunc = func(prompt string) (string, error) {
		return "test@example.com", nil
	}
	io.ReadPasswordFunc = func(prompt string) (string, error) {
		return "password123", nil
	}

	authMock := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, email, password string) (*api.User, error) {
			return &api.User{ID: "user-123", Username: "testuser", Email: email}, nil
		},
	}

	cli := New(io, newTestSession(t), authMock, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "login", nil)
	require.NoError(t, err)

	logins := authMock.LoginCalls()
	require.Len(t, logins, 1)
	assert.Equal(t, "test@example.com", logins[0].Email)
	assert.Equal(t, "password123", logins[0].Password)
	assert.Contains(t, out.String(), "Login successful")
}

func TestCli_runLogout(t *testing.T) {
	var out strings.Builder
	authMock := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}

	cli := New(newTestIO(&out), newTestSession(t), authMock, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "logout", nil)
	require.NoError(t, err)
	assert.Len(t, authMock.LogoutCalls(), 1)
	assert.Contains(t, out.String(), "Logout successful")
}

func TestCli_runFeed(t *testing.T) {
	var out strings.Builder
	postsMock := &posts.ServiceMock{
		FeedFunc: func(ctx context.Context, owner string) ([]api.Post, error) {
			assert.Empty(t, owner)
			return []api.Post{
				{ID: "post-1", Title: "Evening game", Location: "Central park", Date: "2026-09-05T18:30:00Z"},
			}, nil
		},
	}

	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "feed", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Evening game")
	assert.Contains(t, out.String(), "Central park")
}

func TestCli_runFeed_Empty(t *testing.T) {
	var out strings.Builder
	postsMock := &posts.ServiceMock{
		FeedFunc: func(ctx context.Context, owner string) ([]api.Post, error) {
			return []api.Post{}, nil
		},
	}

	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "feed", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No matches found")
}

func TestCli_runFeed_Mine_RequiresAuth(t *testing.T) {
	var out strings.Builder
	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "feed", []string{"--mine"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestCli_runFeed_Offline_NotCached(t *testing.T) {
	var out strings.Builder
	postsMock := &posts.ServiceMock{
		CachedFeedFunc: func(ctx context.Context) (*storage.CachedFeed, error) {
			return nil, storage.ErrFeedNotCached
		},
	}

	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "feed", []string{"--offline"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cached feed")
}

func TestCli_runFeed_Offline(t *testing.T) {
	var out strings.Builder
	postsMock := &posts.ServiceMock{
		CachedFeedFunc: func(ctx context.Context) (*storage.CachedFeed, error) {
			return &storage.CachedFeed{
				Posts:     []api.Post{{ID: "post-1", Title: "Cached game"}},
				FetchedAt: time.Date(2026, 8, 29, 19, 0, 0, 0, time.UTC).Unix(),
			}, nil
		},
	}

	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "feed", []string{"--offline"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Cached game")
}

func TestCli_runFeed_ClearCache(t *testing.T) {
	var out strings.Builder
	postsMock := &posts.ServiceMock{
		ClearCacheFunc: func(ctx context.Context) error { return nil },
	}

	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "feed", []string{"--clear-cache"})
	require.NoError(t, err)
	assert.Len(t, postsMock.ClearCacheCalls(), 1)
	assert.Contains(t, out.String(), "Feed cache cleared")
}

// Пайплайн чистит сессию молча, если refresh провалился посреди
// команды; пользователь должен увидеть это как сообщение.
func TestCli_SessionExpiredNotice(t *testing.T) {
	var out strings.Builder
	sess := newTestSession(t)
	loginTestUser(t, sess)

	New(newTestIO(&out), sess, &auth.ServiceMock{}, &posts.ServiceMock{}, nil)

	require.NoError(t, sess.Clear(context.Background()))
	assert.Contains(t, out.String(), "session has expired")
}

// Явный logout тоже чистит сессию, но сообщения о протухшей
// сессии при этом быть не должно
func TestCli_runLogout_NoExpiredNotice(t *testing.T) {
	var out strings.Builder
	sess := newTestSession(t)
	loginTestUser(t, sess)

	authMock := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error {
			return sess.Clear(ctx)
		},
	}

	cli := New(newTestIO(&out), sess, authMock, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "logout", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Logout successful")
	assert.NotContains(t, out.String(), "session has expired")
}

func TestCli_runLike(t *testing.T) {
	var out strings.Builder
	sess := newTestSession(t)
	loginTestUser(t, sess)

	postsMock := &posts.ServiceMock{
		LikeFunc: func(ctx context.Context, postID, userID string) (*api.Post, error) {
			assert.Equal(t, "post-1", postID)
			assert.Equal(t, "user-123", userID)
			return &api.Post{ID: postID, Title: "Evening game", LikesNumber: 4}, nil
		},
	}

	cli := New(newTestIO(&out), sess, &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "like", []string{"post-1"})
	require.NoError(t, err)
	assert.Len(t, postsMock.LikeCalls(), 1)
}

func TestCli_runLike_NotAuthenticated(t *testing.T) {
	var out strings.Builder
	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "like", []string{"post-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestCli_runAddComment_FromArgs(t *testing.T) {
	var out strings.Builder
	sess := newTestSession(t)
	loginTestUser(t, sess)

	postsMock := &posts.ServiceMock{
		AddCommentFunc: func(ctx context.Context, postID, owner, text string) (*api.Comment, error) {
			return &api.Comment{ID: "comment-1", Owner: owner, Comment: text}, nil
		},
	}

	cli := New(newTestIO(&out), sess, &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "comment", []string{"post-1", "I'll", "bring", "the", "ball"})
	require.NoError(t, err)

	calls := postsMock.AddCommentCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "post-1", calls[0].PostID)
	assert.Equal(t, "user-123", calls[0].Owner)
	assert.Equal(t, "I'll bring the ball", calls[0].Text)
}

func TestCli_runComments(t *testing.T) {
	var out strings.Builder
	postsMock := &posts.ServiceMock{
		CommentsFunc: func(ctx context.Context, postID string) ([]api.Comment, error) {
			return []api.Comment{
				{Owner: "alice", Comment: "count me in"},
			}, nil
		},
	}

	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, postsMock, nil)

	err := cli.Run(context.Background(), "comments", []string{"post-1"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "count me in")
}

func TestCli_runHelp(t *testing.T) {
	var out strings.Builder
	cli := New(newTestIO(&out), newTestSession(t), &auth.ServiceMock{}, &posts.ServiceMock{}, nil)

	err := cli.Run(context.Background(), "help", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Commands:")
}
