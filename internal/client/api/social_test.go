package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/terrabond/terrabond-cli/internal/client/models"
)

func newSocialServer(t *testing.T, handler http.HandlerFunc) *SocialClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSocialClient(New(srv.URL, 2*time.Second, nil))
}

func TestFeed_PagingQuery(t *testing.T) {
	client := newSocialServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/feed", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("size"))
		writeEnvelope(t, w, true, "", []models.Post{
			{ID: 1, Content: "bonjour", Author: models.User{Username: "alice"}},
		})
	})

	posts, err := client.Feed(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "bonjour", posts[0].Content)
}

func TestAddComment_PostsContent(t *testing.T) {
	client := newSocialServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts/5/comments", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Content string `json:"content"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "salut", body.Content)
		writeEnvelope(t, w, true, "", models.Comment{ID: 9, Content: body.Content})
	})

	c, err := client.AddComment(context.Background(), 5, "salut")
	require.NoError(t, err)
	require.Equal(t, int64(9), c.ID)
}

func TestUnlikePost_UsesDelete(t *testing.T) {
	client := newSocialServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts/3/like", r.URL.Path)
		require.Equal(t, http.MethodDelete, r.Method)
		writeEnvelope(t, w, true, "", nil)
	})

	require.NoError(t, client.UnlikePost(context.Background(), 3))
}

func TestHashtagPosts_EscapesTag(t *testing.T) {
	client := newSocialServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/hashtags/road trip/posts", r.URL.Path)
		writeEnvelope(t, w, true, "", []models.Post{})
	})

	posts, err := client.HashtagPosts(context.Background(), "road trip", 0)
	require.NoError(t, err)
	require.Empty(t, posts)
}
