package reddit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingPayload(sub string, ids ...string) string {
	children := ""
	for i, id := range ids {
		if i > 0 {
			children += ","
		}
		children += fmt.Sprintf(`{"kind": "t3", "data": {
			"id": %q, "title": "post %s", "author": "ada", "subreddit": %q,
			"score": 10, "num_comments": 1, "created_utc": %d
		}}`, id, id, sub, 1700000000+i)
	}
	return `{"kind": "Listing", "data": {"children": [` + children + `]}}`
}

func TestFetchPostsMergesSubreddits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/r/golang.json":
			w.Write([]byte(listingPayload("golang", "g1", "g2")))
		case "/r/programming.json":
			w.Write([]byte(listingPayload("programming", "p1")))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	posts, err := c.FetchPosts(context.Background(), []string{"golang", "programming"}, 25)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	// Newest first across subreddits.
	for i := 1; i < len(posts); i++ {
		assert.GreaterOrEqual(t, posts[i-1].CreatedUTC, posts[i].CreatedUTC)
	}
}

func TestFetchPostsSkipsFailingSubreddit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/r/golang.json" {
			w.Write([]byte(listingPayload("golang", "g1")))
			return
		}
		http.Error(w, "banned", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	posts, err := c.FetchPosts(context.Background(), []string{"golang", "gone"}, 25)
	require.NoError(t, err, "one healthy subreddit is enough")
	require.Len(t, posts, 1)
	assert.Equal(t, "g1", posts[0].ID)
}

func TestFetchPostsFailsWhenAllSubredditsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	_, err := c.FetchPosts(context.Background(), []string{"golang", "programming"}, 25)
	assert.Error(t, err)
}

func TestFetchPostsUsesHotCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(listingPayload("golang", "g1")))
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	ctx := context.Background()
	_, err := c.FetchPosts(ctx, []string{"golang"}, 25)
	require.NoError(t, err)
	_, err = c.FetchPosts(ctx, []string{"golang"}, 25)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second call served from the hot cache")
}
