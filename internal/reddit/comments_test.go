package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threadPayload is a trimmed two-listing comments response: one post,
// two top-level comments, the first with a nested reply, plus a "more"
// stub that must be skipped.
const threadPayload = `[
  {"kind": "Listing", "data": {"children": [
    {"kind": "t3", "data": {
      "id": "abc123", "title": "Show: a terminal reader", "author": "ada",
      "subreddit": "golang", "url": "https://example.com/post",
      "permalink": "/r/golang/comments/abc123/", "score": 321,
      "num_comments": 3, "created_utc": 1700000000
    }}
  ]}},
  {"kind": "Listing", "data": {"children": [
    {"kind": "t1", "data": {
      "id": "c1", "author": "brook", "body": "nice work", "body_html": "<p>nice work</p>",
      "score": 12, "created_utc": 1700000100,
      "replies": {"kind": "Listing", "data": {"children": [
        {"kind": "t1", "data": {
          "id": "c2", "author": "casey", "body": "agreed", "body_html": "<p>agreed</p>",
          "score": 4, "created_utc": 1700000200, "replies": ""
        }}
      ]}}
    }},
    {"kind": "t1", "data": {
      "id": "c3", "author": "drew", "body": "second", "body_html": "<p>second</p>",
      "score": 2, "created_utc": 1700000300, "replies": ""
    }},
    {"kind": "more", "data": {"count": 14, "children": ["c4", "c5"]}}
  ]}}
]`

func TestDecodeThread(t *testing.T) {
	th, err := DecodeThread([]byte(threadPayload))
	require.NoError(t, err)

	assert.Equal(t, "abc123", th.Post.ID)
	assert.Equal(t, "Show: a terminal reader", th.Post.Title)
	assert.Equal(t, 3, th.Post.NumComments)

	require.Len(t, th.Comments, 2, "more stub is skipped, not surfaced")
	assert.Equal(t, "c1", th.Comments[0].ID)
	assert.Equal(t, "c3", th.Comments[1].ID)

	kids := th.Comments[0].Children()
	require.Len(t, kids, 1)
	assert.Equal(t, "c2", kids[0].ID)
	assert.Empty(t, kids[0].Children(), `empty-string replies decode to no children`)
}

func TestDecodeThreadRejectsTruncatedPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "<html>rate limited</html>"},
		{name: "single listing", raw: `[{"kind": "Listing", "data": {"children": []}}]`},
		{name: "no post", raw: `[{"kind": "Listing", "data": {"children": []}}, {"kind": "Listing", "data": {"children": []}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeThread([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestFetchThread(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/comments/abc123.json", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(threadPayload))
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	th, err := c.FetchThread(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", th.Post.ID)
	assert.NotEmpty(t, th.Raw, "raw payload kept for the persistent cache")
}

func TestFetchThreadFailureReturnsNoPartialTree(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	th, err := c.FetchThread(context.Background(), "abc123")
	assert.Error(t, err)
	assert.Nil(t, th)
}

func TestFetchThreadCollapsesConcurrentFetches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(100 * time.Millisecond) // hold the request open so callers overlap
		w.Write([]byte(threadPayload))
	}))
	defer srv.Close()

	c := NewClient()
	c.baseURL = srv.URL

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.FetchThread(context.Background(), "abc123")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "five callers, one request")
}
