package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

const maxConcurrent = 4

// FetchPosts fetches the front listings of several subreddits
// concurrently and merges them newest-first. A subreddit that fails to
// fetch is skipped; the whole call fails only when every subreddit does.
func (c *Client) FetchPosts(ctx context.Context, subreddits []string, limit int) ([]*Post, error) {
	if len(subreddits) == 0 {
		return nil, nil
	}

	hotKey := "posts:" + strings.Join(subreddits, "+")
	if cached, ok := c.hot.Get(hotKey); ok {
		return cached.([]*Post), nil
	}

	var (
		mu     sync.Mutex
		merged []*Post
		errs   []error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for _, sub := range subreddits {
		sub := sub
		g.Go(func() error {
			posts, err := c.fetchSubreddit(ctx, sub, limit)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			merged = append(merged, posts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(merged) == 0 && len(errs) > 0 {
		return nil, fmt.Errorf("fetching listings: %w", errs[0])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedUTC > merged[j].CreatedUTC
	})
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	c.hot.SetDefault(hotKey, merged)
	return merged, nil
}

func (c *Client) fetchSubreddit(ctx context.Context, subreddit string, limit int) ([]*Post, error) {
	url := fmt.Sprintf("%s/r/%s.json?limit=%d", c.baseURL, subreddit, limit)

	var t Thing
	if err := c.get(ctx, url, &t); err != nil {
		return nil, err
	}
	var l Listing
	if err := json.Unmarshal(t.Data, &l); err != nil {
		return nil, fmt.Errorf("decoding listing for r/%s: %w", subreddit, err)
	}

	posts := make([]*Post, 0, len(l.Children))
	for _, child := range l.Children {
		if child.Kind != KindPost {
			continue
		}
		var p Post
		if err := json.Unmarshal(child.Data, &p); err != nil {
			continue
		}
		posts = append(posts, &p)
	}
	return posts, nil
}
