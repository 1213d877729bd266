package postlist

import (
	"fmt"
	"net/url"

	"github.com/whyisjake/today-tui/internal/reddit"
	"github.com/whyisjake/today-tui/internal/render"
)

// PostItem wraps a post for the bubbles list.
type PostItem struct {
	*reddit.Post
	Index int
}

func (p PostItem) Title() string {
	return p.Post.Title
}

func (p PostItem) Description() string {
	parts := make([]string, 0, 4)

	parts = append(parts, fmt.Sprintf("r/%s", p.Post.Subreddit))
	if p.Post.Score > 0 {
		parts = append(parts, fmt.Sprintf("%d points", p.Post.Score))
	}
	if p.Post.Author != "" {
		parts = append(parts, fmt.Sprintf("by %s", p.Post.Author))
	}
	parts = append(parts, render.TimeAgo(int64(p.Post.CreatedUTC)))
	parts = append(parts, fmt.Sprintf("%d comments", p.Post.NumComments))

	desc := ""
	for i, part := range parts {
		if i > 0 {
			desc += " | "
		}
		desc += part
	}

	if p.Post.URL != "" {
		if u, err := url.Parse(p.Post.URL); err == nil && u.Host != "" {
			desc += "  (" + u.Host + ")"
		}
	}
	return desc
}

func (p PostItem) FilterValue() string {
	return p.Post.Title + " " + p.Post.Subreddit
}
