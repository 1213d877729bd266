package reddit

import (
	"context"
	"encoding/json"
	"fmt"
)

// Thread is a post plus its full comment tree. Raw carries the payload
// as fetched so callers can persist it without re-encoding.
type Thread struct {
	Post     *Post
	Comments []*Comment
	Raw      []byte
}

// FetchThread fetches a post and its comment tree. The endpoint returns
// two listings: the post itself, then the top-level comments with their
// subtrees inline. Concurrent fetches of the same post share one request.
// A failure returns no partial tree.
func (c *Client) FetchThread(ctx context.Context, postID string) (*Thread, error) {
	v, err, _ := c.flight.Do("thread:"+postID, func() (interface{}, error) {
		url := fmt.Sprintf("%s/comments/%s.json?raw_json=0", c.baseURL, postID)
		var raw json.RawMessage
		if err := c.get(ctx, url, &raw); err != nil {
			return nil, err
		}
		return DecodeThread(raw)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Thread), nil
}

// DecodeThread parses a raw two-listing thread payload, as returned by
// the comments endpoint or stored in the persistent cache.
func DecodeThread(raw []byte) (*Thread, error) {
	var listings []Thing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, fmt.Errorf("decoding thread payload: %w", err)
	}
	if len(listings) < 2 {
		return nil, fmt.Errorf("thread payload has %d listings, want 2", len(listings))
	}

	var postListing Listing
	if err := json.Unmarshal(listings[0].Data, &postListing); err != nil {
		return nil, fmt.Errorf("decoding post listing: %w", err)
	}
	if len(postListing.Children) == 0 || postListing.Children[0].Kind != KindPost {
		return nil, fmt.Errorf("thread payload has no post")
	}
	var post Post
	if err := json.Unmarshal(postListing.Children[0].Data, &post); err != nil {
		return nil, fmt.Errorf("decoding post: %w", err)
	}

	var commentListing Listing
	if err := json.Unmarshal(listings[1].Data, &commentListing); err != nil {
		return nil, fmt.Errorf("decoding comment listing: %w", err)
	}

	return &Thread{
		Post:     &post,
		Comments: decodeComments(commentListing.Children),
		Raw:      raw,
	}, nil
}
