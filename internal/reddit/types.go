package reddit

import (
	"encoding/json"
)

// Thing kinds used by the Reddit JSON API.
const (
	KindListing = "Listing"
	KindComment = "t1"
	KindPost    = "t3"
	KindMore    = "more"
)

// Thing is the universal Reddit envelope: a kind tag plus a payload whose
// shape depends on the kind.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Listing is the paged container Reddit wraps everything in.
type Listing struct {
	Children []Thing `json:"children"`
	After    string  `json:"after"`
}

// Post is a link or self post (kind t3).
type Post struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	Subreddit    string  `json:"subreddit"`
	URL          string  `json:"url"`
	Permalink    string  `json:"permalink"`
	Selftext     string  `json:"selftext"`
	SelftextHTML string  `json:"selftext_html"`
	Score        int     `json:"score"`
	NumComments  int     `json:"num_comments"`
	CreatedUTC   float64 `json:"created_utc"`
}

// Comment is one comment (kind t1) with its subtree in server order.
type Comment struct {
	ID         string  `json:"id"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	BodyHTML   string  `json:"body_html"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`

	// Replies is either an empty string or a nested Listing Thing.
	// Stored raw and parsed lazily so a deep thread decodes one level
	// at a time.
	RawReplies json.RawMessage `json:"replies"`

	children []*Comment
	parsed   bool
}

// Children returns the direct replies in server order, decoding the raw
// replies payload on first use. The empty-string form Reddit sends for
// leaf comments decodes to no children.
func (c *Comment) Children() []*Comment {
	if c.parsed {
		return c.children
	}
	c.parsed = true

	if len(c.RawReplies) == 0 || string(c.RawReplies) == `""` {
		return nil
	}
	var t Thing
	if err := json.Unmarshal(c.RawReplies, &t); err != nil || t.Kind != KindListing {
		return nil
	}
	var l Listing
	if err := json.Unmarshal(t.Data, &l); err != nil {
		return nil
	}
	c.children = decodeComments(l.Children)
	return c.children
}

// decodeComments turns Listing children into comments, skipping "more"
// stubs and anything unparseable.
func decodeComments(things []Thing) []*Comment {
	out := make([]*Comment, 0, len(things))
	for _, t := range things {
		if t.Kind != KindComment {
			continue
		}
		var c Comment
		if err := json.Unmarshal(t.Data, &c); err != nil {
			continue
		}
		out = append(out, &c)
	}
	return out
}
