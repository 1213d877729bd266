package cache

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/whyisjake/today-tui/internal/reddit"
)

// ListingKey builds the cache key for a merged set of subreddits.
func ListingKey(subreddits []string) string {
	return strings.Join(subreddits, "+")
}

// GetListing retrieves the cached merged listing for a subreddit set.
// Returns (posts, isFresh, error). posts is nil on cache miss.
func (d *DB) GetListing(key string, ttl time.Duration) ([]*reddit.Post, bool, error) {
	row := d.db.QueryRow(`SELECT post_ids, fetched_at FROM listings WHERE key = ?`, key)

	var idsJSON string
	var fetchedAt int64
	err := row.Scan(&idsJSON, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(idsJSON), &ids); err != nil {
		return nil, false, err
	}

	posts := make([]*reddit.Post, 0, len(ids))
	for _, id := range ids {
		post, err := d.getPost(id)
		if err != nil {
			return nil, false, err
		}
		if post != nil {
			posts = append(posts, post)
		}
	}

	isFresh := time.Since(time.Unix(fetchedAt, 0)) < ttl
	return posts, isFresh, nil
}

// PutListing stores the merged listing and its posts.
func (d *DB) PutListing(key string, posts []*reddit.Post) error {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if err := d.putPost(p); err != nil {
			return err
		}
		ids = append(ids, p.ID)
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(`INSERT OR REPLACE INTO listings (key, post_ids, fetched_at) VALUES (?, ?, ?)`,
		key, string(idsJSON), time.Now().Unix())
	return err
}

// InvalidateListing drops a cached listing so the next load refetches.
func (d *DB) InvalidateListing(key string) error {
	_, err := d.db.Exec(`DELETE FROM listings WHERE key = ?`, key)
	return err
}

func (d *DB) getPost(id string) (*reddit.Post, error) {
	row := d.db.QueryRow(`SELECT id, subreddit, title, author, url, permalink,
		selftext, selftext_html, score, num_comments, created_utc
		FROM posts WHERE id = ?`, id)

	var p reddit.Post
	err := row.Scan(&p.ID, &p.Subreddit, &p.Title, &p.Author, &p.URL, &p.Permalink,
		&p.Selftext, &p.SelftextHTML, &p.Score, &p.NumComments, &p.CreatedUTC)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DB) putPost(p *reddit.Post) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO posts
		(id, subreddit, title, author, url, permalink, selftext, selftext_html,
		 score, num_comments, created_utc, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Subreddit, p.Title, p.Author, p.URL, p.Permalink,
		p.Selftext, p.SelftextHTML, p.Score, p.NumComments, p.CreatedUTC,
		time.Now().Unix())
	return err
}
