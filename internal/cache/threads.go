package cache

import (
	"database/sql"
	"time"
)

// GetThread retrieves a cached raw thread payload for a post.
// Returns (payload, isFresh, error). payload is nil on cache miss.
func (d *DB) GetThread(postID string, ttl time.Duration) ([]byte, bool, error) {
	row := d.db.QueryRow(`SELECT payload, fetched_at FROM threads WHERE post_id = ?`, postID)

	var payload string
	var fetchedAt int64
	err := row.Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	isFresh := time.Since(time.Unix(fetchedAt, 0)) < ttl
	return []byte(payload), isFresh, nil
}

// PutThread stores a raw thread payload.
func (d *DB) PutThread(postID string, payload []byte) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO threads (post_id, payload, fetched_at) VALUES (?, ?, ?)`,
		postID, string(payload), time.Now().Unix())
	return err
}

// InvalidateThread drops a cached thread so a refresh refetches it.
func (d *DB) InvalidateThread(postID string) error {
	_, err := d.db.Exec(`DELETE FROM threads WHERE post_id = ?`, postID)
	return err
}
