package db

import (
	"database/sql"
	"fmt"

	"stackgraph/internal/dump"
)

// ImportStats reports how many records an import stored
type ImportStats struct {
	Posts          int `json:"posts"`
	Comments       int `json:"comments"`
	Users          int `json:"users"`
	DuplicateUsers int `json:"duplicate_users"` // dropped, the first record for an id is kept
}

// Import replaces the stored dump with streams. Everything runs in a single
// transaction: on error the previous contents are left untouched.
func (d *DB) Import(streams *dump.Streams) (*ImportStats, error) {
	if streams == nil {
		streams = &dump.Streams{}
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM comments; DELETE FROM posts; DELETE FROM users;`); err != nil {
		return nil, fmt.Errorf("clearing tables: %w", err)
	}

	var stats ImportStats
	if stats.Users, stats.DuplicateUsers, err = insertUsers(tx, streams.Users); err != nil {
		return nil, fmt.Errorf("importing users: %w", err)
	}
	if stats.Posts, err = insertPosts(tx, streams.Posts); err != nil {
		return nil, fmt.Errorf("importing posts: %w", err)
	}
	if stats.Comments, err = insertComments(tx, streams.Comments); err != nil {
		return nil, fmt.Errorf("importing comments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}
	return &stats, nil
}

func insertUsers(tx *sql.Tx, records []dump.Record) (inserted, duplicates int, err error) {
	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO users (id, reputation, display_name, views, up_votes, down_votes)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, err
	}
	defer stmt.Close()

	for _, r := range records {
		u := userFromRecord(r)
		res, err := stmt.Exec(u.ID, u.Reputation, u.DisplayName, u.Views, u.UpVotes, u.DownVotes)
		if err != nil {
			return 0, 0, fmt.Errorf("user %q: %w", u.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, err
		}
		if n == 0 {
			duplicates++
			continue
		}
		inserted++
	}
	return inserted, duplicates, nil
}

func insertPosts(tx *sql.Tx, records []dump.Record) (int, error) {
	stmt, err := tx.Prepare(`INSERT INTO posts (id, owner_user_id) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, r := range records {
		p := postFromRecord(r)
		if _, err := stmt.Exec(p.ID, p.OwnerUserID); err != nil {
			return 0, fmt.Errorf("post %q: %w", p.ID, err)
		}
	}
	return len(records), nil
}

func insertComments(tx *sql.Tx, records []dump.Record) (int, error) {
	stmt, err := tx.Prepare(`INSERT INTO comments (id, post_id, user_id, score) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, r := range records {
		c := commentFromRecord(r)
		if _, err := stmt.Exec(c.ID, c.PostID, c.UserID, c.Score); err != nil {
			return 0, fmt.Errorf("comment %q: %w", c.ID, err)
		}
	}
	return len(records), nil
}
