package db

import (
	"fmt"

	"stackgraph/internal/dump"
)

// Counts holds the row count of each dump table
type Counts struct {
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
	Users    int `json:"users"`
}

// Streams loads every table back into record streams, in import order
func (d *DB) Streams() (*dump.Streams, error) {
	posts, err := d.AllPosts()
	if err != nil {
		return nil, fmt.Errorf("loading posts: %w", err)
	}
	comments, err := d.AllComments()
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}
	users, err := d.AllUsers()
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	s := &dump.Streams{
		Posts:    make([]dump.Record, 0, len(posts)),
		Comments: make([]dump.Record, 0, len(comments)),
		Users:    make([]dump.Record, 0, len(users)),
	}
	for _, p := range posts {
		s.Posts = append(s.Posts, p.Record())
	}
	for _, c := range comments {
		s.Comments = append(s.Comments, c.Record())
	}
	for _, u := range users {
		s.Users = append(s.Users, u.Record())
	}
	return s, nil
}

// Counts returns how many rows each table holds
func (d *DB) Counts() (*Counts, error) {
	var c Counts
	err := d.conn.QueryRow(`
		SELECT (SELECT COUNT(*) FROM posts),
		       (SELECT COUNT(*) FROM comments),
		       (SELECT COUNT(*) FROM users)
	`).Scan(&c.Posts, &c.Comments, &c.Users)
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}
	return &c, nil
}
