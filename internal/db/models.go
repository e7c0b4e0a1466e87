package db

import "stackgraph/internal/dump"

// User represents a row in the users table
type User struct {
	ID          string `json:"id"`
	Reputation  string `json:"reputation"`
	DisplayName string `json:"display_name"`
	Views       string `json:"views"`
	UpVotes     string `json:"up_votes"`
	DownVotes   string `json:"down_votes"`
}

// Post represents a row in the posts table
type Post struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"owner_user_id"`
}

// Comment represents a row in the comments table
type Comment struct {
	ID     string `json:"id"`
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
	Score  string `json:"score"` // raw text, coerced by the graph builder
}

// Record converts the row back into dump attribute form
func (u User) Record() dump.Record {
	return dump.Record{
		dump.FieldID:  u.ID,
		"Reputation":  u.Reputation,
		"DisplayName": u.DisplayName,
		"Views":       u.Views,
		"UpVotes":     u.UpVotes,
		"DownVotes":   u.DownVotes,
	}
}

// Record converts the row back into dump attribute form
func (p Post) Record() dump.Record {
	return dump.Record{
		dump.FieldID:          p.ID,
		dump.FieldOwnerUserID: p.OwnerUserID,
	}
}

// Record converts the row back into dump attribute form
func (c Comment) Record() dump.Record {
	return dump.Record{
		dump.FieldID:     c.ID,
		dump.FieldPostID: c.PostID,
		dump.FieldUserID: c.UserID,
		dump.FieldScore:  c.Score,
	}
}

func userFromRecord(r dump.Record) User {
	return User{
		ID:          r.Get(dump.FieldID),
		Reputation:  r.Get("Reputation"),
		DisplayName: r.Get("DisplayName"),
		Views:       r.Get("Views"),
		UpVotes:     r.Get("UpVotes"),
		DownVotes:   r.Get("DownVotes"),
	}
}

func postFromRecord(r dump.Record) Post {
	return Post{ID: r.Get(dump.FieldID), OwnerUserID: r.Get(dump.FieldOwnerUserID)}
}

func commentFromRecord(r dump.Record) Comment {
	return Comment{
		ID:     r.Get(dump.FieldID),
		PostID: r.Get(dump.FieldPostID),
		UserID: r.Get(dump.FieldUserID),
		Score:  r.Get(dump.FieldScore),
	}
}
