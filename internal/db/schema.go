package db

import "fmt"

// Stream order is rowid order, i.e. the order rows were imported in.
// users.id is unique: the first imported record for an id is kept.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id           TEXT PRIMARY KEY,
	reputation   TEXT NOT NULL DEFAULT '',
	display_name TEXT NOT NULL DEFAULT '',
	views        TEXT NOT NULL DEFAULT '',
	up_votes     TEXT NOT NULL DEFAULT '',
	down_votes   TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS posts (
	id            TEXT NOT NULL,
	owner_user_id TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS comments (
	id      TEXT NOT NULL DEFAULT '',
	post_id TEXT NOT NULL DEFAULT '',
	user_id TEXT NOT NULL DEFAULT '',
	score   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS comments_post_id ON comments(post_id);
`

// Migrate creates the dump tables if they do not exist
func (d *DB) Migrate() error {
	if _, err := d.conn.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
