package db

func scanComment(scanner interface{ Scan(dest ...any) error }) (Comment, error) {
	var c Comment
	err := scanner.Scan(&c.ID, &c.PostID, &c.UserID, &c.Score)
	return c, err
}

func (d *DB) queryComments(query string, args ...any) ([]Comment, error) {
	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// AllComments returns all comments in import order
func (d *DB) AllComments() ([]Comment, error) {
	return d.queryComments(`
		SELECT id, post_id, user_id, score
		FROM comments ORDER BY rowid
	`)
}

// CommentsForPost returns the comments on a post in import order
func (d *DB) CommentsForPost(postID string) ([]Comment, error) {
	return d.queryComments(`
		SELECT id, post_id, user_id, score
		FROM comments WHERE post_id = ? ORDER BY rowid
	`, postID)
}
