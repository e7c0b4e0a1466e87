package db

// AllPosts returns all posts in import order
func (d *DB) AllPosts() ([]Post, error) {
	rows, err := d.conn.Query(`SELECT id, owner_user_id FROM posts ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.OwnerUserID); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
