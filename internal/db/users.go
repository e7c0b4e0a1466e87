package db

// scanUser scans a row into a User. The row must have all 6 columns in standard order.
func scanUser(scanner interface{ Scan(dest ...any) error }) (User, error) {
	var u User
	err := scanner.Scan(&u.ID, &u.Reputation, &u.DisplayName, &u.Views, &u.UpVotes, &u.DownVotes)
	return u, err
}

// AllUsers returns all users in import order
func (d *DB) AllUsers() ([]User, error) {
	rows, err := d.conn.Query(`
		SELECT id, reputation, display_name, views, up_votes, down_votes
		FROM users ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUser returns a single user by ID, or nil if not found
func (d *DB) GetUser(id string) (*User, error) {
	row := d.conn.QueryRow(`
		SELECT id, reputation, display_name, views, up_votes, down_votes
		FROM users WHERE id = ?
	`, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
