package utils

import (
	"context"
	"fmt"

	"venuebook/models"
)

// ListUsers returns every user including the stored password hash.
func ListUsers(ctx context.Context, db DB) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := db.Query(ctx, "SELECT id, username, password_hash FROM users ORDER BY id;")
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u := models.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func UpdateUser(ctx context.Context, db DB, id int64, username string, password string) error {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE users SET username = $1, password_hash = $2 WHERE id = $3;"
	if _, err = db.Exec(ctx, stmt, username, passwordHash, id); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, db DB, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := db.Exec(ctx, "DELETE FROM users WHERE id = $1;", id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
