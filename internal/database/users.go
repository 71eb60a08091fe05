package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"classbook/internal/models"
)

func (db *DB) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, password, email, phone, role, full_name, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		user.Username,
		user.Password,
		user.Email,
		user.Phone,
		user.Role,
		user.FullName,
		now,
		now,
	)
	if err != nil {
		return mapSQLError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (db *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, password, email, phone, role, full_name, created_at, updated_at
              FROM users WHERE id = ?`
	return db.queryUser(ctx, query, id)
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password, email, phone, role, full_name, created_at, updated_at
              FROM users WHERE username = ?`
	return db.queryUser(ctx, query, username)
}

func (db *DB) queryUser(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Phone,
		&user.Role, &user.FullName, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapSQLError(err)
	}
	return &user, nil
}

// UpdateUser applies a partial update: nil patch fields keep the stored
// value. Password is expected to be hashed already by the caller.
func (db *DB) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) error {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *patch.Phone)
	}
	if patch.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *patch.Role)
	}
	if patch.Password != nil {
		sets = append(sets, "password = ?")
		args = append(args, *patch.Password)
	}

	if len(sets) == 0 {
		// Nothing to change; still surface NotFound for a bad id.
		_, err := db.GetUserByID(ctx, id)
		return err
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now(), id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapSQLError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	query := `SELECT id, username, password, email, phone, role, full_name, created_at, updated_at
              FROM users ORDER BY id`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		err := rows.Scan(
			&u.ID, &u.Username, &u.Password, &u.Email, &u.Phone,
			&u.Role, &u.FullName, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (db *DB) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}
