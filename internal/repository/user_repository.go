package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/coworking-space-booking/internal/model"
)

const userColumns = "id, name, email, created_at"

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Ping verifies the database answers a trivial query.
func (r *UserRepo) Ping(ctx context.Context) (bool, error) {
	var ok int
	if err := r.DB.QueryRowContext(ctx, "SELECT 1 AS ok").Scan(&ok); err != nil {
		return false, err
	}
	return ok == 1, nil
}

// List returns all users, newest id first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Create inserts a user and returns the stored row.
func (r *UserRepo) Create(ctx context.Context, name, email string) (model.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email) VALUES (?, ?)",
		strings.TrimSpace(name), strings.TrimSpace(email))
	if err != nil {
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id).
		Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// Update overwrites name and email and returns the stored row.
func (r *UserRepo) Update(ctx context.Context, id uint64, name, email string) (model.User, error) {
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ? WHERE id = ?",
		strings.TrimSpace(name), strings.TrimSpace(email), id); err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user.  Deleting a missing id is not an error.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	return err
}
