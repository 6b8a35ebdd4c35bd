package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthtracker/internal/domain"
)

// UserRepo implements domain.UserRepository on PostgreSQL.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

var _ domain.UserRepository = (*UserRepo)(nil)

// Create inserts a new user. A duplicate email maps to domain.ErrConflict.
func (r *UserRepo) Create(ctx context.Context, name, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id, name, email;",
		name, email,
	).Scan(&u.ID, &u.Name, &u.Email)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("email %q already registered: %w", email, domain.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAll returns every user ordered by id.
func (r *UserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.sql.QueryContext(ctx, "SELECT id, name, email FROM users ORDER BY id;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByID returns the user with the given id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, name, email FROM users WHERE id = $1;", id,
	).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns the user with the given email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, name, email FROM users WHERE email = $1;", email,
	).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update writes the full row back. A duplicate email maps to domain.ErrConflict.
func (r *UserRepo) Update(ctx context.Context, u domain.User) (*domain.User, error) {
	var out domain.User
	err := r.db.sql.QueryRowContext(ctx,
		"UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING id, name, email;",
		u.Name, u.Email, u.ID,
	).Scan(&out.ID, &out.Name, &out.Email)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("email %q already registered: %w", u.Email, domain.ErrConflict)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", u.ID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the user with the given id.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM users WHERE id = $1;", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Exists reports whether a user with the given id is present.
func (r *UserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);", id,
	).Scan(&ok)
	return ok, err
}
