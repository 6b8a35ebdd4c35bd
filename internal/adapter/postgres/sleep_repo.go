package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthtracker/internal/domain"
)

// SleepRepo implements domain.SleepRepository on PostgreSQL.
type SleepRepo struct {
	db *DB
}

// NewSleepRepo wraps a DB as a SleepRepository.
func NewSleepRepo(db *DB) *SleepRepo {
	return &SleepRepo{db: db}
}

var _ domain.SleepRepository = (*SleepRepo)(nil)

// Create inserts a new sleep record.
func (r *SleepRepo) Create(ctx context.Context, sl domain.Sleep) (*domain.Sleep, error) {
	var out domain.Sleep
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO sleep (duration, slept_on, user_id) VALUES ($1, $2, $3) RETURNING id, duration, slept_on, user_id;",
		sl.Duration, sl.Date.UTC(), sl.UserID,
	).Scan(&out.ID, &out.Duration, &out.Date, &out.UserID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAll returns every sleep record ordered by id.
func (r *SleepRepo) GetAll(ctx context.Context) ([]domain.Sleep, error) {
	return r.list(ctx, "SELECT id, duration, slept_on, user_id FROM sleep ORDER BY id;")
}

// GetByID returns the sleep record with the given id.
func (r *SleepRepo) GetByID(ctx context.Context, id int64) (*domain.Sleep, error) {
	var sl domain.Sleep
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, duration, slept_on, user_id FROM sleep WHERE id = $1;", id,
	).Scan(&sl.ID, &sl.Duration, &sl.Date, &sl.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sleep %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

// GetByUserID returns the sleep records owned by a user, ordered by id.
func (r *SleepRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Sleep, error) {
	return r.list(ctx, "SELECT id, duration, slept_on, user_id FROM sleep WHERE user_id = $1 ORDER BY id;", userID)
}

// Update writes the full row back.
func (r *SleepRepo) Update(ctx context.Context, sl domain.Sleep) (*domain.Sleep, error) {
	var out domain.Sleep
	err := r.db.sql.QueryRowContext(ctx,
		"UPDATE sleep SET duration = $1, slept_on = $2, user_id = $3 WHERE id = $4 RETURNING id, duration, slept_on, user_id;",
		sl.Duration, sl.Date.UTC(), sl.UserID, sl.ID,
	).Scan(&out.ID, &out.Duration, &out.Date, &out.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sleep %d: %w", sl.ID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the sleep record with the given id.
func (r *SleepRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM sleep WHERE id = $1;", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("sleep %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *SleepRepo) list(ctx context.Context, query string, args ...any) ([]domain.Sleep, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Sleep, 0)
	for rows.Next() {
		var sl domain.Sleep
		if err := rows.Scan(&sl.ID, &sl.Duration, &sl.Date, &sl.UserID); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}
