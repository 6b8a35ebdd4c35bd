package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthtracker/internal/domain"
)

// BmiRepo implements domain.BmiRepository on PostgreSQL.
type BmiRepo struct {
	db *DB
}

// NewBmiRepo wraps a DB as a BmiRepository.
func NewBmiRepo(db *DB) *BmiRepo {
	return &BmiRepo{db: db}
}

var _ domain.BmiRepository = (*BmiRepo)(nil)

// Create inserts a new BMI record.
func (r *BmiRepo) Create(ctx context.Context, b domain.Bmi) (*domain.Bmi, error) {
	var out domain.Bmi
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO bmi (weight, height, recorded_at, user_id) VALUES ($1, $2, $3, $4) RETURNING id, weight, height, recorded_at, user_id;",
		b.Weight, b.Height, b.Timestamp.UTC(), b.UserID,
	).Scan(&out.ID, &out.Weight, &out.Height, &out.Timestamp, &out.UserID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAll returns every BMI record ordered by id.
func (r *BmiRepo) GetAll(ctx context.Context) ([]domain.Bmi, error) {
	return r.list(ctx, "SELECT id, weight, height, recorded_at, user_id FROM bmi ORDER BY id;")
}

// GetByID returns the BMI record with the given id.
func (r *BmiRepo) GetByID(ctx context.Context, id int64) (*domain.Bmi, error) {
	var b domain.Bmi
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, weight, height, recorded_at, user_id FROM bmi WHERE id = $1;", id,
	).Scan(&b.ID, &b.Weight, &b.Height, &b.Timestamp, &b.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bmi %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByUserID returns the BMI records owned by a user, ordered by id.
func (r *BmiRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Bmi, error) {
	return r.list(ctx, "SELECT id, weight, height, recorded_at, user_id FROM bmi WHERE user_id = $1 ORDER BY id;", userID)
}

// Update writes the full row back.
func (r *BmiRepo) Update(ctx context.Context, b domain.Bmi) (*domain.Bmi, error) {
	var out domain.Bmi
	err := r.db.sql.QueryRowContext(ctx,
		"UPDATE bmi SET weight = $1, height = $2, recorded_at = $3, user_id = $4 WHERE id = $5 RETURNING id, weight, height, recorded_at, user_id;",
		b.Weight, b.Height, b.Timestamp.UTC(), b.UserID, b.ID,
	).Scan(&out.ID, &out.Weight, &out.Height, &out.Timestamp, &out.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bmi %d: %w", b.ID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the BMI record with the given id.
func (r *BmiRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM bmi WHERE id = $1;", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("bmi %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *BmiRepo) list(ctx context.Context, query string, args ...any) ([]domain.Bmi, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Bmi, 0)
	for rows.Next() {
		var b domain.Bmi
		if err := rows.Scan(&b.ID, &b.Weight, &b.Height, &b.Timestamp, &b.UserID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
