package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthtracker/internal/domain"
)

// HealthTipRepo implements domain.HealthTipRepository on PostgreSQL.
type HealthTipRepo struct {
	db *DB
}

// NewHealthTipRepo wraps a DB as a HealthTipRepository.
func NewHealthTipRepo(db *DB) *HealthTipRepo {
	return &HealthTipRepo{db: db}
}

var _ domain.HealthTipRepository = (*HealthTipRepo)(nil)

// Create inserts a new tip.
func (r *HealthTipRepo) Create(ctx context.Context, tips string) (*domain.HealthTip, error) {
	var t domain.HealthTip
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO health_tips (tips) VALUES ($1) RETURNING id, tips;", tips,
	).Scan(&t.ID, &t.Tips)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAll returns every tip ordered by id.
func (r *HealthTipRepo) GetAll(ctx context.Context) ([]domain.HealthTip, error) {
	rows, err := r.db.sql.QueryContext(ctx, "SELECT id, tips FROM health_tips ORDER BY id;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.HealthTip, 0)
	for rows.Next() {
		var t domain.HealthTip
		if err := rows.Scan(&t.ID, &t.Tips); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns the tip with the given id.
func (r *HealthTipRepo) GetByID(ctx context.Context, id int64) (*domain.HealthTip, error) {
	var t domain.HealthTip
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, tips FROM health_tips WHERE id = $1;", id,
	).Scan(&t.ID, &t.Tips)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("health tip %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetRandom returns one tip chosen by the database at random.
func (r *HealthTipRepo) GetRandom(ctx context.Context) (*domain.HealthTip, error) {
	var t domain.HealthTip
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, tips FROM health_tips ORDER BY random() LIMIT 1;",
	).Scan(&t.ID, &t.Tips)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no health tips: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces the tip text.
func (r *HealthTipRepo) Update(ctx context.Context, id int64, tips string) (*domain.HealthTip, error) {
	var t domain.HealthTip
	err := r.db.sql.QueryRowContext(ctx,
		"UPDATE health_tips SET tips = $1 WHERE id = $2 RETURNING id, tips;", tips, id,
	).Scan(&t.ID, &t.Tips)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("health tip %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the tip with the given id.
func (r *HealthTipRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM health_tips WHERE id = $1;", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("health tip %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
