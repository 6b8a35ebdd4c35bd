package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"healthtracker/internal/domain"
)

// WaterRepo implements domain.WaterRepository on PostgreSQL.
type WaterRepo struct {
	db *DB
}

// NewWaterRepo wraps a DB as a WaterRepository.
func NewWaterRepo(db *DB) *WaterRepo {
	return &WaterRepo{db: db}
}

var _ domain.WaterRepository = (*WaterRepo)(nil)

// Create inserts a new water record.
func (r *WaterRepo) Create(ctx context.Context, wt domain.Water) (*domain.Water, error) {
	var out domain.Water
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO water (litres, drank_on, user_id) VALUES ($1, $2, $3) RETURNING id, litres, drank_on, user_id;",
		wt.Litres, wt.DateOfDrinking.UTC(), wt.UserID,
	).Scan(&out.ID, &out.Litres, &out.DateOfDrinking, &out.UserID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAll returns every water record ordered by id.
func (r *WaterRepo) GetAll(ctx context.Context) ([]domain.Water, error) {
	return r.list(ctx, "SELECT id, litres, drank_on, user_id FROM water ORDER BY id;")
}

// GetByID returns the water record with the given id.
func (r *WaterRepo) GetByID(ctx context.Context, id int64) (*domain.Water, error) {
	var wt domain.Water
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, litres, drank_on, user_id FROM water WHERE id = $1;", id,
	).Scan(&wt.ID, &wt.Litres, &wt.DateOfDrinking, &wt.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("water %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &wt, nil
}

// GetByUserID returns the water records owned by a user, ordered by id.
func (r *WaterRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Water, error) {
	return r.list(ctx, "SELECT id, litres, drank_on, user_id FROM water WHERE user_id = $1 ORDER BY id;", userID)
}

// Update writes the full row back.
func (r *WaterRepo) Update(ctx context.Context, wt domain.Water) (*domain.Water, error) {
	var out domain.Water
	err := r.db.sql.QueryRowContext(ctx,
		"UPDATE water SET litres = $1, drank_on = $2, user_id = $3 WHERE id = $4 RETURNING id, litres, drank_on, user_id;",
		wt.Litres, wt.DateOfDrinking.UTC(), wt.UserID, wt.ID,
	).Scan(&out.ID, &out.Litres, &out.DateOfDrinking, &out.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("water %d: %w", wt.ID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the water record with the given id.
func (r *WaterRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM water WHERE id = $1;", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("water %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *WaterRepo) list(ctx context.Context, query string, args ...any) ([]domain.Water, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Water, 0)
	for rows.Next() {
		var wt domain.Water
		if err := rows.Scan(&wt.ID, &wt.Litres, &wt.DateOfDrinking, &wt.UserID); err != nil {
			return nil, err
		}
		out = append(out, wt)
	}
	return out, rows.Err()
}
