// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// DB wraps a *sql.DB shared by the per-entity repositories.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, email TEXT UNIQUE NOT NULL);",
		"CREATE TABLE IF NOT EXISTS bmi (id BIGSERIAL PRIMARY KEY, weight DOUBLE PRECISION NOT NULL, height DOUBLE PRECISION NOT NULL, recorded_at TIMESTAMPTZ NOT NULL, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE);",
		"CREATE INDEX IF NOT EXISTS idx_bmi_user_id ON bmi(user_id);",
		"CREATE TABLE IF NOT EXISTS sleep (id BIGSERIAL PRIMARY KEY, duration DOUBLE PRECISION NOT NULL, slept_on TIMESTAMPTZ NOT NULL, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE);",
		"CREATE INDEX IF NOT EXISTS idx_sleep_user_id ON sleep(user_id);",
		"CREATE TABLE IF NOT EXISTS water (id BIGSERIAL PRIMARY KEY, litres DOUBLE PRECISION NOT NULL, drank_on TIMESTAMPTZ NOT NULL, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE);",
		"CREATE INDEX IF NOT EXISTS idx_water_user_id ON water(user_id);",
		"CREATE TABLE IF NOT EXISTS health_tips (id BIGSERIAL PRIMARY KEY, tips TEXT NOT NULL);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// failure (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
