package config_test

import (
	"testing"

	"healthtracker/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_TYPE", "PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE", "PGSSLMODE"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	if cfg.DBType != "postgres" {
		t.Errorf("default DBType = %q; want postgres", cfg.DBType)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("default Addr = %q; want :8080", cfg.Addr)
	}
	want := "host=localhost port=5432 user=postgres dbname=healthtracker sslmode=disable"
	if got := cfg.ConnString(); got != want {
		t.Errorf("ConnString() = %q; want %q", got, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_TYPE", "memory")
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGPASSWORD", "secret")

	cfg := config.Load()
	if cfg.DBType != "memory" {
		t.Errorf("DBType = %q; want memory", cfg.DBType)
	}
	want := "host=db.internal port=5432 user=postgres dbname=healthtracker sslmode=disable password=secret"
	if got := cfg.ConnString(); got != want {
		t.Errorf("ConnString() = %q; want %q", got, want)
	}
}
