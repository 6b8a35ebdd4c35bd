// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Config holds the environment contract of the service. DBType selects the
// relational backend: "postgres" (default) or "memory" for tests and local
// development.
type Config struct {
	Addr       string
	DBType     string
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string
	PGSSLMode  string
}

// Load reads the configuration, applying defaults for anything unset.
func Load() Config {
	return Config{
		Addr:       getEnv("ADDR", ":8080"),
		DBType:     getEnv("DB_TYPE", "postgres"),
		PGHost:     getEnv("PGHOST", "localhost"),
		PGPort:     getEnv("PGPORT", "5432"),
		PGUser:     getEnv("PGUSER", "postgres"),
		PGPassword: os.Getenv("PGPASSWORD"),
		PGDatabase: getEnv("PGDATABASE", "healthtracker"),
		PGSSLMode:  getEnv("PGSSLMODE", "disable"),
	}
}

// ConnString builds a libpq key/value connection string from the PG* fields.
func (c Config) ConnString() string {
	s := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
		c.PGHost, c.PGPort, c.PGUser, c.PGDatabase, c.PGSSLMode)
	if c.PGPassword != "" {
		s += " password=" + c.PGPassword
	}
	return s
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
