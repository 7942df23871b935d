package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"aero-store/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Service wraps the Postgres connection pool.
type Service struct {
	db *sql.DB
}

// New opens a connection pool for the configured database. The pool is
// lazy; Health reports whether the database is actually reachable.
func New(cfg config.DatabaseConfig) (*Service, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.Schema,
	)

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Service{db: db}, nil
}

// DB exposes the underlying pool for repositories and migrations.
func (s *Service) DB() *sql.DB {
	return s.db
}

// Health returns connectivity and pool statistics.
func (s *Service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	dbStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)

	return stats
}

// Close shuts down the connection pool.
func (s *Service) Close() error {
	return s.db.Close()
}
