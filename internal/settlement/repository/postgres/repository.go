// Package postgres implements the settlement cache and archive store.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository is the Postgres-backed cache/archive store. All upserts use
// ON CONFLICT DO UPDATE on the composite key, so repeating an operation with
// identical input is always safe.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// New opens a Postgres connection pool for the given URL.
func New(url string, metrics Metrics) (*Repository, error) {
	if url == "" {
		return nil, errors.New("postgres url is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}
