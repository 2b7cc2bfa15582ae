package cache

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// SQL is a Postgres-backed Cache so cached reports survive restarts and are
// shared across instances. All operations are best effort: errors are logged
// and reported as misses.
type SQL struct {
	db *sql.DB
}

// NewSQL connects to the database at databaseURL. The "postgres" driver must
// be registered by the importer.
func NewSQL(databaseURL string) (*SQL, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	return &SQL{db: db}, nil
}

// Get returns the unexpired value for key.
func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM response_cache WHERE key = $1 AND expires_at > NOW()",
		key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Printf("cache get failed: %v", err)
		return nil, false
	}
	return value, true
}

// Set upserts value under key with an absolute expiry.
func (s *SQL) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO response_cache (key, value, expires_at) VALUES ($1, $2, $3) "+
			"ON CONFLICT (key) DO UPDATE SET value = $2, expires_at = $3",
		key, value, time.Now().Add(ttl),
	)
	if err != nil {
		log.Printf("cache set failed: %v", err)
	}
}

// Close closes the underlying database handle.
func (s *SQL) Close() error {
	return s.db.Close()
}
