// Package db opens the single-file key-value store backing all persisted
// state. Writes are atomic at single-key granularity, which is the only
// durability guarantee the rest of the system relies on.
package db

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const (
	BucketDrafts      = "drafts"
	BucketSubmissions = "submissions"
	BucketUsers       = "users"
	BucketSessions    = "sessions"
	BucketConferences = "conferences"
)

var buckets = []string{
	BucketDrafts,
	BucketSubmissions,
	BucketUsers,
	BucketSessions,
	BucketConferences,
}

// Store wraps the bbolt database handle.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the data file at path and ensures all
// buckets exist.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("data path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Update runs fn inside a read-write transaction.
func (s *Store) Update(fn func(tx *bbolt.Tx) error) error {
	return s.db.Update(fn)
}

// View runs fn inside a read-only transaction.
func (s *Store) View(fn func(tx *bbolt.Tx) error) error {
	return s.db.View(fn)
}
