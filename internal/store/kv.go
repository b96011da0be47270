// Package store persists the companion profile and chat history behind a
// small key/value port, the way a browser keeps them in local storage.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a stored value does not exist.
var ErrNotFound = errors.New("not found")

// KV is the storage port. Values are opaque strings.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open picks a backend from dsn: "memory" for a process-local map, a
// postgres:// or postgresql:// URL for Postgres, a path ending in ".bolt"
// for bbolt, anything else is a SQLite file path. A leading "~/" expands to
// the home directory.
func Open(ctx context.Context, dsn string) (KV, error) {
	switch {
	case dsn == "memory":
		return NewMemoryKV(), nil
	case IsPostgresDSN(dsn):
		return NewPostgresKV(ctx, dsn)
	default:
		path, err := expandHome(dsn)
		if err != nil {
			return nil, err
		}
		if strings.HasSuffix(path, ".bolt") {
			return NewBoltKV(path)
		}
		return NewSQLiteKV(path)
	}
}

// IsPostgresDSN reports whether dsn selects the Postgres backend.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
