// Package sqlite is an embedded storage engine on top of modernc.org/sqlite.
// The pool holds a single connection, so transactions are serialized by the
// driver itself.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/domain"
	"github.com/itchan-dev/msgboard/shared/logger"
	sharedpg "github.com/itchan-dev/msgboard/shared/storage/pg"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

var _ storage.Storage = (*Storage)(nil)

type Storage struct {
	db    *sql.DB
	limit domain.MessageCount
}

func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	return "file:" + path + "?" + q.Encode()
}

// Open creates the database file (and its directory) if needed and applies the schema.
func Open(ctx context.Context, path string) (*Storage, error) {
	log := logger.Component("sqlite")
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Info("opened sqlite database", "path", path)
	return &Storage{db: db, limit: math.MaxInt64}, nil
}

func (s *Storage) WithTx(ctx context.Context, fn func(storage.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, func(sqlTx *sql.Tx) error {
		return fn(&tx{q: sqlTx, limit: s.limit})
	})
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

type tx struct {
	q     sharedpg.Querier
	limit domain.MessageCount
}
