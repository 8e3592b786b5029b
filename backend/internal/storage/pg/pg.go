package pg

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"math"

	"github.com/itchan-dev/msgboard/backend/internal/storage"
	"github.com/itchan-dev/msgboard/shared/config"
	"github.com/itchan-dev/msgboard/shared/domain"
	"github.com/itchan-dev/msgboard/shared/logger"
	sharedpg "github.com/itchan-dev/msgboard/shared/storage/pg"

	_ "github.com/lib/pq"
)

//go:embed migrations/init.sql
var schemaSQL string

var _ storage.Storage = (*Storage)(nil)

type Storage struct {
	db *sql.DB
	// message_count is BIGINT
	limit domain.MessageCount
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	return NewWithConnectionConfig(ctx, cfg, sharedpg.DefaultConnectionConfig())
}

func NewWithConnectionConfig(ctx context.Context, cfg *config.Config, connCfg sharedpg.ConnectionConfig) (*Storage, error) {
	log := logger.Component("pg")
	log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(cfg, connCfg)
	if err != nil {
		return nil, err
	}

	s := &Storage{db: db, limit: math.MaxInt64}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("successfully connected to db")
	return s, nil
}

// Migrate applies the schema. Safe to run repeatedly.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// WithTx serializes writers on the board row for the whole transaction.
func (s *Storage) WithTx(ctx context.Context, fn func(storage.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, func(sqlTx *sql.Tx) error {
		if _, err := sqlTx.ExecContext(ctx, `SELECT 1 FROM board_state WHERE id = 1 FOR UPDATE`); err != nil {
			return fmt.Errorf("failed to lock board: %w", err)
		}
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
