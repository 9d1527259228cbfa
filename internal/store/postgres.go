package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

// PostgresStore keeps slots as rows of a single key/value table, for
// deployments that already run postgres and want the slots there
// instead of on local disk.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

// Init creates the slot table if it does not exist.
func (s *PostgresStore) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS storage_slots (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// Get returns the slot contents, or ErrSlotEmpty when no row exists.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM storage_slots WHERE key = $1`, key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		s.logger.Error("slot read failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}
	return value, nil
}

// Set upserts the slot row.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO storage_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		s.logger.Error("slot write failed",
			zap.String("key", key),
			zap.Error(err))
		return err
	}
	return nil
}
