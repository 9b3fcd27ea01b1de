package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"club-auth/app/port"
)

// RecordStore implements port.RecordStore on a single-table key-value slot.
// The session lifecycle manager is the only writer.
type RecordStore struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewRecordStore creates a new PostgreSQL record store
func NewRecordStore(db DatabaseIface, logger *slog.Logger) port.RecordStore {
	return &RecordStore{
		db:     db,
		logger: logger.With("component", "record_store"),
	}
}

// Get reads the value stored under key. Absence is not an error.
func (s *RecordStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM session_records WHERE key = $1`

	var value string
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read session record: %w", err)
	}

	return value, true, nil
}

// Set writes the value under key, replacing any previous value atomically.
func (s *RecordStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO session_records (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := s.db.Exec(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write session record: %w", err)
	}

	s.logger.Debug("session record written", "key", key)
	return nil
}

// Delete removes the value under key. Deleting an absent key is a no-op.
func (s *RecordStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM session_records WHERE key = $1`

	_, err := s.db.Exec(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}

	s.logger.Debug("session record deleted", "key", key)
	return nil
}
