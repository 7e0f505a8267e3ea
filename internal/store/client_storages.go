package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
)

// ClientStorages groups the editor client's local repositories.
type ClientStorages struct {
	// DraftRepository keeps unsaved page edits across client restarts.
	DraftRepository DraftRepository

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DSN, creating it if needed,
// and migrates the draft schema.
func NewClientStorages(ctx context.Context, cfg config.Drafts, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateDrafts(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DraftRepository: NewDraftRepository(db, logger),
		db:              db,
	}, nil
}

// Close closes the SQLite database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
