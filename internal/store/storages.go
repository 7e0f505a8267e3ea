package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
)

// Storages groups the server repositories. Users always live in PostgreSQL.
// Pages live in MongoDB when a document store URI is configured and in
// PostgreSQL otherwise.
type Storages struct {
	UserRepository UserRepository
	PageRepository PageRepository

	db    *DB
	mongo *MongoDB
}

// NewStorages connects the configured backends and applies migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}

	if cfg.Documents.MongoURI == "" {
		s.PageRepository = NewPageRepository(db, logger)
		return s, nil
	}

	mongoDB, err := NewConnectMongo(ctx, cfg.Documents, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mongo connection error: %w", err)
	}
	s.mongo = mongoDB
	s.PageRepository = NewMongoPageRepository(mongoDB, logger)

	return s, nil
}

// Close releases every open connection.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	if s.mongo != nil {
		errs = append(errs, s.mongo.Close(ctx))
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
