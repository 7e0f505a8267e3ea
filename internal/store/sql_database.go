package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/migrations"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB wraps a *sql.DB with the driver-specific error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateDrafts applies the client draft store schema.
func (db *DB) MigrateDrafts() error {
	return migrations.MigrateDrafts(db.DB)
}

// wrapError attaches ErrStorageUnavailable to transient failures and kind
// to everything.
func (db *DB) wrapError(kind, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
