package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/models"
)

type draftRepository struct {
	*DB
	logger *logger.Logger
}

// NewDraftRepository returns a [DraftRepository] over the client's SQLite
// database. The schema must already be migrated.
func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{DB: db, logger: logger}
}

// SaveDraft inserts or replaces the draft stored under draft.Key.
func (d *draftRepository) SaveDraft(ctx context.Context, draft models.Draft) error {
	body, err := json.Marshal(draft.Page)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPage, err)
	}

	savedAt := draft.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err = d.ExecContext(ctx, upsertDraft,
		draft.Key,
		draft.Page.ID,
		draft.OwnerID,
		draft.Page.Title,
		string(body),
		savedAt.UTC(),
	)
	if err != nil {
		d.logger.Err(err).Str("func", "*draftRepository.SaveDraft").Str("draft_key", draft.Key).Msg("failed to save draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (d *draftRepository) GetDraft(ctx context.Context, key string) (models.Draft, error) {
	draft, err := scanDraft(d.QueryRowContext(ctx, getDraft, key))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Draft{}, ErrDraftNotFound
	}
	if err != nil {
		d.logger.Err(err).Str("func", "*draftRepository.GetDraft").Str("draft_key", key).Msg("failed to read draft")
		return models.Draft{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return draft, nil
}

// ListDrafts returns the owner's drafts, most recently saved first.
func (d *draftRepository) ListDrafts(ctx context.Context, ownerID int64) ([]models.Draft, error) {
	rows, err := d.QueryContext(ctx, listDrafts, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var drafts []models.Draft
	for rows.Next() {
		draft, scanErr := scanDraft(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		drafts = append(drafts, draft)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return drafts, nil
}

// DeleteDraft removes the draft; a missing key is not an error.
func (d *draftRepository) DeleteDraft(ctx context.Context, key string) error {
	if _, err := d.ExecContext(ctx, deleteDraft, key); err != nil {
		d.logger.Err(err).Str("func", "*draftRepository.DeleteDraft").Str("draft_key", key).Msg("failed to delete draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func scanDraft(row rowScanner) (models.Draft, error) {
	var (
		draft models.Draft
		body  string
	)
	if err := row.Scan(&draft.Key, &draft.OwnerID, &body, &draft.SavedAt); err != nil {
		return models.Draft{}, err
	}
	if err := json.Unmarshal([]byte(body), &draft.Page); err != nil {
		return models.Draft{}, fmt.Errorf("%w: draft %s: %w", ErrEncodingPage, draft.Key, err)
	}
	if draft.Page.Sections == nil {
		draft.Page.Sections = []models.Section{}
	}
	return draft, nil
}
