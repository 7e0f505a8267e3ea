// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	"github.com/jackc/pgerrcode"
)

// pageRepository stores pages in PostgreSQL with sections and settings as
// JSONB documents.
type pageRepository struct {
	*DB
	logger *logger.Logger
}

func NewPageRepository(db *DB, logger *logger.Logger) PageRepository {
	logger.Debug().Msg("creating postgres page repository")
	return &pageRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *pageRepository) CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPageQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.CreatePage").Msg("failed to build insert query")
		return models.LandingPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var createdAt, updatedAt time.Time
	if err = p.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		log.Err(err).
			Str("func", "*pageRepository.CreatePage").
			Str("page_id", page.ID).
			Int64("owner_id", page.OwnerID).
			Msg("failed to insert page")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.LandingPage{}, ErrPageAlreadyExists
		}
		return models.LandingPage{}, p.wrapError(ErrExecutingStatement, err)
	}

	created := page.Clone()
	created.CreatedAt = &createdAt
	created.UpdatedAt = &updatedAt
	return created, nil
}

func (p *pageRepository) GetPage(ctx context.Context, id string) (models.LandingPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPageQuery(id)
	if err != nil {
		return models.LandingPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	page, err := scanPage(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LandingPage{}, ErrPageNotFound
		}
		log.Err(err).Str("func", "*pageRepository.GetPage").Str("page_id", id).Msg("failed to read page")
		return models.LandingPage{}, p.wrapError(ErrScanningRow, err)
	}

	return page, nil
}

func (p *pageRepository) ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPagesQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.ListPages").Int64("owner_id", ownerID).Msg("failed to list pages")
		return nil, p.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	pages := make([]models.LandingPage, 0, 16)
	for rows.Next() {
		page, scanErr := scanPage(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*pageRepository.ListPages").Int64("owner_id", ownerID).Msg("failed to scan page row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		pages = append(pages, page)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*pageRepository.ListPages").Msg("error occurred during rows iteration")
		return nil, p.wrapError(ErrScanningRows, err)
	}

	return pages, nil
}

func (p *pageRepository) UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePageQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.UpdatePage").Msg("failed to build update query")
		return models.LandingPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var createdAt, updatedAt time.Time
	if err = p.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LandingPage{}, ErrPageNotFound
		}
		log.Err(err).
			Str("func", "*pageRepository.UpdatePage").
			Str("page_id", page.ID).
			Msg("failed to update page")
		return models.LandingPage{}, p.wrapError(ErrExecutingStatement, err)
	}

	updated := page.Clone()
	updated.CreatedAt = &createdAt
	updated.UpdatedAt = &updatedAt
	return updated, nil
}

func (p *pageRepository) DeletePage(ctx context.Context, id string, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePageQuery(id, ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.DeletePage").Str("page_id", id).Msg("failed to delete page")
		return p.wrapError(ErrExecutingStatement, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		log.Debug().Str("func", "*pageRepository.DeletePage").Str("page_id", id).Msg("nothing to delete")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (models.LandingPage, error) {
	var (
		page               models.LandingPage
		status             string
		sections, settings []byte
		createdAt          time.Time
		updatedAt          time.Time
	)

	if err := row.Scan(&page.ID, &page.OwnerID, &page.Title, &status, &sections, &settings, &createdAt, &updatedAt); err != nil {
		return models.LandingPage{}, err
	}

	if err := json.Unmarshal(sections, &page.Sections); err != nil {
		return models.LandingPage{}, fmt.Errorf("%w: sections of %s: %w", ErrEncodingPage, page.ID, err)
	}
	if err := json.Unmarshal(settings, &page.Settings); err != nil {
		return models.LandingPage{}, fmt.Errorf("%w: settings of %s: %w", ErrEncodingPage, page.ID, err)
	}
	if page.Sections == nil {
		page.Sections = []models.Section{}
	}

	page.Status = models.PageStatus(status)
	page.CreatedAt = &createdAt
	page.UpdatedAt = &updatedAt
	return page, nil
}
