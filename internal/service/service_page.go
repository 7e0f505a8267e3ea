// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/models"
)

// previewInvalidator is the part of PreviewService the page service needs.
type previewInvalidator interface {
	Invalidate(id string)
}

type pageService struct {
	pageRepository store.PageRepository
	idGenerator    IDGenerator
	previews       previewInvalidator

	logger *logger.Logger
}

func NewPageService(pageRepository store.PageRepository, idGenerator IDGenerator, previews previewInvalidator, logger *logger.Logger) PageService {
	return &pageService{
		pageRepository: pageRepository,
		idGenerator:    idGenerator,
		previews:       previews,
		logger:         logger,
	}
}

// CreatePage assigns a fresh id, rewrites section order from array
// positions and stores the page. Client-supplied ids and timestamps are
// ignored.
func (p *pageService) CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	page = page.Clone()
	page.ID = p.idGenerator.Generate()
	page.CreatedAt, page.UpdatedAt = nil, nil
	page.Normalize()

	created, err := p.pageRepository.CreatePage(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", page.OwnerID).Msg("page creation failed")
		return models.LandingPage{}, fmt.Errorf("page creation failed: %w", err)
	}

	return created, nil
}

// GetPage returns the page only to its owner.
func (p *pageService) GetPage(ctx context.Context, id string, ownerID int64) (models.LandingPage, error) {
	page, err := p.pageRepository.GetPage(ctx, id)
	if err != nil {
		return models.LandingPage{}, fmt.Errorf("get page %s: %w", id, err)
	}

	if page.OwnerID != ownerID {
		logger.FromContext(ctx).Warn().
			Str("page_id", id).
			Int64("owner_id", page.OwnerID).
			Int64("requested_by", ownerID).
			Msg("page of another owner requested")
		return models.LandingPage{}, fmt.Errorf("get page %s: %w", id, store.ErrPageNotFound)
	}

	return page, nil
}

func (p *pageService) ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error) {
	pages, err := p.pageRepository.ListPages(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pages of %d: %w", ownerID, err)
	}
	return pages, nil
}

// UpdatePage fully replaces the stored page. Last write wins.
func (p *pageService) UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error) {
	page = page.Clone()
	page.Normalize()

	updated, err := p.pageRepository.UpdatePage(ctx, page)
	if err != nil {
		if !errors.Is(err, store.ErrPageNotFound) {
			logger.FromContext(ctx).Err(err).Str("page_id", page.ID).Msg("page update failed")
		}
		return models.LandingPage{}, fmt.Errorf("update page %s: %w", page.ID, err)
	}

	p.previews.Invalidate(page.ID)
	return updated, nil
}

// DeletePage removes the page. Deleting an absent page succeeds.
func (p *pageService) DeletePage(ctx context.Context, id string, ownerID int64) error {
	if err := p.pageRepository.DeletePage(ctx, id, ownerID); err != nil {
		logger.FromContext(ctx).Err(err).Str("page_id", id).Msg("page deletion failed")
		return fmt.Errorf("delete page %s: %w", id, err)
	}

	p.previews.Invalidate(id)
	return nil
}
