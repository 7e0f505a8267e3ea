// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/render"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/models"
)

// previewService renders pages and caches public output for ttl.
type previewService struct {
	pageRepository store.PageRepository
	renderer       *render.Renderer
	cache          *previewCache

	logger *logger.Logger
}

// NewPreviewService returns a PreviewService. A non-positive ttl disables
// caching of public pages.
func NewPreviewService(pageRepository store.PageRepository, renderer *render.Renderer, ttl time.Duration, logger *logger.Logger) PreviewService {
	return &previewService{
		pageRepository: pageRepository,
		renderer:       renderer,
		cache:          newPreviewCache(ttl, time.Now),
		logger:         logger,
	}
}

func (s *previewService) Published(ctx context.Context, id string) ([]byte, error) {
	html, generation, ok := s.cache.get(id)
	if ok {
		return html, nil
	}

	page, err := s.pageRepository.GetPage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("preview %s: %w", id, err)
	}
	if !page.IsPublished() {
		return nil, fmt.Errorf("preview %s is %s: %w", id, page.Status, store.ErrPageNotFound)
	}

	html, err = s.render(ctx, page, render.Static)
	if err != nil {
		return nil, err
	}

	s.cache.put(id, html, generation)
	return html, nil
}

func (s *previewService) Canvas(ctx context.Context, id string, ownerID int64) ([]byte, error) {
	page, err := s.pageRepository.GetPage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("canvas %s: %w", id, err)
	}
	if page.OwnerID != ownerID {
		return nil, fmt.Errorf("canvas %s: %w", id, store.ErrPageNotFound)
	}

	return s.render(ctx, page, render.Canvas)
}

func (s *previewService) Invalidate(id string) {
	s.cache.invalidate(id)
}

func (s *previewService) render(ctx context.Context, page models.LandingPage, mode render.Mode) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.renderer.Page(page, mode).Render(ctx, &buf); err != nil {
		logger.FromContext(ctx).Err(err).Str("page_id", page.ID).Str("mode", mode.String()).Msg("render failed")
		return nil, fmt.Errorf("render %s: %w", page.ID, err)
	}
	return buf.Bytes(), nil
}

// previewCache is a TTL cache of rendered public pages. Every invalidation
// bumps a generation counter so that a render started before an update is
// never stored after it.
type previewCache struct {
	mu         sync.RWMutex
	entries    map[string]cachedPreview
	generation uint64
	ttl        time.Duration
	now        func() time.Time
}

type cachedPreview struct {
	html    []byte
	expires time.Time
}

const previewCacheSweepSize = 1024

func newPreviewCache(ttl time.Duration, now func() time.Time) *previewCache {
	return &previewCache{
		entries: make(map[string]cachedPreview),
		ttl:     ttl,
		now:     now,
	}
}

// get returns the cached html and the generation to pass to put on a miss.
func (c *previewCache) get(id string) ([]byte, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok || !c.now().Before(entry.expires) {
		return nil, c.generation, false
	}
	return entry.html, c.generation, true
}

func (c *previewCache) put(id string, html []byte, generation uint64) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}

	now := c.now()
	if len(c.entries) >= previewCacheSweepSize {
		for key, entry := range c.entries {
			if !now.Before(entry.expires) {
				delete(c.entries, key)
			}
		}
	}
	c.entries[id] = cachedPreview{html: html, expires: now.Add(c.ttl)}
}

func (c *previewCache) invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	c.generation++
}
