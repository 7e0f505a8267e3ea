// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-landing-builder/internal/adapter"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/models"
)

type clientPageService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientPageService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPageService {
	return &clientPageService{adapter: serverAdapter, logger: logger}
}

func (p *clientPageService) Create(ctx context.Context, doc models.LandingPage) (models.LandingPage, error) {
	if p.adapter.Token() == "" {
		return models.LandingPage{}, ErrNotAuthenticated
	}

	doc = doc.Clone()
	doc.ID = ""
	doc.CreatedAt, doc.UpdatedAt = nil, nil
	if doc.Status == "" {
		doc.Status = models.PageStatusDraft
	}

	created, err := p.adapter.CreatePage(ctx, doc)
	if err != nil {
		return models.LandingPage{}, mapAdapterError(err)
	}
	return created, nil
}

func (p *clientPageService) Get(ctx context.Context, id string) (models.LandingPage, error) {
	page, err := p.adapter.GetPage(ctx, id)
	if err != nil {
		return models.LandingPage{}, mapAdapterError(err)
	}
	return page, nil
}

func (p *clientPageService) Update(ctx context.Context, doc models.LandingPage) (models.LandingPage, error) {
	if p.adapter.Token() == "" {
		return models.LandingPage{}, ErrNotAuthenticated
	}

	updated, err := p.adapter.UpdatePage(ctx, doc)
	if err != nil {
		return models.LandingPage{}, mapAdapterError(err)
	}
	return updated, nil
}

func (p *clientPageService) Delete(ctx context.Context, id string) error {
	return mapAdapterError(p.adapter.DeletePage(ctx, id))
}

func (p *clientPageService) List(ctx context.Context, ownerID int64) ([]models.LandingPage, error) {
	pages, err := p.adapter.ListPages(ctx, ownerID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return pages, nil
}

func (p *clientPageService) Canvas(ctx context.Context, id string) ([]byte, error) {
	html, err := p.adapter.Canvas(ctx, id)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return html, nil
}

func (p *clientPageService) Presign(ctx context.Context, req models.PresignRequest) (models.PresignResponse, error) {
	resp, err := p.adapter.Presign(ctx, req)
	if err != nil {
		return models.PresignResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (p *clientPageService) UploadImage(ctx context.Context, path string) (models.PresignResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PresignResponse{}, fmt.Errorf("read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	asset, err := p.Presign(ctx, models.PresignRequest{FileName: filepath.Base(path), ContentType: contentType})
	if err != nil {
		return models.PresignResponse{}, err
	}

	if err = p.adapter.UploadAsset(ctx, asset.UploadURL, contentType, data); err != nil {
		p.logger.Err(err).Str("func", "*clientPageService.UploadImage").Str("key", asset.Key).Msg("error uploading asset")
		return models.PresignResponse{}, mapAdapterError(err)
	}
	return asset, nil
}

func (p *clientPageService) PreviewURL(id string) string {
	return p.adapter.PreviewURL(id)
}

func (p *clientPageService) ServerVersion(ctx context.Context) (string, error) {
	v, err := p.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return v, nil
}
