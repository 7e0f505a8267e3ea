package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/render"
	"github.com/MKhiriev/go-landing-builder/internal/sections"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/internal/utils"
	"github.com/MKhiriev/go-landing-builder/models"
)

type Services struct {
	AuthService    AuthService
	PageService    PageService
	PreviewService PreviewService
	AssetService   AssetService
	AppInfoService AppInfoService
}

func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	assetService, err := NewAssetService(ctx, cfg.Assets.S3, logger)
	if err != nil {
		return nil, fmt.Errorf("asset service: %w", err)
	}

	renderer := render.NewRenderer(sections.Default())
	previewService := NewPreviewService(storages.PageRepository, renderer, cfg.Server.PreviewCacheTTL, logger)

	pageService := NewPageValidationService().Wrap(
		NewPageService(storages.PageRepository, utils.NewUUIDGenerator(), previewService, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		PageService:    pageService,
		PreviewService: previewService,
		AssetService:   assetService,
		AppInfoService: appInfoService,
	}, nil
}
