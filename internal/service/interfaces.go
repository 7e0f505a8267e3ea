package service

import (
	"context"

	"github.com/MKhiriev/go-landing-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PageService is the owner-scoped document gateway. Every method except
// CreatePage treats a page of another owner as absent.
type PageService interface {
	CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error)
	GetPage(ctx context.Context, id string, ownerID int64) (models.LandingPage, error)
	ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error)
	UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error)
	DeletePage(ctx context.Context, id string, ownerID int64) error
}

// PreviewService renders stored pages to HTML.
type PreviewService interface {
	// Published returns the public static HTML of a published page. Any
	// other page is reported as not found.
	Published(ctx context.Context, id string) ([]byte, error)
	// Canvas returns the editing-mode HTML of a page for its owner.
	Canvas(ctx context.Context, id string, ownerID int64) ([]byte, error)
	// Invalidate drops any cached output for id.
	Invalidate(id string)
}

type AssetService interface {
	Presign(ctx context.Context, ownerID int64, req models.PresignRequest) (models.PresignResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PageServiceWrapper decorates a PageService, e.g. with validation.
type PageServiceWrapper interface {
	Wrap(PageService) PageService
}

// IDGenerator issues new page ids.
type IDGenerator interface {
	Generate() string
}
