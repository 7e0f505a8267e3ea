package store

import (
	"context"

	"github.com/MKhiriev/go-landing-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// PageRepository persists landing pages. Implementations store pages as
// opaque documents and never reorder sections.
type PageRepository interface {
	// CreatePage inserts page with the id already assigned and returns it
	// with CreatedAt and UpdatedAt set.
	CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error)
	// GetPage returns the page with id regardless of owner.
	GetPage(ctx context.Context, id string) (models.LandingPage, error)
	// ListPages returns the owner's pages, most recently updated first.
	ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error)
	// UpdatePage replaces the page matching page.ID and page.OwnerID and
	// refreshes UpdatedAt. CreatedAt is kept.
	UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error)
	// DeletePage removes the owner's page; a missing page is not an error.
	DeletePage(ctx context.Context, id string, ownerID int64) error
}
