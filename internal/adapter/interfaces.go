// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the landing builder
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-landing-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user. On success the returned token is stored
	// via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// CreatePage stores a new page and returns it with the server-assigned
	// id and timestamps.
	CreatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error)

	// GetPage fetches one page. Returns [ErrNotFound] (wrapped) when it does
	// not exist or belongs to another user.
	GetPage(ctx context.Context, id string) (models.LandingPage, error)

	// ListPages returns every page owned by ownerID.
	ListPages(ctx context.Context, ownerID int64) ([]models.LandingPage, error)

	// UpdatePage replaces a stored page and returns it with a refreshed
	// updatedAt.
	UpdatePage(ctx context.Context, page models.LandingPage) (models.LandingPage, error)

	// DeletePage removes a page. Deleting an absent page succeeds.
	DeletePage(ctx context.Context, id string) error

	// Canvas returns the editing-mode HTML of a page.
	Canvas(ctx context.Context, id string) ([]byte, error)

	// Presign requests upload and download URLs for a page asset.
	Presign(ctx context.Context, req models.PresignRequest) (models.PresignResponse, error)

	// UploadAsset PUTs data to a presigned uploadURL. No bearer token is
	// sent; the URL carries its own signature.
	UploadAsset(ctx context.Context, uploadURL, contentType string, data []byte) error

	// Version returns the server version text.
	Version(ctx context.Context) (string, error)

	// PreviewURL returns the public link of a published page.
	PreviewURL(id string) string
}
