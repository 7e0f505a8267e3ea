package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration
// and authentication. The session token is held in memory by the server
// adapter; nothing is persisted locally.
type ClientAuthService interface {
	// Register creates a new account on the server and signs in with it.
	// Returns the server-assigned user id.
	Register(ctx context.Context, user models.User) (int64, error)

	// Login authenticates the user against the server and returns the
	// user id carried in the session token.
	Login(ctx context.Context, user models.User) (int64, error)

	// Logout forgets the session token.
	Logout()
}

// ClientPageService is the client's view of the page gateway. It satisfies
// [editor.Gateway] so that editor sessions save through it.
type ClientPageService interface {
	editor.Gateway

	// List returns the pages owned by ownerID, most recently updated first.
	List(ctx context.Context, ownerID int64) ([]models.LandingPage, error)

	// Canvas returns the editing-mode HTML of the page.
	Canvas(ctx context.Context, id string) ([]byte, error)

	// Presign requests upload URLs for a page image.
	Presign(ctx context.Context, req models.PresignRequest) (models.PresignResponse, error)

	// UploadImage presigns an upload for the local file at path, PUTs the
	// file and returns the presigned URLs.
	UploadImage(ctx context.Context, path string) (models.PresignResponse, error)

	// PreviewURL returns the public link of a published page.
	PreviewURL(id string) string

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientDraftService keeps local copies of pages with unsaved changes.
type ClientDraftService interface {
	// Record queues the latest copy of a page under key. Only the newest
	// copy per key is written on the next Flush.
	Record(key string, ownerID int64, page models.LandingPage)

	// Flush writes all queued copies to the local store.
	Flush(ctx context.Context) error

	// List returns the stored drafts of ownerID, newest first.
	List(ctx context.Context, ownerID int64) ([]models.Draft, error)

	// Get returns the stored draft under key.
	Get(ctx context.Context, key string) (models.Draft, error)

	// Discard drops the queued and stored copies under key.
	Discard(ctx context.Context, key string) error
}

// ClientDraftJob defines the contract for a background worker that
// periodically flushes queued drafts.
type ClientDraftJob interface {
	// Start launches the background flush goroutine. It flushes every
	// interval, defaulting to one second if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit, waits for it, then
	// performs a final flush.
	Stop()
}
