package store

import (
	"context"

	"github.com/MKhiriev/go-landing-builder/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DraftRepository is the client's local store of unsaved editor state.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	GetDraft(ctx context.Context, key string) (models.Draft, error)
	ListDrafts(ctx context.Context, ownerID int64) ([]models.Draft, error)
	DeleteDraft(ctx context.Context, key string) error
}
