package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/models"
)

type clientDraftService struct {
	repository store.DraftRepository

	mu      sync.Mutex
	pending map[string]models.Draft
	// write serializes repository writes so a Discard cannot be undone by
	// a batch that was taken before it.
	write sync.Mutex
	now   func() time.Time

	logger *logger.Logger
}

func NewClientDraftService(repository store.DraftRepository, logger *logger.Logger) ClientDraftService {
	return &clientDraftService{
		repository: repository,
		pending:    make(map[string]models.Draft),
		now:        time.Now,
		logger:     logger,
	}
}

func (d *clientDraftService) Record(key string, ownerID int64, page models.LandingPage) {
	if key == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[key] = models.Draft{Key: key, OwnerID: ownerID, Page: page.Clone(), SavedAt: d.now()}
}

// Flush writes queued drafts. Drafts that fail to write stay queued unless
// a newer copy was recorded meanwhile.
func (d *clientDraftService) Flush(ctx context.Context) error {
	d.write.Lock()
	defer d.write.Unlock()

	d.mu.Lock()
	batch := d.pending
	d.pending = make(map[string]models.Draft, len(batch))
	d.mu.Unlock()

	var errs []error
	for key, draft := range batch {
		if err := d.repository.SaveDraft(ctx, draft); err != nil {
			d.logger.Err(err).Str("func", "*clientDraftService.Flush").Str("draft_key", key).Msg("error saving draft")
			errs = append(errs, fmt.Errorf("draft %s: %w", key, err))

			d.mu.Lock()
			if _, newer := d.pending[key]; !newer {
				d.pending[key] = draft
			}
			d.mu.Unlock()
		}
	}

	return errors.Join(errs...)
}

func (d *clientDraftService) List(ctx context.Context, ownerID int64) ([]models.Draft, error) {
	return d.repository.ListDrafts(ctx, ownerID)
}

func (d *clientDraftService) Get(ctx context.Context, key string) (models.Draft, error) {
	return d.repository.GetDraft(ctx, key)
}

// Discard drops the queued and stored copies of key. It waits for a flush
// in progress.
func (d *clientDraftService) Discard(ctx context.Context, key string) error {
	d.write.Lock()
	defer d.write.Unlock()

	d.mu.Lock()
	delete(d.pending, key)
	d.mu.Unlock()

	return d.repository.DeleteDraft(ctx, key)
}
