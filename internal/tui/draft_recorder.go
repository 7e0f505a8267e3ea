package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/models"
)

// draftRecorder mirrors an editor session into the local draft store. Every
// dirty snapshot is recorded; once the server has acknowledged the latest
// revision the drafts written for this session are discarded.
type draftRecorder struct {
	ctx     context.Context
	drafts  service.ClientDraftService
	ownerID int64

	mu sync.Mutex
	// newKey names drafts of a page the server has not assigned an id yet.
	newKey string
	keys   map[string]struct{}

	logger *logger.Logger
}

// newDraftRecorder returns a recorder for ownerID. restoredKey is the key of
// a draft the session was restored from, or empty.
func newDraftRecorder(ctx context.Context, drafts service.ClientDraftService, ownerID int64, newKey, restoredKey string, logger *logger.Logger) *draftRecorder {
	r := &draftRecorder{
		ctx:     ctx,
		drafts:  drafts,
		ownerID: ownerID,
		newKey:  newKey,
		keys:    make(map[string]struct{}),
		logger:  logger,
	}
	if restoredKey != "" {
		r.keys[restoredKey] = struct{}{}
	}
	return r
}

func (r *draftRecorder) keyFor(doc models.LandingPage) string {
	if doc.ID != "" {
		return doc.ID
	}
	return r.newKey
}

// observe is registered with editor.WithOnChange.
func (r *draftRecorder) observe(st editor.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st.Dirty() {
		key := r.keyFor(st.Doc)
		r.drafts.Record(key, r.ownerID, st.Doc)
		r.keys[key] = struct{}{}
		return
	}

	if st.Save.Status != editor.SaveSaved {
		return
	}
	for key := range r.keys {
		if err := r.drafts.Discard(r.ctx, key); err != nil {
			r.logger.Err(err).Str("func", "*draftRecorder.observe").Str("key", key).Msg("failed to discard draft")
			continue
		}
		delete(r.keys, key)
	}
}
