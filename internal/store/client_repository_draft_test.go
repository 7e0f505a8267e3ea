package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDraftStore(t *testing.T) DraftRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "nested", "drafts.db")
	storages, err := NewClientStorages(context.Background(), config.Drafts{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages.DraftRepository
}

func TestDraftRepository_SaveAndGet(t *testing.T) {
	repo := newTestDraftStore(t)
	ctx := context.Background()

	page := testPage()
	savedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveDraft(ctx, models.Draft{Key: page.ID, OwnerID: 42, Page: page, SavedAt: savedAt}))

	got, err := repo.GetDraft(ctx, page.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.OwnerID)
	assert.True(t, savedAt.Equal(got.SavedAt))
	assert.Equal(t, "Promo", got.Page.Title)
	require.Len(t, got.Page.Sections, 1)
	assert.Equal(t, "Hello", got.Page.Sections[0].Content.(*models.HeroContent).Title)
}

func TestDraftRepository_SaveOverwrites(t *testing.T) {
	repo := newTestDraftStore(t)
	ctx := context.Background()

	page := testPage()
	require.NoError(t, repo.SaveDraft(ctx, models.Draft{Key: "k", OwnerID: 1, Page: page}))

	page.Title = "Renamed"
	require.NoError(t, repo.SaveDraft(ctx, models.Draft{Key: "k", OwnerID: 1, Page: page}))

	drafts, err := repo.ListDrafts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Renamed", drafts[0].Page.Title)
}

func TestDraftRepository_ListIsScopedAndOrdered(t *testing.T) {
	repo := newTestDraftStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, key := range []string{"old", "new"} {
		p := models.NewLandingPage(key)
		require.NoError(t, repo.SaveDraft(ctx, models.Draft{Key: key, OwnerID: 1, Page: p, SavedAt: base.Add(time.Duration(i) * time.Minute)}))
	}
	require.NoError(t, repo.SaveDraft(ctx, models.Draft{Key: "foreign", OwnerID: 2, Page: models.NewLandingPage("x")}))

	drafts, err := repo.ListDrafts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "new", drafts[0].Key)
	assert.Equal(t, "old", drafts[1].Key)
}

func TestDraftRepository_Delete(t *testing.T) {
	repo := newTestDraftStore(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDraft(ctx, models.Draft{Key: "k", OwnerID: 1, Page: models.NewLandingPage("t")}))
	require.NoError(t, repo.DeleteDraft(ctx, "k"))
	require.NoError(t, repo.DeleteDraft(ctx, "k"))

	_, err := repo.GetDraft(ctx, "k")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
