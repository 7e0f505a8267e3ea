package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/mock"
	"github.com/MKhiriev/go-landing-builder/models"
	"go.uber.org/mock/gomock"
)

func dirtyState(doc models.LandingPage) editor.State {
	st := editor.NewState(doc)
	st.Revision = 2
	st.Save.SavedRevision = 1
	st.Save.Status = editor.SavePending
	return st
}

func savedState(doc models.LandingPage) editor.State {
	st := editor.NewState(doc)
	st.Revision = 2
	st.Save.SavedRevision = 2
	st.Save.Status = editor.SaveSaved
	return st
}

func TestDraftRecorder_RecordsDirtySnapshots(t *testing.T) {
	drafts := mock.NewMockClientDraftService(gomock.NewController(t))
	r := newDraftRecorder(context.Background(), drafts, 7, "new-1", "", logger.Nop())

	doc := models.NewLandingPage("A")
	drafts.EXPECT().Record("new-1", int64(7), gomock.Any())
	r.observe(dirtyState(doc))

	doc.ID = "p-1"
	drafts.EXPECT().Record("p-1", int64(7), gomock.Any())
	r.observe(dirtyState(doc))

	// после подтверждения сервером удаляются обе копии
	drafts.EXPECT().Discard(gomock.Any(), "new-1").Return(nil)
	drafts.EXPECT().Discard(gomock.Any(), "p-1").Return(nil)
	r.observe(savedState(doc))

	// повторное сохранение ничего не удаляет
	r.observe(savedState(doc))
}

func TestDraftRecorder_IgnoresCleanUnsavedStates(t *testing.T) {
	drafts := mock.NewMockClientDraftService(gomock.NewController(t))
	r := newDraftRecorder(context.Background(), drafts, 7, "new-1", "restored", logger.Nop())

	st := savedState(models.NewLandingPage("A"))
	st.Save.Status = editor.SaveSaving
	r.observe(st)

	st.Save.Status = editor.SaveError
	r.observe(st)
}

func TestDraftRecorder_RetriesFailedDiscard(t *testing.T) {
	drafts := mock.NewMockClientDraftService(gomock.NewController(t))
	r := newDraftRecorder(context.Background(), drafts, 7, "new-1", "restored", logger.Nop())
	doc := models.NewLandingPage("A")

	gomock.InOrder(
		drafts.EXPECT().Discard(gomock.Any(), "restored").Return(errors.New("locked")),
		drafts.EXPECT().Discard(gomock.Any(), "restored").Return(nil),
	)

	r.observe(savedState(doc))
	r.observe(savedState(doc))
	r.observe(savedState(doc))
}
