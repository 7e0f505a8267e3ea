package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/mock"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDraftSvc(t *testing.T) (*clientDraftService, *mock.MockDraftRepository) {
	t.Helper()
	repo := mock.NewMockDraftRepository(gomock.NewController(t))
	svc := NewClientDraftService(repo, logger.Nop()).(*clientDraftService)
	svc.now = func() time.Time { return time.Unix(100, 0) }
	return svc, repo
}

// ── Record / Flush ───────────────────────────────────────────────────────────

func TestClientDraftService_Flush_WritesLatestCopyOnly(t *testing.T) {
	svc, repo := newTestDraftSvc(t)

	first := samplePage()
	second := samplePage()
	second.Title = "Second"

	svc.Record("k", 5, first)
	svc.Record("k", 5, second)
	svc.Record("", 5, first)

	repo.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Draft) error {
			assert.Equal(t, "k", d.Key)
			assert.Equal(t, int64(5), d.OwnerID)
			assert.Equal(t, "Second", d.Page.Title)
			assert.Equal(t, time.Unix(100, 0), d.SavedAt)
			return nil
		})

	require.NoError(t, svc.Flush(context.Background()))
	require.NoError(t, svc.Flush(context.Background()), "nothing left to write")
}

func TestClientDraftService_Flush_RequeuesFailures(t *testing.T) {
	svc, repo := newTestDraftSvc(t)
	svc.Record("k", 5, samplePage())

	gomock.InOrder(
		repo.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		repo.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).Return(nil),
	)

	assert.Error(t, svc.Flush(context.Background()))
	assert.NoError(t, svc.Flush(context.Background()))
}

func TestClientDraftService_Record_CopiesPage(t *testing.T) {
	svc, repo := newTestDraftSvc(t)

	page := samplePage()
	svc.Record("k", 5, page)
	page.Sections[0].ID = "mutated"

	repo.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Draft) error {
			assert.Equal(t, "a", d.Page.Sections[0].ID)
			return nil
		})

	require.NoError(t, svc.Flush(context.Background()))
}

// ── Discard ──────────────────────────────────────────────────────────────────

func TestClientDraftService_Discard_DropsPending(t *testing.T) {
	svc, repo := newTestDraftSvc(t)
	svc.Record("k", 5, samplePage())

	repo.EXPECT().DeleteDraft(gomock.Any(), "k").Return(nil)

	require.NoError(t, svc.Discard(context.Background(), "k"))
	require.NoError(t, svc.Flush(context.Background()))
}

func TestClientDraftService_Discard_WaitsForFlushInProgress(t *testing.T) {
	svc, repo := newTestDraftSvc(t)
	svc.Record("page-1", 5, samplePage())

	writing := make(chan struct{})
	release := make(chan struct{})
	stored := map[string]bool{}
	var mu sync.Mutex

	repo.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Draft) error {
			close(writing)
			<-release
			mu.Lock()
			stored[d.Key] = true
			mu.Unlock()
			return nil
		})
	repo.EXPECT().DeleteDraft(gomock.Any(), "page-1").
		DoAndReturn(func(_ context.Context, key string) error {
			mu.Lock()
			delete(stored, key)
			mu.Unlock()
			return nil
		})

	flushed := make(chan error, 1)
	go func() { flushed <- svc.Flush(context.Background()) }()
	<-writing

	discarded := make(chan error, 1)
	go func() { discarded <- svc.Discard(context.Background(), "page-1") }()

	select {
	case <-discarded:
		t.Fatal("Discard returned while the draft was still being written")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-flushed)
	require.NoError(t, <-discarded)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, stored, "discarded draft must not stay in the local store")
	require.NoError(t, svc.Flush(context.Background()))
}

// ── job ──────────────────────────────────────────────────────────────────────

// spyDraftService counts Flush calls.
type spyDraftService struct {
	ClientDraftService
	flushes atomic.Int64
}

func (s *spyDraftService) Flush(context.Context) error {
	s.flushes.Add(1)
	return nil
}

func TestClientDraftJob_FlushesPeriodically(t *testing.T) {
	spy := &spyDraftService{}
	job := NewClientDraftJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.flushes.Load(), int64(3))
}

func TestClientDraftJob_StopFlushesAndHalts(t *testing.T) {
	spy := &spyDraftService{}
	job := NewClientDraftJob(spy)

	job.Start(context.Background(), time.Hour)
	job.Stop()
	assert.Equal(t, int64(1), spy.flushes.Load(), "final flush on stop")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int64(1), spy.flushes.Load())
}

func TestClientDraftJob_StopBeforeStart(t *testing.T) {
	spy := &spyDraftService{}
	job := NewClientDraftJob(spy)

	assert.NotPanics(t, job.Stop)
	assert.Equal(t, int64(1), spy.flushes.Load())
}

func TestClientDraftJob_RestartReplacesLoop(t *testing.T) {
	spy := &spyDraftService{}
	job := NewClientDraftJob(spy).(*clientDraftJob)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), time.Hour)
	job.Stop()

	assert.Nil(t, job.cancel)
}
