package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/adapter"
	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/mock"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ editor.Gateway = (ClientPageService)(nil)

func newTestClientPageSvc(t *testing.T) (ClientPageService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	return NewClientPageService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientPageService_Create_StripsServerFields(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	input := samplePage()
	input.ID = "local-key"
	input.Status = ""

	mockAdapter.EXPECT().Token().Return("tok")
	mockAdapter.EXPECT().CreatePage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.LandingPage) (models.LandingPage, error) {
			assert.Empty(t, p.ID)
			assert.Equal(t, models.PageStatusDraft, p.Status)
			p.ID = "srv-1"
			return p, nil
		})

	got, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", got.ID)
	assert.Equal(t, "local-key", input.ID, "input is not mutated")
}

func TestClientPageService_Create_NotAuthenticated(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().Token().Return("")

	_, err := svc.Create(context.Background(), samplePage())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientPageService_Create_Invalid(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().Token().Return("tok")
	mockAdapter.EXPECT().CreatePage(gomock.Any(), gomock.Any()).
		Return(models.LandingPage{}, fmt.Errorf("%w: invalid data provided", adapter.ErrBadRequest))

	_, err := svc.Create(context.Background(), samplePage())
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Get / Update / Delete ────────────────────────────────────────────────────

func TestClientPageService_Get_NotFound(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().GetPage(gomock.Any(), "gone").
		Return(models.LandingPage{}, fmt.Errorf("%w: page not found", adapter.ErrNotFound))

	_, err := svc.Get(context.Background(), "gone")
	assert.ErrorIs(t, err, store.ErrPageNotFound)
}

func TestClientPageService_Update_Unavailable(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().Token().Return("tok")
	mockAdapter.EXPECT().UpdatePage(gomock.Any(), gomock.Any()).
		Return(models.LandingPage{}, fmt.Errorf("%w: storage is temporarily unavailable", adapter.ErrServiceUnavailable))

	_, err := svc.Update(context.Background(), samplePage())
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestClientPageService_Update_ExpiredToken(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().Token().Return("tok")
	mockAdapter.EXPECT().UpdatePage(gomock.Any(), gomock.Any()).
		Return(models.LandingPage{}, fmt.Errorf("%w: token is expired", adapter.ErrUnauthorized))

	_, err := svc.Update(context.Background(), samplePage())
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestClientPageService_Delete(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().DeletePage(gomock.Any(), "p1").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "p1"))
}

// ── List / extras ────────────────────────────────────────────────────────────

func TestClientPageService_List_Forbidden(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().ListPages(gomock.Any(), int64(9)).
		Return(nil, fmt.Errorf("%w: access denied", adapter.ErrForbidden))

	_, err := svc.List(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUnauthorizedAccessToDifferentUserData)
}

func TestClientPageService_Presign_NotConfigured(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().Presign(gomock.Any(), gomock.Any()).
		Return(models.PresignResponse{}, fmt.Errorf("%w: asset storage is not configured", adapter.ErrNotImplemented))

	_, err := svc.Presign(context.Background(), models.PresignRequest{FileName: "a.png", ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrAssetStorageNotConfigured)
}

func TestClientPageService_UploadImage(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	path := filepath.Join(t.TempDir(), "hero.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0o600))

	asset := models.PresignResponse{Key: "7/hero.png", UploadURL: "https://s3/up", DownloadURL: "https://s3/down"}
	gomock.InOrder(
		mockAdapter.EXPECT().Presign(gomock.Any(), models.PresignRequest{FileName: "hero.png", ContentType: "image/png"}).Return(asset, nil),
		mockAdapter.EXPECT().UploadAsset(gomock.Any(), "https://s3/up", "image/png", []byte("\x89PNG")).Return(nil),
	)

	got, err := svc.UploadImage(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://s3/down", got.DownloadURL)
}

func TestClientPageService_UploadImage_MissingFile(t *testing.T) {
	svc, _ := newTestClientPageSvc(t)

	_, err := svc.UploadImage(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClientPageService_UploadImage_UploadFails(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	path := filepath.Join(t.TempDir(), "hero.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	mockAdapter.EXPECT().Presign(gomock.Any(), gomock.Any()).Return(models.PresignResponse{UploadURL: "https://s3/up"}, nil)
	mockAdapter.EXPECT().UploadAsset(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: status 403", adapter.ErrForbidden))

	_, err := svc.UploadImage(context.Background(), path)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestClientPageService_PreviewURLAndVersion(t *testing.T) {
	svc, mockAdapter := newTestClientPageSvc(t)

	mockAdapter.EXPECT().PreviewURL("p1").Return("http://srv/preview/p1")
	mockAdapter.EXPECT().Version(gomock.Any()).Return("v1", nil)

	assert.Equal(t, "http://srv/preview/p1", svc.PreviewURL("p1"))
	v, err := svc.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
}
