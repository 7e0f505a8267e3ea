package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/adapter"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/mock"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthSvc(t *testing.T) (ClientAuthService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	return NewClientAuthService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)
	user := models.User{Login: "alice", Password: "secret"}

	mockAdapter.EXPECT().Register(gomock.Any(), user).Return(models.Token{SignedString: "tok", UserID: 11}, nil)

	userID, err := svc.Register(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(11), userID)
}

func TestClientAuthService_Register_LoginTaken(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: login already exists", adapter.ErrConflict))

	_, err := svc.Register(context.Background(), models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestClientAuthService_Register_EmptyCredentials(t *testing.T) {
	svc, _ := newTestClientAuthSvc(t)

	for _, user := range []models.User{{Login: "alice"}, {Password: "secret"}, {Login: "  ", Password: "x"}} {
		_, err := svc.Register(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{UserID: 4}, nil)

	userID, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), userID)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: invalid login/password", adapter.ErrUnauthorized))

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().SetToken("")

	svc.Logout()
}
