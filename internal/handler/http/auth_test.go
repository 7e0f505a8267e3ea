package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/app"
	"github.com/MKhiriev/go-landing-builder/internal/config"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	router, m := newTestRouter(t, config.StructuredConfig{}, 1)

	user := models.User{Login: "alice", Password: "secret"}
	stored := models.User{UserID: 9, Login: "alice"}
	m.auth.EXPECT().RegisterUser(gomock.Any(), user).Return(stored, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), stored).Return(models.Token{SignedString: "signed"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/user/register", user, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"login taken", store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
		{"invalid", fmt.Errorf("%w: empty login", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, config.StructuredConfig{}, 1)
			m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := doRequest(t, router, http.MethodPost, "/api/user/register", models.User{Login: "a", Password: "b"}, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody+"\n", rec.Body.String())
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t, config.StructuredConfig{}, 1)

	rec := doRequest(t, router, http.MethodPost, "/api/user/register", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	router, m := newTestRouter(t, config.StructuredConfig{}, 1)
	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := doRequest(t, router, http.MethodPost, "/api/user/register", models.User{Login: "a", Password: "b"}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgTokenCreationFailed+"\n", rec.Body.String())
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, m := newTestRouter(t, config.StructuredConfig{}, 1)

	found := models.User{UserID: 3, Login: "alice"}
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(found, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), found).Return(models.Token{SignedString: "signed"}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/user/login", models.User{Login: "alice", Password: "secret"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
}

func TestLogin_WrongCredentials(t *testing.T) {
	for _, err := range []error{service.ErrWrongPassword, store.ErrNoUserWasFound} {
		t.Run(err.Error(), func(t *testing.T) {
			router, m := newTestRouter(t, config.StructuredConfig{}, 1)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, err)

			rec := doRequest(t, router, http.MethodPost, "/api/user/login", models.User{Login: "alice", Password: "x"}, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgInvalidLoginPassword+"\n", rec.Body.String())
		})
	}
}

// ── rate limit ───────────────────────────────────────────────────────────────

func TestLogin_RateLimited(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{AuthRateLimit: 0.001, AuthRateBurst: 2}}
	router, m := newTestRouter(t, cfg, 1)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword).Times(2)

	var codes []int
	for range 3 {
		rec := doRequest(t, router, http.MethodPost, "/api/user/login", models.User{Login: "a", Password: "b"}, nil)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}
