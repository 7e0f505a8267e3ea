package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/app"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden, app.MsgAccessDenied},
		{service.ErrAssetStorageNotConfigured, http.StatusNotImplemented, app.MsgAssetStorageNotConfigured},
		{service.ErrPresigningFailed, http.StatusBadGateway, app.MsgInternalServerError},
		{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
		{store.ErrPageNotFound, http.StatusNotFound, app.MsgPageNotFound},
		{store.ErrPageAlreadyExists, http.StatusConflict, app.MsgPageAlreadyExists},
		{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("layer: %w", tt.err)
			resp := responseFromError(wrapped)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantMessage, resp.message)
			assert.Equal(t, tt.wantStatus, statusFromError(wrapped))
		})
	}
}

func TestResponseFromError_FirstMatchWins(t *testing.T) {
	err := errors.Join(service.ErrInvalidDataProvided, store.ErrPageNotFound)
	assert.Equal(t, http.StatusBadRequest, statusFromError(err))
}
