package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-landing-builder/internal/app"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is ordered: the first entry matching err wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrTokenCreationFailed, errorResponse{http.StatusInternalServerError, app.MsgTokenCreationFailed}},
	{service.ErrUnauthorizedAccessToDifferentUserData, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},
	{service.ErrVersionIsNotSpecified, errorResponse{http.StatusBadRequest, app.MsgVersionIsNotSpecified}},
	{service.ErrAssetStorageNotConfigured, errorResponse{http.StatusNotImplemented, app.MsgAssetStorageNotConfigured}},
	{service.ErrPresigningFailed, errorResponse{http.StatusBadGateway, app.MsgInternalServerError}},

	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, app.MsgLoginAlreadyExists}},
	{store.ErrPageNotFound, errorResponse{http.StatusNotFound, app.MsgPageNotFound}},
	{store.ErrPageAlreadyExists, errorResponse{http.StatusConflict, app.MsgPageAlreadyExists}},
	{store.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStorageUnavailable}},

	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrEncodingPage, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the mapped status with its public message.
// Server errors log at error level, client errors at warn.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", resp.status).Send()
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", resp.status).Send()
	}

	http.Error(w, resp.message, resp.status)
}
