package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-landing-builder/internal/app"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/utils"
	"github.com/MKhiriev/go-landing-builder/models"
)

func (h *Handler) presign(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.PresignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.presign").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AssetService.Presign(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, "*Handler.presign", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
