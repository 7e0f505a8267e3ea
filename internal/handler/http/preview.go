package http

import (
	"net/http"

	"github.com/MKhiriev/go-landing-builder/internal/utils"
	"github.com/go-chi/chi/v5"
)

// preview serves the public page. Drafts and archived pages are 404.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	html, err := h.services.PreviewService.Published(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.preview", err)
		return
	}

	utils.WriteHTML(w, html, http.StatusOK)
}
