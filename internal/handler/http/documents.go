// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-landing-builder/internal/app"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/service"
	"github.com/MKhiriev/go-landing-builder/internal/utils"
	"github.com/MKhiriev/go-landing-builder/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var page models.LandingPage
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		log.Err(err).Str("func", "*Handler.createPage").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	page.OwnerID = userID
	if page.Status == "" {
		page.Status = models.PageStatusDraft
	}

	created, err := h.services.PageService.CreatePage(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "*Handler.createPage", err)
		return
	}

	log.Info().Str("page_id", created.ID).Int64("owner_id", userID).Msg("page created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

// listPages serves GET /api/documents?owner={id}. The owner parameter
// defaults to the caller and must match it.
func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if raw := r.URL.Query().Get("owner"); raw != "" {
		ownerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listPages").Str("owner", raw).Msg("invalid owner parameter")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		if ownerID != userID {
			h.writeError(w, r, "*Handler.listPages", service.ErrUnauthorizedAccessToDifferentUserData)
			return
		}
	}

	pages, err := h.services.PageService.ListPages(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "*Handler.listPages", err)
		return
	}

	utils.WriteJSON(w, models.PageListResponse{Pages: pages, Length: len(pages)}, http.StatusOK)
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	page, err := h.services.PageService.GetPage(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		h.writeError(w, r, "*Handler.getPage", err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// updatePage replaces the whole page. The id in the path wins over the body.
func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var page models.LandingPage
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		log.Err(err).Str("func", "*Handler.updatePage").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	page.ID = chi.URLParam(r, "id")
	page.OwnerID = userID

	updated, err := h.services.PageService.UpdatePage(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "*Handler.updatePage", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deletePage answers 204 whether or not the page existed.
func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.services.PageService.DeletePage(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		h.writeError(w, r, "*Handler.deletePage", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) canvas(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	html, err := h.services.PreviewService.Canvas(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		h.writeError(w, r, "*Handler.canvas", err)
		return
	}

	utils.WriteHTML(w, html, http.StatusOK)
}

// userID reads the caller set by the auth middleware. It writes 400 and
// returns false when the id is missing.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
