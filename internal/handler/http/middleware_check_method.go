// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-landing-builder/internal/logger"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. A request with a method the route does not serve gets 404 rather
// than chi's default 405, so the response does not reveal that the path
// exists.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("no route")
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
