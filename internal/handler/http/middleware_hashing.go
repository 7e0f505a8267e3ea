package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-landing-builder/internal/app"
	"github.com/MKhiriev/go-landing-builder/internal/logger"
	"github.com/MKhiriev/go-landing-builder/internal/utils"
)

// maxDocumentBody bounds request bodies read for hashing.
const maxDocumentBody = 4 << 20

// bodyHashing checks the HashSHA256 header against the raw request body. It
// is a no-op when no hash key is configured.
func (h *Handler) bodyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBody))
		if err != nil {
			log.Err(err).Str("func", "*Handler.bodyHashing").Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if !h.hasher.Verify(body, signature) {
			log.Warn().Str("func", "*Handler.bodyHashing").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
