package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Get("/preview/{id}", h.preview)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/documents", func(r chi.Router) {
			r.With(h.bodyHashing).Post("/", h.createPage)
			r.Get("/", h.listPages)
			r.Get("/{id}", h.getPage)
			r.With(h.bodyHashing).Put("/{id}", h.updatePage)
			r.Delete("/{id}", h.deletePage)
			r.Get("/{id}/canvas", h.canvas)
		})

		r.Post("/api/assets/presign", h.presign)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
