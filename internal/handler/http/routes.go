package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withClientInfo)

	// signed dynamic endpoints
	router.Post("/d/register-user", h.registerUser)
	router.Post("/d/delete-user", h.deleteUser)

	router.Get("/ping", h.ping)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	// landing page
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/", h.page)
		r.Get("/index.html", h.page)
		r.Get("/app", h.page)
		r.Get("/*", h.page)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
