package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/text/encrypt", h.encryptText)
		r.Post("/scan", h.scan)
		r.Post("/notify", h.notify)
		r.Get("/scan/latest", h.latestScan)

		r.Post("/passphrase", h.setPassphrase)
		r.Delete("/passphrase", h.resetPassphrase)
		r.Get("/passphrase", h.checkPassphrase)

		r.Route("/keys/{namespace}", func(r chi.Router) {
			r.Get("/", h.listKeys)
			r.Post("/", h.putKey)
			r.Get("/{handle}", h.getKey)
			r.Delete("/{handle}", h.deleteKey)
		})

		r.Get("/version", h.getVersion)
	})

	return router
}
