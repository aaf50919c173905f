package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withResponseHash)

		// legacy alias kept for older host extensions
		r.Post("/api/get_toml_section", h.getSection)

		r.Route("/api/toml", func(r chi.Router) {
			r.Post("/get_section", h.getSection)
			r.Post("/get_config", h.getConfig)
			r.With(h.reloadGuard).Post("/reload", h.reloadConfig)
			r.Get("/node/{id}", h.cachedSection)
		})

		r.Route("/api/nodes", func(r chi.Router) {
			r.Get("/", h.listNodes)
			r.Get("/{name}", h.getNode)
			r.Post("/{name}/invoke", h.invokeNode)
			r.Get("/{name}/changed", h.nodeChanged)
		})

		r.Route("/api/version", func(r chi.Router) {
			r.Get("/", h.getServerVersion)
			r.Get("/build", h.getBuildInfo)
		})
	})

	// the upgrade needs the raw connection, so no body-rewriting middleware
	router.Get("/ws", h.schemaPush)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
