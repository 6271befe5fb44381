package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// compressionLevel is the gzip level used for JSON and text responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.cors().Handler)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.me)

		r.Get("/api/items", h.listItems)
		r.Post("/api/items", h.createItem)
		r.Patch("/api/items/{id}", h.updateItem)
		r.Delete("/api/items/{id}", h.deleteItem)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

// cors builds the CORS policy for the configured browser origins.
func (h *Handler) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: h.corsOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}
