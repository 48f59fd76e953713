package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/username/goviet/pkg/ime"
)

// defaultMutationRPS bounds how often config/shortcut mutating endpoints
// may be called per second; read-only endpoints (health, buffer) are
// unlimited since a preedit-polling UI can call them far more often.
const defaultMutationRPS = 20

func urlParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// NewRouter builds the daemon's loopback HTTP control surface: health,
// config mutation, shortcut CRUD, and buffer introspection, mirroring
// the engine operations cmd/govietd also exports over D-Bus. Intended to
// be served on a localhost-only listener (see cmd/govietd/main.go) --
// this router performs no authentication of its own.
func NewRouter(e *ime.Engine, log *slog.Logger) *chi.Mux {
	svc := NewService(e)
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(log))
	r.Use(Recoverer(log))

	r.Get("/healthz", svc.handleHealth)
	r.Get("/v1/buffer", svc.handleGetBuffer)

	r.Group(func(r chi.Router) {
		r.Use(RateLimit(defaultMutationRPS))

		r.Post("/v1/config", svc.handleSetConfig)
		r.Post("/v1/clear-word", svc.handleClearWord)
		r.Post("/v1/clear-all", svc.handleClearAll)

		r.Route("/v1/shortcuts", func(r chi.Router) {
			r.Post("/", svc.handleAddShortcut)
			r.Delete("/", svc.handleClearShortcuts)
			r.Delete("/{trigger}", svc.handleRemoveShortcut)
		})
	})

	return r
}
