package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"textcompare/internal/handlers"
	"textcompare/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Comparison  service.ComparisonService
	Preferences service.PreferencesService
	// DB is pinged by the health check; nil skips the check.
	DB handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	comparison := handlers.NewComparisonHandler(deps.Comparison)
	preferences := handlers.NewPreferencesHandler(deps.Preferences)
	health := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", health)

		r.Get("/texts", comparison.GetTexts)
		r.Put("/texts/{id}", comparison.UpdateText)
		r.Post("/compare", comparison.Compare)
		r.Post("/brightness", comparison.SetBrightness)

		r.Get("/settings", preferences.GetSettings)
		r.Patch("/settings", preferences.UpdateSettings)
		r.Get("/theme", preferences.GetTheme)
		r.Post("/theme/toggle", preferences.ToggleTheme)
	})

	return r
}
