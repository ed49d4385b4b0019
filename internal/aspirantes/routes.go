package aspirantes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", ListAspirantes)
	r.Post("/search", SearchAspirantes)
	r.Get("/count", CountAspirantes)
	r.Get("/filtros", FilterStates)
	r.Get("/{slug}", GetAspirante)

	return r
}
