package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/fuelplan/internal/catalog"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	cat    *catalog.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(cat *catalog.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		cat:    cat,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Planning endpoints, pure computation over the posted inputs.
	s.router.Post("/api/v1/plan", s.handleComputePlan)
	s.router.Post("/api/v1/sweat-test", s.handleSweatTest)
	s.router.Post("/api/v1/tolerance", s.handleTolerance)

	s.router.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", s.handleListCHOProducts)
		r.Get("/drinks", s.handleListDrinks)
		r.Get("/electrolytes", s.handleListElectrolytes)

		// Catalog writes require the API key.
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/products", s.handleAddCHOProduct)
			r.Post("/drinks", s.handleAddDrink)
			r.Post("/electrolytes", s.handleAddElectrolyte)
		})
	})
}
