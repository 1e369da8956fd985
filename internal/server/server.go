// Package server exposes the trip ledger and settlement engine over a
// JSON HTTP API.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crewledger/crewledger/internal/service"
	"github.com/crewledger/crewledger/internal/storage"
)

// Server holds the HTTP handlers' dependencies.
type Server struct {
	store    storage.Store
	svc      *service.SettlementService
	logger   *slog.Logger
	validate *validator.Validate
}

// New creates a Server over the given store.
func New(store storage.Store, svc *service.SettlementService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:    store,
		svc:      svc,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(metricsMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1/trips", func(r chi.Router) {
		r.Post("/", s.handleCreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)

			r.Post("/participants", s.handleAddParticipants)
			r.Get("/participants", s.handleListParticipants)

			r.Post("/expenses", s.handleCreateExpense)
			r.Get("/expenses", s.handleListExpenses)
			r.Delete("/expenses/{expenseID}", s.handleDeleteExpense)

			r.Post("/settlements", s.handleCreateSettlement)
			r.Get("/settlements", s.handleListSettlements)
			r.Delete("/settlements/{settlementID}", s.handleDeleteSettlement)

			r.Get("/settlement", s.handleComputeSettlement)
			r.Get("/settlement/plan", s.handleSettlementPlan)
		})
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
