package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"reachpay/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the settlement use case, the authenticator for caller tokens and a
// logger. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.SettlementUseCase
	auth   *Authenticator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Reads and
// settlement are public; operations that act on behalf of a party require a
// bearer token signed by that party.
func NewHandler(svc port.SettlementUseCase, auth *Authenticator, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/transfers", h.handleListTransfers)
		r.Post("/campaigns/{id}/settle", h.handleSettle)
		r.Get("/accounts/{id}/balance", h.handleBalance)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/accept", h.handleAccept)
			r.Post("/campaigns/{id}/metrics", h.handleMetrics)
			r.Post("/campaigns/{id}/close", h.handleClose)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
