package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
	"github.com/akosachev/panelshop/internal/services"
)

// ReconciliationAdmin defines the admin-service operations behind the
// reconciliation queue endpoints.
type ReconciliationAdmin interface {
	ListReconciliations(ctx context.Context) ([]models.Reconciliation, error)
	ResolveReconciliation(ctx context.Context, id, note string) (models.Reconciliation, error)
}

// ResolveRequest carries the operator's resolution note
// swagger:model ResolveRequest
type ResolveRequest struct {
	// What was decided and done about the case
	Note string `json:"note"`
}

// ReconciliationErrorResponse represents an error on reconciliation endpoints
// swagger:model ReconciliationErrorResponse
type ReconciliationErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListReconciliationsHandler lists reconciliation records, open first.
// @Summary List reconciliation records
// @Tags reconciliations
// @Produce json
// @Success 200 {array} models.Reconciliation
// @Router /reconciliations [get]
// @Security BearerAuth
func NewListReconciliationsHandler(svc ReconciliationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		recs, err := svc.ListReconciliations(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list reconciliations", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReconciliationErrorResponse{Error: "Internal server error"})
			return
		}
		if recs == nil {
			recs = []models.Reconciliation{}
		}
		json.NewEncoder(w).Encode(recs)
	}
}

// NewResolveReconciliationHandler closes a reconciliation record.
// @Summary Resolve a reconciliation record
// @Tags reconciliations
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param resolveRequest body handlers.ResolveRequest true "Resolution note"
// @Success 200 {object} models.Reconciliation
// @Failure 404 {object} handlers.ReconciliationErrorResponse "Record not found"
// @Failure 409 {object} handlers.ReconciliationErrorResponse "Already resolved"
// @Router /reconciliations/{id}/resolve [post]
// @Security BearerAuth
func NewResolveReconciliationHandler(svc ReconciliationAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req ResolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReconciliationErrorResponse{Error: "Invalid request body"})
			return
		}

		rec, err := svc.ResolveReconciliation(r.Context(), chi.URLParam(r, "id"), req.Note)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReconciliationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReconciliationErrorResponse{Error: "Record not found"})
			case errors.Is(err, services.ErrAlreadyResolved):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ReconciliationErrorResponse{Error: "Record already resolved"})
			default:
				logger.Log.Errorw("failed to resolve reconciliation", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReconciliationErrorResponse{Error: "Internal server error"})
			}
			return
		}
		json.NewEncoder(w).Encode(rec)
	}
}
