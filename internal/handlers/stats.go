package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/services"
)

// StatsProvider defines the interface behind the dashboard summary.
type StatsProvider interface {
	Stats(ctx context.Context) (services.DashboardStats, error)
}

// NewStatsHandler returns the dashboard summary: user counts, active
// subscriptions, purchase revenue and recent activity.
// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Router /stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute stats", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			return
		}
		json.NewEncoder(w).Encode(stats)
	}
}
