package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/dashboard - aggregated widgets (public, reporting data only)
	r.Get("/api/dashboard", dashboardHandler.GetDashboard)
}
