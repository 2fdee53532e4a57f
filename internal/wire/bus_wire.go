package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/middleware"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBus(
	r chi.Router,
	busHandler *adaptor.BusHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== BROWSING ROUTES ====================
	browsing(r, repo, config, log, func(r chi.Router) {
		// GET /api/buses - List all buses (paginated)
		r.Get("/api/buses", busHandler.GetBuses)

		// GET /api/buses/{id} - Get specific bus details
		r.Get("/api/buses/{id}", busHandler.GetBusByID)
	})

	// ==================== ADMIN ROUTES ====================
	// Group admin routes under /api/admin/buses
	r.Route("/api/admin/buses", func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))

		// Bus CRUD operations (admin only)
		r.Post("/", busHandler.CreateBus)       // Create new bus
		r.Put("/{id}", busHandler.UpdateBus)    // Update existing bus
		r.Delete("/{id}", busHandler.DeleteBus) // Delete bus
	})
}
