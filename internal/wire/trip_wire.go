package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/middleware"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTrip(
	r chi.Router,
	tripHandler *adaptor.TripHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== BROWSING ROUTES ====================
	browsing(r, repo, config, log, func(r chi.Router) {
		// GET /api/trips - List all trips with bus/route labels (paginated)
		r.Get("/api/trips", tripHandler.GetTrips)

		// GET /api/trips/refs - Bus and route options for the trip form
		r.Get("/api/trips/refs", tripHandler.GetTripRefs)

		// GET /api/trips/{id} - Get specific trip details
		r.Get("/api/trips/{id}", tripHandler.GetTripByID)
	})

	// ==================== ADMIN ROUTES ====================
	// Group admin routes under /api/admin/trips
	r.Route("/api/admin/trips", func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))

		// Trip CRUD operations (admin only)
		r.Post("/", tripHandler.CreateTrip)       // Create new trip
		r.Put("/{id}", tripHandler.UpdateTrip)    // Update existing trip
		r.Delete("/{id}", tripHandler.DeleteTrip) // Delete trip
	})
}
