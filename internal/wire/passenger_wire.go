package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/middleware"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePassenger(
	r chi.Router,
	passengerHandler *adaptor.PassengerHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== BROWSING ROUTES ====================
	browsing(r, repo, config, log, func(r chi.Router) {
		// GET /api/passengers - List all passengers (paginated)
		r.Get("/api/passengers", passengerHandler.GetPassengers)

		// GET /api/passengers/{id} - Get specific passenger details
		r.Get("/api/passengers/{id}", passengerHandler.GetPassengerByID)
	})

	// ==================== ADMIN ROUTES ====================
	// Group admin routes under /api/admin/passengers
	r.Route("/api/admin/passengers", func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))

		// Passenger CRUD operations (admin only)
		r.Post("/", passengerHandler.CreatePassenger)       // Create new passenger
		r.Put("/{id}", passengerHandler.UpdatePassenger)    // Update existing passenger
		r.Delete("/{id}", passengerHandler.DeletePassenger) // Delete passenger
	})
}
