package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/middleware"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Bookings expose passenger data, so every route requires a session
	// regardless of the PUBLIC_BROWSING setting.

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))

		// GET /api/bookings - List all bookings with trip/passenger labels
		r.Get("/api/bookings", bookingHandler.GetBookings)

		// GET /api/bookings/refs - Trip and passenger options for the booking form
		r.Get("/api/bookings/refs", bookingHandler.GetBookingRefs)

		// GET /api/bookings/{id} - Get specific booking details
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
	})

	// Group admin routes under /api/admin/bookings
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))

		// Booking CRUD operations (admin only)
		r.Post("/", bookingHandler.CreateBooking)       // Create new booking
		r.Put("/{id}", bookingHandler.UpdateBooking)    // Update existing booking
		r.Delete("/{id}", bookingHandler.DeleteBooking) // Delete booking
	})
}
