package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/middleware"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoute(
	r chi.Router,
	routeHandler *adaptor.RouteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== BROWSING ROUTES ====================
	browsing(r, repo, config, log, func(r chi.Router) {
		// GET /api/routes - List all routes (paginated)
		r.Get("/api/routes", routeHandler.GetRoutes)

		// GET /api/routes/{id} - Get specific route details
		r.Get("/api/routes/{id}", routeHandler.GetRouteByID)
	})

	// ==================== ADMIN ROUTES ====================
	// Group admin routes under /api/admin/routes
	r.Route("/api/admin/routes", func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))

		// Route CRUD operations (admin only)
		r.Post("/", routeHandler.CreateRoute)       // Create new route
		r.Put("/{id}", routeHandler.UpdateRoute)    // Update existing route
		r.Delete("/{id}", routeHandler.DeleteRoute) // Delete route
	})
}
