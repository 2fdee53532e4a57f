// internal/wire/wire.go
package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/internal/usecase"
	"bus-fleet/pkg/middleware"
	"bus-fleet/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireDashboard(r, handler.Dashboard, repo, config, logger)
	wireBus(r, handler.Bus, repo, config, logger)
	wireRoute(r, handler.Route, repo, config, logger)
	wireTrip(r, handler.Trip, repo, config, logger)
	wirePassenger(r, handler.Passenger, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	// Health check endpoint
	r.Get("/api/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// browsing wraps list/detail routes. They stay public unless PUBLIC_BROWSING
// is switched off, in which case they require an active session like the
// admin routes do.
func browsing(
	r chi.Router,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	register func(r chi.Router),
) {
	r.Group(func(r chi.Router) {
		if !config.Auth.PublicBrowsing {
			r.Use(middleware.AdminSession(repo.Session, log))
		}
		register(r)
	})
}
