package wire

import (
	"bus-fleet/internal/adaptor"
	"bus-fleet/internal/data/repository"
	"bus-fleet/pkg/middleware"
	"bus-fleet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/login - exchange the admin credentials for a session token
	r.Post("/api/login", authHandler.Login)

	// POST /api/logout - revoke the presented session token
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminSession(repo.Session, log))
		r.Post("/api/logout", authHandler.Logout)
	})
}
