package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-fleet/internal/data/entity"
	"bus-fleet/internal/data/repository"
	"bus-fleet/internal/dto/request"
	"bus-fleet/internal/dto/response"
	"bus-fleet/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo          *repository.Repository
	config        *utils.Config
	log           *zap.Logger
	adminPassHash string
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	// The credential pair is fixed (placeholder auth model). Hash the configured
	// password once so login never touches the plaintext again.
	hash, err := utils.HashPassword(config.Auth.AdminPassword)
	if err != nil {
		log.Fatal("Failed to hash admin password", zap.Error(err))
	}

	return &authService{
		repo:          repo,
		config:        config,
		log:           log.With(zap.String("service", "auth")),
		adminPassHash: hash,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Username != s.config.Auth.AdminUsername ||
		!utils.CheckPasswordHash(req.Password, s.adminPassHash) {
		s.log.Warn("Invalid admin credentials", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Auth.SessionExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Admin logged in", zap.String("session_id", session.ID.String()))

	return &response.LoginResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("Admin logged out")
	return nil
}
