package service

import (
	"context"
	"fmt"

	"github.com/easyliving/backend/internal/logger"
	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/repository"
	"github.com/easyliving/backend/pkg/supabase"
)

type authService struct {
	client   *supabase.Client
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(client *supabase.Client, userRepo repository.UserRepository) AuthService {
	return &authService{
		client:   client,
		userRepo: userRepo,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	session, err := s.client.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return authResponse(session), nil
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	session, err := s.client.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	// Mirror the auth user into our users table. The auth user already
	// exists at this point, so a duplicate-row failure is only logged.
	if _, err := s.userRepo.Create(ctx, &models.User{ID: session.User.ID, Email: session.User.Email}); err != nil {
		logger.WithContext(ctx).Warn("failed to mirror user record",
			logger.String("user_id", session.User.ID),
			logger.Err(err),
		)
	}

	return authResponse(session), nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func authResponse(session *supabase.AuthSession) *models.AuthResponse {
	return &models.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User: models.User{
			ID:    session.User.ID,
			Email: session.User.Email,
		},
	}
}
