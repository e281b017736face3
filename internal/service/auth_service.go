package service

import (
	"context"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/repository"
	"myflix-api/pkg/auth"
)

// AuthService issues bearer tokens. No session state is kept server-side;
// the signed token is the whole credential.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Login authenticates a user and returns the user plus a signed token.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		User:  *user,
		Token: token,
	}, nil
}
