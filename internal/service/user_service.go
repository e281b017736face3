package service

import (
	"context"

	"myflix-api/internal/models"
	"myflix-api/internal/repository"
	"myflix-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles business logic for user account operations.
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetAllUsers retrieves all users. The stored (hashed) Password field is part
// of the documents returned; the contract exposes it.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// CreateUser hashes the password and creates the account. Validation has
// already happened at the boundary; duplicate usernames surface as
// ErrUserAlreadyExists from the repository.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       req.Username,
		Password:       hashedPassword,
		Email:          req.Email,
		Birthday:       req.Birthday,
		FavoriteMovies: []primitive.ObjectID{},
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser updates Password/Email/Birthday for the addressed user. A
// provided password is re-hashed before it reaches the store.
func (s *UserService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if req.Password != nil {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		req.Password = &hashedPassword
	}

	return s.repo.Update(ctx, username, req)
}

// AddFavorite appends a movie id to the user's favorites list.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		// A malformed id is a store-layer cast failure, not a 404.
		return nil, err
	}

	return s.repo.AddFavorite(ctx, username, objectID)
}

// RemoveFavorite removes a movie id from the user's favorites list.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, err
	}

	return s.repo.RemoveFavorite(ctx, username, objectID)
}

// DeleteUser removes the account.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}
