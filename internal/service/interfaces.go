// Package service contains business logic for the application.
package service

import (
	"context"

	"myflix-api/internal/models"
)

// MovieServicer defines the interface for movie catalog reads.
type MovieServicer interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error)
	GetMovieByGenre(ctx context.Context, name string) (*models.Movie, error)
	GetMovieByDirector(ctx context.Context, name string) (*models.Movie, error)
}

// UserServicer defines the interface for user account operations.
type UserServicer interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	AddFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
