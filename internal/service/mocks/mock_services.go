// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"myflix-api/internal/models"
)

// MockMovieService is a mock implementation of MovieServicer.
type MockMovieService struct {
	GetAllMoviesFunc       func(ctx context.Context) ([]models.Movie, error)
	GetMovieByTitleFunc    func(ctx context.Context, title string) (*models.Movie, error)
	GetMovieByGenreFunc    func(ctx context.Context, name string) (*models.Movie, error)
	GetMovieByDirectorFunc func(ctx context.Context, name string) (*models.Movie, error)
}

func (m *MockMovieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	if m.GetAllMoviesFunc != nil {
		return m.GetAllMoviesFunc(ctx)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	if m.GetMovieByTitleFunc != nil {
		return m.GetMovieByTitleFunc(ctx, title)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovieByGenre(ctx context.Context, name string) (*models.Movie, error) {
	if m.GetMovieByGenreFunc != nil {
		return m.GetMovieByGenreFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovieByDirector(ctx context.Context, name string) (*models.Movie, error) {
	if m.GetMovieByDirectorFunc != nil {
		return m.GetMovieByDirectorFunc(ctx, name)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetAllUsersFunc    func(ctx context.Context) ([]models.User, error)
	CreateUserFunc     func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUserFunc     func(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)
	AddFavoriteFunc    func(ctx context.Context, username, movieID string) (*models.User, error)
	RemoveFavoriteFunc func(ctx context.Context, username, movieID string) (*models.User, error)
	DeleteUserFunc     func(ctx context.Context, username string) error
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, username, req)
	}
	return nil, nil
}

func (m *MockUserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, username, movieID)
	}
	return nil, nil
}

func (m *MockUserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, username, movieID)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, username string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, username)
	}
	return nil
}

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}
