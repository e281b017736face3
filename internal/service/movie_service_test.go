package service

import (
	"context"
	"testing"
	"time"

	cachemocks "myflix-api/internal/cache/mocks"
	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	repomocks "myflix-api/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestNewMovieService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockMovieRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)

	service := NewMovieService(mockRepo, mockCache)

	assert.NotNil(t, service)
	assert.Equal(t, mockRepo, service.repo)
	assert.Equal(t, mockCache, service.cache)
}

func TestMovieService_GetAllMovies(t *testing.T) {
	catalog := []models.Movie{
		{ID: primitive.NewObjectID(), Title: "Inception"},
		{ID: primitive.NewObjectID(), Title: "Psycho"},
	}

	t.Run("returns catalog from cache when cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:all", gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				movies := dest.(*[]models.Movie)
				*movies = catalog
				return true, nil
			})

		service := NewMovieService(mockRepo, mockCache)
		movies, err := service.GetAllMovies(context.Background())

		require.NoError(t, err)
		assert.Len(t, movies, 2)
	})

	t.Run("fetches from store on cache miss and caches result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:all", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindAll(gomock.Any()).
			Return(catalog, nil)

		mockCache.EXPECT().
			Set(gomock.Any(), "movies:all", catalog, 15*time.Minute).
			Return(nil)

		service := NewMovieService(mockRepo, mockCache)
		movies, err := service.GetAllMovies(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Inception", movies[0].Title)
	})

	t.Run("returns error on store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:all", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindAll(gomock.Any()).
			Return(nil, assert.AnError)

		service := NewMovieService(mockRepo, mockCache)
		movies, err := service.GetAllMovies(context.Background())

		assert.Nil(t, movies)
		assert.Error(t, err)
	})

	t.Run("continues on cache set error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:all", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindAll(gomock.Any()).
			Return(catalog, nil)

		mockCache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		service := NewMovieService(mockRepo, mockCache)
		movies, err := service.GetAllMovies(context.Background())

		require.NoError(t, err)
		assert.Len(t, movies, 2)
	})
}

func TestMovieService_GetMovieByTitle(t *testing.T) {
	movie := &models.Movie{ID: primitive.NewObjectID(), Title: "Inception"}

	t.Run("returns movie from cache when cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:title:Inception", gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				m := dest.(*models.Movie)
				*m = *movie
				return true, nil
			})

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByTitle(context.Background(), "Inception")

		require.NoError(t, err)
		assert.Equal(t, movie.ID, result.ID)
	})

	t.Run("fetches from store on cache miss and caches result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:title:Inception", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByTitle(gomock.Any(), "Inception").
			Return(movie, nil)

		mockCache.EXPECT().
			Set(gomock.Any(), "movies:title:Inception", movie, 15*time.Minute).
			Return(nil)

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByTitle(context.Background(), "Inception")

		require.NoError(t, err)
		assert.Equal(t, "Inception", result.Title)
	})

	t.Run("does not cache a miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:title:Nonexistent", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByTitle(gomock.Any(), "Nonexistent").
			Return(nil, apperrors.ErrMovieNotFound)

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByTitle(context.Background(), "Nonexistent")

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})

	t.Run("falls through to store on cache error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:title:Inception", gomock.Any()).
			Return(false, assert.AnError)

		mockRepo.EXPECT().
			FindByTitle(gomock.Any(), "Inception").
			Return(movie, nil)

		mockCache.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByTitle(context.Background(), "Inception")

		require.NoError(t, err)
		assert.Equal(t, "Inception", result.Title)
	})
}

func TestMovieService_GetMovieByGenre(t *testing.T) {
	movie := &models.Movie{
		ID:    primitive.NewObjectID(),
		Title: "Inception",
		Genre: models.Genre{Name: "Thriller"},
	}

	t.Run("fetches from store on cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:genre:Thriller", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByGenre(gomock.Any(), "Thriller").
			Return(movie, nil)

		mockCache.EXPECT().
			Set(gomock.Any(), "movies:genre:Thriller", movie, 15*time.Minute).
			Return(nil)

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByGenre(context.Background(), "Thriller")

		require.NoError(t, err)
		assert.Equal(t, "Thriller", result.Genre.Name)
	})

	t.Run("propagates miss as ErrMovieNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:genre:Nonexistent", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByGenre(gomock.Any(), "Nonexistent").
			Return(nil, apperrors.ErrMovieNotFound)

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByGenre(context.Background(), "Nonexistent")

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})
}

func TestMovieService_GetMovieByDirector(t *testing.T) {
	movie := &models.Movie{
		ID:       primitive.NewObjectID(),
		Title:    "Spirited Away",
		Director: models.Director{Name: "Hayao Miyazaki"},
	}

	t.Run("fetches from store on cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:director:Hayao Miyazaki", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByDirector(gomock.Any(), "Hayao Miyazaki").
			Return(movie, nil)

		mockCache.EXPECT().
			Set(gomock.Any(), "movies:director:Hayao Miyazaki", movie, 15*time.Minute).
			Return(nil)

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByDirector(context.Background(), "Hayao Miyazaki")

		require.NoError(t, err)
		assert.Equal(t, "Hayao Miyazaki", result.Director.Name)
	})

	t.Run("propagates miss as ErrMovieNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockMovieRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "movies:director:Nobody", gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByDirector(gomock.Any(), "Nobody").
			Return(nil, apperrors.ErrMovieNotFound)

		service := NewMovieService(mockRepo, mockCache)
		result, err := service.GetMovieByDirector(context.Background(), "Nobody")

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})
}
