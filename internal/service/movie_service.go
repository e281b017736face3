package service

import (
	"context"
	"time"

	"myflix-api/internal/cache"
	"myflix-api/internal/models"
	"myflix-api/internal/repository"
)

// The catalog is written only out of band, so staleness is bounded by the TTL.
const movieCacheTTL = 15 * time.Minute

// MovieService handles catalog reads with a best-effort Redis cache in front
// of the store.
type MovieService struct {
	repo  repository.MovieRepository
	cache cache.Cache
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repository.MovieRepository, cache cache.Cache) *MovieService {
	return &MovieService{
		repo:  repo,
		cache: cache,
	}
}

// GetAllMovies returns the full catalog (with caching).
func (s *MovieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	cacheKey := cache.MovieListCacheKey()
	var movies []models.Movie
	found, err := s.cache.Get(ctx, cacheKey, &movies)
	if err == nil && found {
		return movies, nil // Cache hit
	}

	movies, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, movies, movieCacheTTL)

	return movies, nil
}

// GetMovieByTitle returns one movie by exact title match (with caching).
func (s *MovieService) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.cachedLookup(ctx, cache.MovieCacheKey(title), func() (*models.Movie, error) {
		return s.repo.FindByTitle(ctx, title)
	})
}

// GetMovieByGenre returns one movie whose embedded genre name matches.
func (s *MovieService) GetMovieByGenre(ctx context.Context, name string) (*models.Movie, error) {
	return s.cachedLookup(ctx, cache.GenreCacheKey(name), func() (*models.Movie, error) {
		return s.repo.FindByGenre(ctx, name)
	})
}

// GetMovieByDirector returns one movie whose embedded director name matches.
func (s *MovieService) GetMovieByDirector(ctx context.Context, name string) (*models.Movie, error) {
	return s.cachedLookup(ctx, cache.DirectorCacheKey(name), func() (*models.Movie, error) {
		return s.repo.FindByDirector(ctx, name)
	})
}

// cachedLookup wraps a single-movie store lookup with the read-through cache.
// Misses (ErrMovieNotFound) are never cached.
func (s *MovieService) cachedLookup(ctx context.Context, key string, find func() (*models.Movie, error)) (*models.Movie, error) {
	var movie models.Movie
	found, err := s.cache.Get(ctx, key, &movie)
	if err == nil && found {
		return &movie, nil // Cache hit
	}

	dbMovie, err := find()
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, key, dbMovie, movieCacheTTL)

	return dbMovie, nil
}
