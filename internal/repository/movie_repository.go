// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"

	"myflix-api/internal/database"
	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks myflix-api/internal/repository MovieRepository,UserRepository

// MovieRepository defines the interface for movie catalog reads. The catalog
// is written only out of band, so there are no write operations here.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindByGenre(ctx context.Context, name string) (*models.Movie, error)
	FindByDirector(ctx context.Context, name string) (*models.Movie, error)
}

// movieRepository implements MovieRepository using MongoDB
type movieRepository struct {
	collection *mongo.Collection
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db *mongo.Database) MovieRepository {
	return &movieRepository{
		collection: db.Collection(database.MoviesCollection),
	}
}

// FindAll returns every movie in the catalog
func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if movies == nil {
		movies = []models.Movie{}
	}

	return movies, nil
}

// FindByTitle finds one movie by exact title match
func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"Title": title})
}

// FindByGenre finds one movie whose embedded genre name matches
func (r *movieRepository) FindByGenre(ctx context.Context, name string) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"Genre.Name": name})
}

// FindByDirector finds one movie whose embedded director name matches
func (r *movieRepository) FindByDirector(ctx context.Context, name string) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"Director.Name": name})
}

func (r *movieRepository) findOne(ctx context.Context, filter bson.M) (*models.Movie, error) {
	var movie models.Movie

	err := r.collection.FindOne(ctx, filter).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}

	return &movie, nil
}
