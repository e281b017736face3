package repository

import (
	"context"
	"errors"

	"myflix-api/internal/database"
	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user account data operations.
// Users are addressed by Username throughout; it is the unique key.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, username string, update *models.UpdateUserRequest) (*models.User, error)
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

// Create inserts a new user. The username check and the insert are two store
// calls; the window between them is a tolerated race (the unique index from
// cmd/index is the backstop).
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByUsername(ctx, user.Username)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	// Set the generated ID back to the user
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByUsername finds a user by their unique username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"Username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindAll returns all users
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// Update sets the provided profile fields and returns the updated document.
// The Password here is already hashed by the service layer.
func (r *userRepository) Update(ctx context.Context, username string, update *models.UpdateUserRequest) (*models.User, error) {
	updateDoc := bson.M{}

	if update.Password != nil {
		updateDoc["Password"] = *update.Password
	}
	if update.Email != nil {
		updateDoc["Email"] = *update.Email
	}
	if update.Birthday != nil {
		updateDoc["Birthday"] = *update.Birthday
	}

	// Mongo rejects an empty $set; a body with no updatable fields is a
	// plain read of the addressed user.
	if len(updateDoc) == 0 {
		return r.FindByUsername(ctx, username)
	}

	return r.findOneAndUpdate(ctx, username, bson.M{"$set": updateDoc})
}

// AddFavorite appends a movie id to the user's favorites. $push, not
// $addToSet: duplicates are permitted by contract.
func (r *userRepository) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{
		"$push": bson.M{"FavoriteMovies": movieID},
	})
}

// RemoveFavorite removes a movie id from the user's favorites.
func (r *userRepository) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.findOneAndUpdate(ctx, username, bson.M{
		"$pull": bson.M{"FavoriteMovies": movieID},
	})
}

// Delete removes a user account
func (r *userRepository) Delete(ctx context.Context, username string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"Username": username})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*models.User, error) {
	var user models.User

	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"Username": username},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
