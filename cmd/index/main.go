package main

import (
	"context"
	"log"
	"time"

	"myflix-api/internal/config"
	"myflix-api/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users: Username is the unique key; signup's check-then-create race
	// lands here as a duplicate-key error.
	createIndex(ctx, db, database.UsersCollection, bson.D{{Key: "Username", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Movies: Title is the lookup key; the embedded genre/director names are
	// scanned by the single-movie lookup routes.
	createIndex(ctx, db, database.MoviesCollection, bson.D{{Key: "Title", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, database.MoviesCollection, bson.D{{Key: "Genre.Name", Value: 1}}, nil)
	createIndex(ctx, db, database.MoviesCollection, bson.D{{Key: "Director.Name", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
