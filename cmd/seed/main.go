// The seed tool is the out-of-band write path for the movie catalog: the API
// itself serves movies read-only. It uploads poster images to the S3 bucket,
// records their URLs as ImagePath, and inserts the movie and demo user
// documents.
package main

import (
	"bytes"
	"context"
	"log"

	"myflix-api/internal/config"
	"myflix-api/internal/database"
	"myflix-api/internal/models"
	"myflix-api/internal/storage"
	"myflix-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	movieIDs := seedMovies(ctx, mongoDB.Database, s3Client)
	seedUsers(ctx, mongoDB.Database, movieIDs)

	log.Println("Seed completed successfully!")
}

func seedMovies(ctx context.Context, db *mongo.Database, store storage.Storage) []primitive.ObjectID {
	collection := db.Collection(database.MoviesCollection)

	// Clear existing movies
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear movies: %v", err)
	}

	movies := []models.Movie{
		{
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			Genre: models.Genre{
				Name:        "Thriller",
				Description: "Thriller film, also known as suspense film or suspense thriller, is a broad film genre that involves excitement and suspense in the audience.",
			},
			Director: models.Director{
				Name:  "Christopher Nolan",
				Bio:   "Christopher Edward Nolan is a British-American film director, producer, and screenwriter known for making personal, distinctive films within the Hollywood mainstream.",
				Birth: "1970",
			},
			Featured: true,
		},
		{
			Title:       "The Shawshank Redemption",
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Genre: models.Genre{
				Name:        "Drama",
				Description: "In film and television, drama is a category of narrative fiction intended to be more serious than humorous in tone.",
			},
			Director: models.Director{
				Name:  "Frank Darabont",
				Bio:   "Frank Darabont is a French-American film director, screenwriter and producer who has been nominated for three Academy Awards.",
				Birth: "1959",
			},
			Featured: true,
		},
		{
			Title:       "Psycho",
			Description: "A Phoenix secretary embezzles forty thousand dollars from her employer's client, goes on the run, and checks into a remote motel run by a young man under the domination of his mother.",
			Genre: models.Genre{
				Name:        "Thriller",
				Description: "Thriller film, also known as suspense film or suspense thriller, is a broad film genre that involves excitement and suspense in the audience.",
			},
			Director: models.Director{
				Name:  "Alfred Hitchcock",
				Bio:   "Sir Alfred Joseph Hitchcock was an English film director, producer, and screenwriter. He is one of the most influential filmmakers in the history of cinema.",
				Birth: "1899",
				Death: "1980",
			},
			Featured: false,
		},
		{
			Title:       "Spirited Away",
			Description: "During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches, and spirits, where humans are changed into beasts.",
			Genre: models.Genre{
				Name:        "Animated",
				Description: "Animation is a method in which figures are manipulated to appear as moving images.",
			},
			Director: models.Director{
				Name:  "Hayao Miyazaki",
				Bio:   "Hayao Miyazaki is a Japanese animator, director, producer, screenwriter, author, and manga artist, co-founder of Studio Ghibli.",
				Birth: "1941",
			},
			Featured: true,
		},
		{
			Title:       "Pulp Fiction",
			Description: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
			Genre: models.Genre{
				Name:        "Crime",
				Description: "Crime films center on the lives of criminals and the institutions that pursue them.",
			},
			Director: models.Director{
				Name:  "Quentin Tarantino",
				Bio:   "Quentin Jerome Tarantino is an American film director, screenwriter, producer, and actor, known for nonlinear storylines and stylized violence.",
				Birth: "1963",
			},
			Featured: false,
		},
	}

	// Upload a placeholder poster per movie and record its URL as ImagePath.
	var toInsert []interface{}
	for i := range movies {
		key := posterKey(movies[i].Title)
		uploadPlaceholderPoster(ctx, store, key)
		movies[i].ImagePath = store.ObjectURL(key)
		toInsert = append(toInsert, movies[i])
	}

	result, err := collection.InsertMany(ctx, toInsert)
	if err != nil {
		log.Fatalf("Failed to seed movies: %v", err)
	}

	log.Printf("Seeded %d movies", len(result.InsertedIDs))

	var movieIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		movieIDs = append(movieIDs, id.(primitive.ObjectID))
	}

	return movieIDs
}

func seedUsers(ctx context.Context, db *mongo.Database, movieIDs []primitive.ObjectID) {
	collection := db.Collection(database.UsersCollection)

	// Clear existing users
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	password1, _ := auth.HashPassword("password123")
	password2, _ := auth.HashPassword("password456")

	users := []interface{}{
		models.User{
			Username:       "alice1",
			Password:       password1,
			Email:          "alice@example.com",
			Birthday:       "1999-01-01",
			FavoriteMovies: []primitive.ObjectID{movieIDs[0], movieIDs[3]},
		},
		models.User{
			Username:       "bobby2",
			Password:       password2,
			Email:          "bob@example.com",
			Birthday:       "1985-06-15",
			FavoriteMovies: []primitive.ObjectID{},
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))
}

// posterKey derives the object key from a movie title.
func posterKey(title string) string {
	key := make([]byte, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			key = append(key, byte(r))
		case r >= 'A' && r <= 'Z':
			key = append(key, byte(r-'A'+'a'))
		case r == ' ':
			key = append(key, '-')
		}
	}
	return string(key) + ".png"
}

// uploadPlaceholderPoster uploads a placeholder poster image to S3.
func uploadPlaceholderPoster(ctx context.Context, store storage.Storage, key string) {
	// Minimal valid PNG header followed by padding (placeholder content)
	placeholder := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 1024)...)

	if err := store.PutObject(ctx, key, bytes.NewReader(placeholder), "image/png"); err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder poster: %s", key)
}
