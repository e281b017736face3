package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account. Password holds the bcrypt hash; the contract
// serializes it on user reads, so there is deliberately no `json:"-"` here.
// FavoriteMovies is an ordered list of movie ids - duplicates are permitted
// and no referential check is made against the movies collection.
type User struct {
	ID             primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Username       string               `json:"Username" bson:"Username" example:"alice1"`
	Password       string               `json:"Password" bson:"Password"`
	Email          string               `json:"Email" bson:"Email" example:"a@example.com"`
	Birthday       string               `json:"Birthday,omitempty" bson:"Birthday,omitempty" example:"1999-01-01"`
	FavoriteMovies []primitive.ObjectID `json:"FavoriteMovies" bson:"FavoriteMovies"`
}

// CreateUserRequest is the signup payload. The binding tags are the entire
// validation contract: Username required, 5+ chars, alphanumeric; Password
// required; Email required and well formed.
type CreateUserRequest struct {
	Username string `json:"Username" binding:"required,min=5,alphanum" example:"alice1"`
	Password string `json:"Password" binding:"required" example:"secret"`
	Email    string `json:"Email" binding:"required,email" example:"a@example.com"`
	Birthday string `json:"Birthday" example:"1999-01-01"`
}

// UpdateUserRequest is the profile update payload. Only Password, Email and
// Birthday are updatable; no validation applies here.
type UpdateUserRequest struct {
	Password *string `json:"Password"`
	Email    *string `json:"Email"`
	Birthday *string `json:"Birthday"`
}

// LoginRequest is the payload for obtaining a bearer token.
type LoginRequest struct {
	Username string `json:"Username" binding:"required" example:"alice1"`
	Password string `json:"Password" binding:"required" example:"secret"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}
