// Package models defines data structures for the application.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genre is embedded on Movie rather than referenced; genre lookups scan the
// movies collection by Genre.Name.
type Genre struct {
	Name        string `json:"Name" bson:"Name" example:"Thriller"`
	Description string `json:"Description" bson:"Description"`
}

// Director is embedded on Movie. Birth and Death are years as strings; Death
// is empty for living directors.
type Director struct {
	Name  string `json:"Name" bson:"Name" example:"Christopher Nolan"`
	Bio   string `json:"Bio" bson:"Bio"`
	Birth string `json:"Birth" bson:"Birth" example:"1970"`
	Death string `json:"Death,omitempty" bson:"Death,omitempty"`
}

// Movie represents a catalog entry. Movies are written only out of band (the
// seed tool); the API serves them read-only. Field names are PascalCase on
// the wire and in the store - that is the contract, not a style choice.
type Movie struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title       string             `json:"Title" bson:"Title" example:"Inception"`
	Description string             `json:"Description" bson:"Description"`
	Genre       Genre              `json:"Genre" bson:"Genre"`
	Director    Director           `json:"Director" bson:"Director"`
	ImagePath   string             `json:"ImagePath" bson:"ImagePath" example:"https://posters.example.com/inception.png"`
	Featured    bool               `json:"Featured" bson:"Featured"`
}
