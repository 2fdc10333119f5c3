package user

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	LastName    string             `bson:"last_name" json:"last_name"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Occupation  string             `bson:"occupation" json:"occupation"`
	LoginName   string             `bson:"login_name" json:"login_name"`
	// Stored in plaintext for compatibility with the existing seed data
	// and frontend. Known weakness.
	Password  string   `bson:"password" json:"-"`
	Favorites []string `bson:"favorites" json:"-"`
}

// ListItem is the projection returned by the user list.
type ListItem struct {
	ID        primitive.ObjectID `json:"_id"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
}

// Detail is the public view of a single user; login name, password and
// favorites stay private.
type Detail struct {
	ID          primitive.ObjectID `json:"_id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Location    string             `json:"location"`
	Description string             `json:"description"`
	Occupation  string             `json:"occupation"`
}

type RegisterRequest struct {
	LoginName   string `json:"login_name"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}
