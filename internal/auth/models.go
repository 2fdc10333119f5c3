package auth

import "go.mongodb.org/mongo-driver/bson/primitive"

type LoginRequest struct {
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

// Identity is the slice of the user record the session layer cares about.
type Identity struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
}
