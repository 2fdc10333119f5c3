package auth

import (
	"context"
	"errors"

	"github.com/katedeng/photo-share-app/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store interface {
	// ByCredentials matches login name and password exactly in a single
	// query, so a miss never reveals which of the two was wrong.
	ByCredentials(ctx context.Context, loginName, password string) (Identity, error)
}

type mongoStore struct {
	users *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{users: database.Collection(db.UsersCollection)}
}

func (s *mongoStore) ByCredentials(ctx context.Context, loginName, password string) (Identity, error) {
	var id Identity
	err := s.users.FindOne(ctx, bson.M{"login_name": loginName, "password": password}).Decode(&id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Identity{}, db.ErrNotFound
	}
	if err != nil {
		return Identity{}, err
	}
	return id, nil
}
