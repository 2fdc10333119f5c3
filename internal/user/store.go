package user

import (
	"context"
	"errors"

	"github.com/katedeng/photo-share-app/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the slice of the user collection this package needs. The mongo
// implementation lives here; tests substitute fakes.
type Store interface {
	All(ctx context.Context) ([]User, error)
	ByID(ctx context.Context, id string) (User, error)
	ByLogin(ctx context.Context, loginName string) (User, error)
	Create(ctx context.Context, u User) error
}

type mongoStore struct {
	users *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{users: database.Collection(db.UsersCollection)}
}

func (s *mongoStore) All(ctx context.Context) ([]User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoStore) ByID(ctx context.Context, id string) (User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return User{}, db.ErrNotFound
	}

	var u User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, db.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *mongoStore) ByLogin(ctx context.Context, loginName string) (User, error) {
	var u User
	err := s.users.FindOne(ctx, bson.M{"login_name": loginName}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, db.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *mongoStore) Create(ctx context.Context, u User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := s.users.InsertOne(ctx, u)
	return err
}
