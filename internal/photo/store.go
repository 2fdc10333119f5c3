package photo

import (
	"context"
	"errors"

	"github.com/katedeng/photo-share-app/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store interface {
	ByUser(ctx context.Context, userID string) ([]Photo, error)
	All(ctx context.Context) ([]Photo, error)
	Create(ctx context.Context, p Photo) error
	// AppendComment and AddMentions update elements atomically so two
	// concurrent writers cannot overwrite each other's whole list.
	AppendComment(ctx context.Context, photoID string, c Comment) error
	AddMentions(ctx context.Context, photoID string, userIDs []string) error
	Author(ctx context.Context, userID primitive.ObjectID) (Author, error)
}

type mongoStore struct {
	photos *mongo.Collection
	users  *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{
		photos: database.Collection(db.PhotosCollection),
		users:  database.Collection(db.UsersCollection),
	}
}

func (s *mongoStore) ByUser(ctx context.Context, userID string) ([]Photo, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, db.ErrNotFound
	}

	cursor, err := s.photos.Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		return nil, err
	}

	var photos []Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *mongoStore) All(ctx context.Context) ([]Photo, error) {
	cursor, err := s.photos.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var photos []Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *mongoStore) Create(ctx context.Context, p Photo) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := s.photos.InsertOne(ctx, p)
	return err
}

func (s *mongoStore) AppendComment(ctx context.Context, photoID string, c Comment) error {
	oid, err := primitive.ObjectIDFromHex(photoID)
	if err != nil {
		return db.ErrNotFound
	}

	err = s.photos.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"comments": c}},
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.ErrNotFound
	}
	return err
}

func (s *mongoStore) AddMentions(ctx context.Context, photoID string, userIDs []string) error {
	oid, err := primitive.ObjectIDFromHex(photoID)
	if err != nil {
		return db.ErrNotFound
	}

	err = s.photos.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"mentions": bson.M{"$each": userIDs}}},
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.ErrNotFound
	}
	return err
}

func (s *mongoStore) Author(ctx context.Context, userID primitive.ObjectID) (Author, error) {
	var a Author
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Author{}, db.ErrNotFound
	}
	if err != nil {
		return Author{}, err
	}
	return a, nil
}
