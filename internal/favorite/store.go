package favorite

import (
	"context"
	"errors"

	"github.com/katedeng/photo-share-app/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store interface {
	Favorites(ctx context.Context, userID string) ([]string, error)
	// Add and Remove mutate the favorites set atomically; Add is a no-op
	// when the photo id is already present.
	Add(ctx context.Context, userID, photoID string) error
	Remove(ctx context.Context, userID, photoID string) error
	PhotoSummary(ctx context.Context, photoID string) (PhotoSummary, error)
}

type mongoStore struct {
	users  *mongo.Collection
	photos *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{
		users:  database.Collection(db.UsersCollection),
		photos: database.Collection(db.PhotosCollection),
	}
}

func (s *mongoStore) Favorites(ctx context.Context, userID string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, db.ErrNotFound
	}

	var doc struct {
		Favorites []string `bson:"favorites"`
	}
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Favorites, nil
}

func (s *mongoStore) Add(ctx context.Context, userID, photoID string) error {
	return s.updateFavorites(ctx, userID, bson.M{"$addToSet": bson.M{"favorites": photoID}})
}

func (s *mongoStore) Remove(ctx context.Context, userID, photoID string) error {
	return s.updateFavorites(ctx, userID, bson.M{"$pull": bson.M{"favorites": photoID}})
}

func (s *mongoStore) updateFavorites(ctx context.Context, userID string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return db.ErrNotFound
	}

	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.ErrNotFound
	}
	return err
}

func (s *mongoStore) PhotoSummary(ctx context.Context, photoID string) (PhotoSummary, error) {
	oid, err := primitive.ObjectIDFromHex(photoID)
	if err != nil {
		return PhotoSummary{}, db.ErrNotFound
	}

	var summary PhotoSummary
	err = s.photos.FindOne(ctx, bson.M{"_id": oid}).Decode(&summary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return PhotoSummary{}, db.ErrNotFound
	}
	if err != nil {
		return PhotoSummary{}, err
	}
	return summary, nil
}
