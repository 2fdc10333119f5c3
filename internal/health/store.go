package health

import (
	"context"
	"errors"

	"github.com/katedeng/photo-share-app/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store interface {
	SchemaInfo(ctx context.Context) (SchemaInfo, error)
	CountUsers(ctx context.Context) (int64, error)
	CountPhotos(ctx context.Context) (int64, error)
	CountSchemaInfo(ctx context.Context) (int64, error)
}

type mongoStore struct {
	users  *mongo.Collection
	photos *mongo.Collection
	schema *mongo.Collection
}

func NewStore(database *mongo.Database) Store {
	return &mongoStore{
		users:  database.Collection(db.UsersCollection),
		photos: database.Collection(db.PhotosCollection),
		schema: database.Collection(db.SchemaInfoCollection),
	}
}

func (s *mongoStore) SchemaInfo(ctx context.Context) (SchemaInfo, error) {
	var info SchemaInfo
	err := s.schema.FindOne(ctx, bson.M{}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return SchemaInfo{}, db.ErrNotFound
	}
	if err != nil {
		return SchemaInfo{}, err
	}
	return info, nil
}

func (s *mongoStore) CountUsers(ctx context.Context) (int64, error) {
	return s.users.CountDocuments(ctx, bson.M{})
}

func (s *mongoStore) CountPhotos(ctx context.Context) (int64, error) {
	return s.photos.CountDocuments(ctx, bson.M{})
}

func (s *mongoStore) CountSchemaInfo(ctx context.Context) (int64, error) {
	return s.schema.CountDocuments(ctx, bson.M{})
}
