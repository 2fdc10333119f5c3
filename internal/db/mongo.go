package db

import (
	"context"
	"errors"
	"time"

	"github.com/katedeng/photo-share-app/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names match the ones the seeding scripts populate.
const (
	UsersCollection      = "users"
	PhotosCollection     = "photos"
	SchemaInfoCollection = "schemainfos"
)

// ErrNotFound is returned by collection stores when no document matches.
var ErrNotFound = errors.New("record not found")

// ConnectMongo opens the document database. There is no fallback data
// source, so callers treat an error here as fatal.
func ConnectMongo(cfg config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client.Database(cfg.MongoDatabase), nil
}
