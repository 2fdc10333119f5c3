package health

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SchemaInfo is the single metadata record used as a connectivity probe.
type SchemaInfo struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Version      string             `bson:"version" json:"version"`
	LoadDateTime time.Time          `bson:"load_date_time" json:"load_date_time"`
}

// Counts reports collection sizes, keyed the way the frontend expects.
type Counts struct {
	User       int64 `json:"user"`
	Photo      int64 `json:"photo"`
	SchemaInfo int64 `json:"schemaInfo"`
}
