package favorite

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoritePhoto is a favorites-list entry with the owning photo resolved.
type FavoritePhoto struct {
	PhotoID  string             `json:"photo_id"`
	OwnerID  primitive.ObjectID `json:"owner_id"`
	FileName string             `json:"file_name"`
	DateTime time.Time          `json:"date_time"`
}

// PhotoSummary is the slice of a photo record favorites care about.
type PhotoSummary struct {
	OwnerID  primitive.ObjectID `bson:"user_id"`
	FileName string             `bson:"file_name"`
	DateTime time.Time          `bson:"date_time"`
}

type PhotoRequest struct {
	PhotoID string `json:"photoId"`
}

type CheckRequest struct {
	PhotoIDArr []string `json:"photosIdArr"`
}
