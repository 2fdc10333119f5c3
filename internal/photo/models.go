package photo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Comment  string             `bson:"comment"`
	DateTime time.Time          `bson:"date_time"`
	UserID   primitive.ObjectID `bson:"user_id"`
}

type Photo struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	FileName string             `bson:"file_name"`
	DateTime time.Time          `bson:"date_time"`
	UserID   primitive.ObjectID `bson:"user_id"`
	Comments []Comment          `bson:"comments"`
	Mentions []string           `bson:"mentions"`
}

// Author is the display projection of a comment's or photo's user.
type Author struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
}

// CommentView replaces the raw author id with the resolved author.
type CommentView struct {
	ID       primitive.ObjectID `json:"_id"`
	Comment  string             `json:"comment"`
	DateTime time.Time          `json:"date_time"`
	User     Author             `json:"user"`
}

type View struct {
	ID       primitive.ObjectID `json:"_id"`
	UserID   primitive.ObjectID `json:"user_id"`
	Comments []CommentView      `json:"comments"`
	FileName string             `json:"file_name"`
	DateTime time.Time          `json:"date_time"`
}

// MentionedPhoto lists a photo a user is tagged in, with the owner's
// display name resolved.
type MentionedPhoto struct {
	FileName  string             `json:"file_name"`
	OwnerID   primitive.ObjectID `json:"owner_id"`
	OwnerName string             `json:"owner_name"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

type MentionsRequest struct {
	PhotoID   string   `json:"photoId"`
	UserIDArr []string `json:"user_id_arr"`
}
