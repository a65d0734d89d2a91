package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a user comment on a video.
type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`
	Video     primitive.ObjectID `json:"video" bson:"video"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CommentView embeds the comment owner's profile and the target video summary.
type CommentView struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Content   string             `json:"content" bson:"content"`
	Owner     *OwnerProfile      `json:"owner" bson:"owner"`
	Video     *VideoSummary      `json:"video" bson:"video"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// VideoSummary is the slim video sub-document embedded in read views.
type VideoSummary struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Thumbnail string             `json:"thumbnail" bson:"thumbnail"`
}
