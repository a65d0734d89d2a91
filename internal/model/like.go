package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeKind tags which target field a like record carries.
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

// Field returns the document field name holding the target reference.
func (k LikeKind) Field() string { return string(k) }

// Like is a presence/absence edge between an actor and exactly one target.
// At most one like may exist per (likedBy, target) pair; the unique partial
// indexes created at startup enforce this.
type Like struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
}

// ToggleResult reports the outcome of a like or subscription toggle.
type ToggleResult struct {
	Added bool `json:"added"`
}

// LikedItem is the read view of a like edge with its target resolved.
// Exactly one of Video, Comment, or Tweet is populated.
type LikedItem struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Video     *VideoSummary      `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *Comment           `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *Tweet             `json:"tweet,omitempty" bson:"tweet,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
