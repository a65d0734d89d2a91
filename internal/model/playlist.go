package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist is an ordered, duplicate-free set of video references.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistView embeds the resolved video summaries for display.
type PlaylistView struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	Videos      []VideoSummary     `json:"videos" bson:"videos"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// PlaylistRequest is the API request body for creating or updating a playlist.
type PlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
