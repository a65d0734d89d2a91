package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is a published piece of media owned by a user.
type Video struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VideoFile         string             `json:"videoFile" bson:"videoFile"`
	VideoFileID       string             `json:"-" bson:"videoFileId"`
	Thumbnail         string             `json:"thumbnail" bson:"thumbnail"`
	ThumbnailID       string             `json:"-" bson:"thumbnailId"`
	Title             string             `json:"title" bson:"title"`
	Description       string             `json:"description" bson:"description"`
	Duration          float64            `json:"duration" bson:"duration"`
	Views             int64              `json:"views" bson:"views"`
	IsPublished       bool               `json:"isPublished" bson:"isPublished"`
	Owner             primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// VideoView is the denormalized read view with the owner profile embedded.
type VideoView struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       *OwnerProfile      `json:"owner" bson:"owner"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// PublishVideoRequest is the API request body for publishing a video.
// File paths point at already-received local uploads; the media storage
// collaborator moves them to object storage.
type PublishVideoRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	VideoFilePath string `json:"videoFilePath"`
	ThumbnailPath string `json:"thumbnailPath"`
}

// UpdateVideoRequest is the API request body for metadata updates.
type UpdateVideoRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ThumbnailPath string `json:"thumbnailPath,omitempty"`
}
