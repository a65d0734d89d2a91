package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account identity referenced by owner and actor fields.
// This API reads users for join-style lookups but never mutates them.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Avatar    string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// OwnerProfile is the slim owner sub-document embedded in read views.
type OwnerProfile struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Name   string             `json:"name" bson:"name"`
	Email  string             `json:"email" bson:"email"`
	Avatar string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
}
