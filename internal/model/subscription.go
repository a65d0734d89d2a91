package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription is a subscriber → channel edge between two users.
// subscriber ≠ channel; at most one edge per pair (unique compound index).
type Subscription struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// SubscriptionView resolves the far end of the edge to a user profile.
// Exactly one of Subscriber or Channel is populated depending on the query.
type SubscriptionView struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Subscriber *OwnerProfile      `json:"subscriber,omitempty" bson:"subscriber,omitempty"`
	Channel    *OwnerProfile      `json:"channel,omitempty" bson:"channel,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
