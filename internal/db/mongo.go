package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	maxRetries    = 5
	retryInterval = 2 * time.Second
)

// Connect establishes a MongoDB client and verifies connectivity with a ping,
// retrying a few times so the API survives a database that is still starting.
func Connect(ctx context.Context, mongoURL string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(10).
		SetMinPoolSize(2).
		SetMaxConnIdleTime(30 * time.Minute)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		var client *mongo.Client
		client, err = mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			pingErr := client.Ping(pingCtx, nil)
			cancel()
			if pingErr == nil {
				log.Println("database connected")
				return client, nil
			}
			_ = client.Disconnect(ctx)
			err = pingErr
		}

		log.Printf("database connection attempt %d/%d failed: %v", attempt, maxRetries, err)
		if attempt < maxRetries {
			time.Sleep(retryInterval)
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxRetries, err)
}

// EnsureIndexes creates the indexes the API relies on. The unique partial
// indexes on likes and the unique compound index on subscriptions back the
// at-most-one-edge invariant that toggle operations depend on.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	likeIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "video", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}}}),
		},
		{
			Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "comment", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "comment", Value: bson.D{{Key: "$exists", Value: true}}}}),
		},
		{
			Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "tweet", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "tweet", Value: bson.D{{Key: "$exists", Value: true}}}}),
		},
	}
	if _, err := database.Collection("likes").Indexes().CreateMany(ctx, likeIndexes); err != nil {
		return fmt.Errorf("create like indexes: %w", err)
	}

	subIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
		Options: unique,
	}
	if _, err := database.Collection("subscriptions").Indexes().CreateOne(ctx, subIndex); err != nil {
		return fmt.Errorf("create subscription index: %w", err)
	}

	ownerIndexes := map[string]bson.D{
		"videos":    {{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
		"comments":  {{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}},
		"tweets":    {{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
		"playlists": {{Key: "owner", Value: 1}},
	}
	for coll, keys := range ownerIndexes {
		if _, err := database.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return fmt.Errorf("create %s index: %w", coll, err)
		}
	}

	return nil
}
