package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

type SubscriptionRepo struct {
	coll *mongo.Collection
}

func NewSubscriptionRepo(db *mongo.Database) *SubscriptionRepo {
	return &SubscriptionRepo{coll: db.Collection("subscriptions")}
}

func subscriptionKey(subscriber, channel primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	}
}

// RemoveIfExists deletes the subscription edge if present; nil/nil means the
// edge was absent.
func (r *SubscriptionRepo) RemoveIfExists(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error) {
	var removed model.Subscription
	err := r.coll.FindOneAndDelete(ctx, subscriptionKey(subscriber, channel)).Decode(&removed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete subscription: %w", err)
	}
	return &removed, nil
}

// AddIfAbsent inserts the subscription edge with an atomic upsert keyed on
// the unique (subscriber, channel) index.
func (r *SubscriptionRepo) AddIfAbsent(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error) {
	key := subscriptionKey(subscriber, channel)

	_, err := r.coll.UpdateOne(ctx, key,
		bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: time.Now().UTC()}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}

	var sub model.Subscription
	if err := r.coll.FindOne(ctx, key).Decode(&sub); err != nil {
		return nil, fmt.Errorf("read subscription after upsert: %w", err)
	}
	return &sub, nil
}

// ListSubscribers returns a channel's subscriber edges with the subscriber
// profile joined, newest first.
func (r *SubscriptionRepo) ListSubscribers(ctx context.Context, channel primitive.ObjectID, page PageParams) ([]model.SubscriptionView, error) {
	return r.listView(ctx, bson.D{{Key: "channel", Value: channel}}, "subscriber", page)
}

// ListSubscribedChannels returns the channels a user subscribes to with the
// channel profile joined, newest first.
func (r *SubscriptionRepo) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, page PageParams) ([]model.SubscriptionView, error) {
	return r.listView(ctx, bson.D{{Key: "subscriber", Value: subscriber}}, "channel", page)
}

func (r *SubscriptionRepo) listView(ctx context.Context, match bson.D, resolve string, page PageParams) ([]model.SubscriptionView, error) {
	pipeline := NewViewPipeline().
		Match(match).
		LookupOne("users", resolve, resolve).
		Project(bson.D{
			{Key: "createdAt", Value: 1},
			{Key: resolve + "._id", Value: 1},
			{Key: resolve + ".name", Value: 1},
			{Key: resolve + ".email", Value: 1},
			{Key: resolve + ".avatar", Value: 1},
		}).
		Paginate(page).
		Build()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	views := []model.SubscriptionView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode subscription views: %w", err)
	}
	return views, nil
}

// CountByChannel returns the number of subscribers a channel has.
func (r *SubscriptionRepo) CountByChannel(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "channel", Value: channel}})
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}
