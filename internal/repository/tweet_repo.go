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

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

type TweetRepo struct {
	coll *mongo.Collection
}

func NewTweetRepo(db *mongo.Database) *TweetRepo {
	return &TweetRepo{coll: db.Collection("tweets")}
}

// Insert persists a new tweet and returns it with its ID set.
func (r *TweetRepo) Insert(ctx context.Context, t *model.Tweet) (*model.Tweet, error) {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("insert tweet: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, apperror.Persistence("tweet insert returned no ID")
	}
	t.ID = id
	return t, nil
}

// ListByOwner returns a user's tweets, newest first.
func (r *TweetRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Tweet, error) {
	cursor, err := r.coll.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find tweets: %w", err)
	}
	defer cursor.Close(ctx)

	tweets := []model.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("decode tweets: %w", err)
	}
	return tweets, nil
}

// UpdateOwned rewrites the content of a tweet the caller owns in one
// owner-filtered operation.
func (r *TweetRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*model.Tweet, error) {
	var updated model.Tweet
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Tweet not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update tweet: %w", err)
	}
	return &updated, nil
}

// DeleteOwned removes a tweet the caller owns and returns the deleted doc.
func (r *TweetRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Tweet, error) {
	var deleted model.Tweet
	err := r.coll.FindOneAndDelete(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
	).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Tweet not found")
	}
	if err != nil {
		return nil, fmt.Errorf("delete tweet: %w", err)
	}
	return &deleted, nil
}

// Exists reports whether a tweet with the given ID is present.
func (r *TweetRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count tweet: %w", err)
	}
	return n > 0, nil
}

// IDsByOwner returns the IDs of every tweet an owner has posted.
func (r *TweetRepo) IDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids, err := r.coll.Distinct(ctx, "_id", bson.D{{Key: "owner", Value: owner}})
	if err != nil {
		return nil, fmt.Errorf("distinct tweet ids: %w", err)
	}
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, v := range ids {
		if id, ok := v.(primitive.ObjectID); ok {
			out = append(out, id)
		}
	}
	return out, nil
}
