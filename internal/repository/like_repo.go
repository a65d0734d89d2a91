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

type LikeRepo struct {
	coll *mongo.Collection
}

func NewLikeRepo(db *mongo.Database) *LikeRepo {
	return &LikeRepo{coll: db.Collection("likes")}
}

func likeKey(kind model.LikeKind, target, user primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "likedBy", Value: user},
		{Key: kind.Field(), Value: target},
	}
}

// RemoveIfExists deletes the (actor, target) like edge if present. A nil
// result with nil error means there was no edge to remove, which is a normal
// toggle outcome rather than a failure.
func (r *LikeRepo) RemoveIfExists(ctx context.Context, kind model.LikeKind, target, user primitive.ObjectID) (*model.Like, error) {
	var removed model.Like
	err := r.coll.FindOneAndDelete(ctx, likeKey(kind, target, user)).Decode(&removed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete like: %w", err)
	}
	return &removed, nil
}

// AddIfAbsent inserts the (actor, target) like edge with an atomic upsert.
// A concurrent insert on the same key collapses into the same single edge:
// the unique partial index plus $setOnInsert make the operation idempotent.
func (r *LikeRepo) AddIfAbsent(ctx context.Context, kind model.LikeKind, target, user primitive.ObjectID) (*model.Like, error) {
	key := likeKey(kind, target, user)

	_, err := r.coll.UpdateOne(ctx, key,
		bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: time.Now().UTC()}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert like: %w", err)
	}

	var like model.Like
	if err := r.coll.FindOne(ctx, key).Decode(&like); err != nil {
		return nil, fmt.Errorf("read like after upsert: %w", err)
	}
	return &like, nil
}

// ListByUser returns the actor's like edges of one kind with the target
// resolved via a lookup, newest first.
func (r *LikeRepo) ListByUser(ctx context.Context, user primitive.ObjectID, kind model.LikeKind, page PageParams) ([]model.LikedItem, error) {
	field := kind.Field()

	project := bson.D{{Key: "createdAt", Value: 1}}
	switch kind {
	case model.LikeVideo:
		project = append(project,
			bson.E{Key: "video._id", Value: 1},
			bson.E{Key: "video.title", Value: 1},
			bson.E{Key: "video.thumbnail", Value: 1},
		)
	default:
		project = append(project, bson.E{Key: field, Value: 1})
	}

	pipeline := NewViewPipeline().
		Match(bson.D{
			{Key: "likedBy", Value: user},
			{Key: field, Value: bson.D{{Key: "$exists", Value: true}}},
		}).
		LookupOne(field+"s", field, field).
		Project(project).
		Paginate(page).
		Build()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate likes: %w", err)
	}
	defer cursor.Close(ctx)

	items := []model.LikedItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode liked items: %w", err)
	}
	return items, nil
}

// CountByTargets counts like edges of one kind whose target is in the set.
// Dashboard uses this for the owned-IDs-then-count pattern.
func (r *LikeRepo) CountByTargets(ctx context.Context, kind model.LikeKind, targets []primitive.ObjectID) (int64, error) {
	if len(targets) == 0 {
		return 0, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.D{
		{Key: kind.Field(), Value: bson.D{{Key: "$in", Value: targets}}},
	})
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}
