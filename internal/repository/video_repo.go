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

type VideoRepo struct {
	coll *mongo.Collection
}

func NewVideoRepo(db *mongo.Database) *VideoRepo {
	return &VideoRepo{coll: db.Collection("videos")}
}

// videoViewProjection is the field set every video read view exposes.
var videoViewProjection = bson.D{
	{Key: "videoFile", Value: 1},
	{Key: "thumbnail", Value: 1},
	{Key: "title", Value: 1},
	{Key: "description", Value: 1},
	{Key: "duration", Value: 1},
	{Key: "views", Value: 1},
	{Key: "isPublished", Value: 1},
	{Key: "createdAt", Value: 1},
	{Key: "owner._id", Value: 1},
	{Key: "owner.name", Value: 1},
	{Key: "owner.email", Value: 1},
	{Key: "owner.avatar", Value: 1},
}

// VideoFilter narrows the video list view.
type VideoFilter struct {
	Query string              // title substring, case-insensitive
	Owner *primitive.ObjectID // restrict to one owner
}

// ListView returns the paginated video read view with owner profiles joined.
func (r *VideoRepo) ListView(ctx context.Context, filter VideoFilter, page PageParams) ([]model.VideoView, error) {
	match := bson.D{}
	if filter.Query != "" {
		match = append(match, TitleRegexFilter("title", filter.Query))
	}
	if filter.Owner != nil {
		match = append(match, bson.E{Key: "owner", Value: *filter.Owner})
	}

	pipeline := NewViewPipeline().
		Match(match).
		LookupOne("users", "owner", "owner").
		Project(videoViewProjection).
		Paginate(page).
		Build()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate videos: %w", err)
	}
	defer cursor.Close(ctx)

	views := []model.VideoView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode video views: %w", err)
	}
	return views, nil
}

// ViewByID returns a single video with its owner profile joined.
func (r *VideoRepo) ViewByID(ctx context.Context, id primitive.ObjectID) (*model.VideoView, error) {
	pipeline := NewViewPipeline().
		Match(bson.D{{Key: "_id", Value: id}}).
		LookupOne("users", "owner", "owner").
		Project(videoViewProjection).
		Build()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate video: %w", err)
	}
	defer cursor.Close(ctx)

	var views []model.VideoView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode video view: %w", err)
	}
	if len(views) == 0 {
		return nil, apperror.NotFound("Video not found")
	}
	return &views[0], nil
}

// Insert persists a new video document and returns it with its ID set.
func (r *VideoRepo) Insert(ctx context.Context, v *model.Video) (*model.Video, error) {
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, apperror.Persistence("video insert returned no ID")
	}
	v.ID = id
	return v, nil
}

// UpdateOwned applies a $set patch to a video the owner holds. The owner is
// part of the update filter, so the check and the mutation are one atomic
// operation. Zero matches surface as ErrNotFound; the caller decides whether
// that means absent or foreign-owned.
func (r *VideoRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, patch bson.D) (*model.Video, error) {
	patch = append(patch, bson.E{Key: "updatedAt", Value: time.Now().UTC()})

	var updated model.Video
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
		bson.D{{Key: "$set", Value: patch}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Video not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}
	return &updated, nil
}

// DeleteOwned removes a video owned by the caller and returns the deleted doc.
func (r *VideoRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Video, error) {
	var deleted model.Video
	err := r.coll.FindOneAndDelete(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
	).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Video not found")
	}
	if err != nil {
		return nil, fmt.Errorf("delete video: %w", err)
	}
	return &deleted, nil
}

// TogglePublishOwned flips isPublished in a single owner-scoped document
// update, using an aggregation-pipeline update so the flip is atomic.
func (r *VideoRepo) TogglePublishOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Video, error) {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: "$isPublished"}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}

	var updated model.Video
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Video not found")
	}
	if err != nil {
		return nil, fmt.Errorf("toggle publish: %w", err)
	}
	return &updated, nil
}

// Exists reports whether a video document with the given ID is present.
func (r *VideoRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count video: %w", err)
	}
	return n > 0, nil
}

// ListByOwner returns an owner's videos sorted newest first (channel tab).
func (r *VideoRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Video, error) {
	cursor, err := r.coll.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find videos: %w", err)
	}
	defer cursor.Close(ctx)

	videos := []model.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	return videos, nil
}

// CountByOwner returns the number of videos an owner has published.
func (r *VideoRepo) CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "owner", Value: owner}})
	if err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return n, nil
}

// IDsByOwner returns the IDs of every video an owner holds.
func (r *VideoRepo) IDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids, err := r.coll.Distinct(ctx, "_id", bson.D{{Key: "owner", Value: owner}})
	if err != nil {
		return nil, fmt.Errorf("distinct video ids: %w", err)
	}
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, v := range ids {
		if id, ok := v.(primitive.ObjectID); ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// SumViewsByOwner totals the view counters across an owner's videos.
func (r *VideoRepo) SumViewsByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum views: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode view sum: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalViews, nil
}
