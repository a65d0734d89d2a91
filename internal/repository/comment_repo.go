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

type CommentRepo struct {
	coll *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) *CommentRepo {
	return &CommentRepo{coll: db.Collection("comments")}
}

// ListForVideo returns the paginated comment read view for one video, with
// the comment owner's profile and the target video summary joined in.
func (r *CommentRepo) ListForVideo(ctx context.Context, videoID primitive.ObjectID, page PageParams) ([]model.CommentView, error) {
	pipeline := NewViewPipeline().
		Match(bson.D{{Key: "video", Value: videoID}}).
		LookupOne("users", "owner", "owner").
		LookupOne("videos", "video", "video").
		Project(bson.D{
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "owner._id", Value: 1},
			{Key: "owner.name", Value: 1},
			{Key: "owner.email", Value: 1},
			{Key: "owner.avatar", Value: 1},
			{Key: "video._id", Value: 1},
			{Key: "video.title", Value: 1},
			{Key: "video.thumbnail", Value: 1},
		}).
		Paginate(page).
		Build()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate comments: %w", err)
	}
	defer cursor.Close(ctx)

	views := []model.CommentView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode comment views: %w", err)
	}
	return views, nil
}

// Insert persists a new comment and returns it with its ID set.
func (r *CommentRepo) Insert(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, apperror.Persistence("comment insert returned no ID")
	}
	c.ID = id
	return c, nil
}

// UpdateOwned rewrites the content of a comment the caller owns. Owner is
// part of the filter, making the check and mutation a single operation.
func (r *CommentRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*model.Comment, error) {
	var updated model.Comment
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Comment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &updated, nil
}

// DeleteOwned removes a comment the caller owns and returns the deleted doc.
func (r *CommentRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Comment, error) {
	var deleted model.Comment
	err := r.coll.FindOneAndDelete(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
	).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Comment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	return &deleted, nil
}

// Exists reports whether a comment with the given ID is present.
func (r *CommentRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count comment: %w", err)
	}
	return n > 0, nil
}

// IDsByOwner returns the IDs of every comment an owner has written.
func (r *CommentRepo) IDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	ids, err := r.coll.Distinct(ctx, "_id", bson.D{{Key: "owner", Value: owner}})
	if err != nil {
		return nil, fmt.Errorf("distinct comment ids: %w", err)
	}
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, v := range ids {
		if id, ok := v.(primitive.ObjectID); ok {
			out = append(out, id)
		}
	}
	return out, nil
}
