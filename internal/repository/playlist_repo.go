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

type PlaylistRepo struct {
	coll *mongo.Collection
}

func NewPlaylistRepo(db *mongo.Database) *PlaylistRepo {
	return &PlaylistRepo{coll: db.Collection("playlists")}
}

// Insert persists a new playlist with an empty video set.
func (r *PlaylistRepo) Insert(ctx context.Context, p *model.Playlist) (*model.Playlist, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}

	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert playlist: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, apperror.Persistence("playlist insert returned no ID")
	}
	p.ID = id
	return p, nil
}

// ViewByID returns a playlist with its videos resolved to summaries.
func (r *PlaylistRepo) ViewByID(ctx context.Context, id primitive.ObjectID) (*model.PlaylistView, error) {
	pipeline := NewViewPipeline().
		Match(bson.D{{Key: "_id", Value: id}}).
		LookupMany("videos", "videos", "videos").
		Project(bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "videos._id", Value: 1},
			{Key: "videos.title", Value: 1},
			{Key: "videos.thumbnail", Value: 1},
		}).
		Build()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate playlist: %w", err)
	}
	defer cursor.Close(ctx)

	var views []model.PlaylistView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode playlist view: %w", err)
	}
	if len(views) == 0 {
		return nil, apperror.NotFound("Playlist not found")
	}
	return &views[0], nil
}

// ListByOwner returns a user's playlists, newest first.
func (r *PlaylistRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Playlist, error) {
	cursor, err := r.coll.Find(ctx,
		bson.D{{Key: "owner", Value: owner}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find playlists: %w", err)
	}
	defer cursor.Close(ctx)

	playlists := []model.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("decode playlists: %w", err)
	}
	return playlists, nil
}

// UpdateOwned renames a playlist the caller owns.
func (r *PlaylistRepo) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*model.Playlist, error) {
	return r.findOneAndUpdateOwned(ctx, id, owner, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "description", Value: description},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

// AddVideoOwned adds a video reference with $addToSet, so adding the same
// video twice leaves exactly one occurrence.
func (r *PlaylistRepo) AddVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error) {
	return r.findOneAndUpdateOwned(ctx, id, owner, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

// RemoveVideoOwned removes a video reference with $pull.
func (r *PlaylistRepo) RemoveVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error) {
	return r.findOneAndUpdateOwned(ctx, id, owner, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepo) findOneAndUpdateOwned(ctx context.Context, id, owner primitive.ObjectID, update bson.D) (*model.Playlist, error) {
	var updated model.Playlist
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Playlist not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	return &updated, nil
}

// DeleteOwned removes a playlist the caller owns and returns the deleted doc.
func (r *PlaylistRepo) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Playlist, error) {
	var deleted model.Playlist
	err := r.coll.FindOneAndDelete(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}},
	).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Playlist not found")
	}
	if err != nil {
		return nil, fmt.Errorf("delete playlist: %w", err)
	}
	return &deleted, nil
}

// Exists reports whether a playlist with the given ID is present.
func (r *PlaylistRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count playlist: %w", err)
	}
	return n > 0, nil
}
