package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

// PlaylistStore is the persistence surface the playlist service needs.
// AddVideoOwned must carry set semantics: adding an already-present video
// leaves exactly one occurrence.
type PlaylistStore interface {
	Insert(ctx context.Context, p *model.Playlist) (*model.Playlist, error)
	ViewByID(ctx context.Context, id primitive.ObjectID) (*model.PlaylistView, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Playlist, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*model.Playlist, error)
	AddVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error)
	RemoveVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Playlist, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type PlaylistService struct {
	store PlaylistStore
}

func NewPlaylistService(store PlaylistStore) *PlaylistService {
	return &PlaylistService{store: store}
}

// Create makes an empty playlist for the caller.
func (s *PlaylistService) Create(ctx context.Context, owner primitive.ObjectID, req model.PlaylistRequest) (*model.Playlist, error) {
	if req.Name == "" || req.Description == "" {
		return nil, apperror.InvalidInput("Name and description are required")
	}

	return s.store.Insert(ctx, &model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		Owner:       owner,
	})
}

// GetByID returns one playlist with its videos resolved.
func (s *PlaylistService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.PlaylistView, error) {
	return s.store.ViewByID(ctx, id)
}

// ListForUser returns a user's playlists. No playlists is an empty success
// list.
func (s *PlaylistService) ListForUser(ctx context.Context, owner primitive.ObjectID) ([]model.Playlist, error) {
	return s.store.ListByOwner(ctx, owner)
}

// Update renames a playlist the caller owns.
func (s *PlaylistService) Update(ctx context.Context, id, owner primitive.ObjectID, req model.PlaylistRequest) (*model.Playlist, error) {
	if req.Name == "" || req.Description == "" {
		return nil, apperror.InvalidInput("Name and description are required")
	}

	updated, err := s.store.UpdateOwned(ctx, id, owner, req.Name, req.Description)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return updated, nil
}

// AddVideo inserts a video reference; duplicates collapse to one occurrence.
func (s *PlaylistService) AddVideo(ctx context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error) {
	updated, err := s.store.AddVideoOwned(ctx, id, owner, videoID)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return updated, nil
}

// RemoveVideo drops a video reference from the playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error) {
	updated, err := s.store.RemoveVideoOwned(ctx, id, owner, videoID)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return updated, nil
}

// Delete removes a playlist the caller owns.
func (s *PlaylistService) Delete(ctx context.Context, id, owner primitive.ObjectID) (*model.Playlist, error) {
	deleted, err := s.store.DeleteOwned(ctx, id, owner)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return deleted, nil
}

func (s *PlaylistService) resolveOwnedErr(ctx context.Context, id primitive.ObjectID, err error) error {
	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	exists, existsErr := s.store.Exists(ctx, id)
	if existsErr == nil && exists {
		return apperror.Forbidden("You do not own this playlist")
	}
	return err
}
