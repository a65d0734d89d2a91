package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/metrics"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
	"github.com/Pranshu-Chauhan/VidTube/pkg/media"
)

// VideoStore is the persistence surface the video service needs.
type VideoStore interface {
	ListView(ctx context.Context, filter repository.VideoFilter, page repository.PageParams) ([]model.VideoView, error)
	ViewByID(ctx context.Context, id primitive.ObjectID) (*model.VideoView, error)
	Insert(ctx context.Context, v *model.Video) (*model.Video, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, patch bson.D) (*model.Video, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Video, error)
	TogglePublishOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Video, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// MediaStorage is the remote object-storage collaborator.
type MediaStorage interface {
	Store(ctx context.Context, localPath string) (*media.Upload, error)
	Remove(ctx context.Context, publicID string) error
}

// DurationProbe reads a media file's duration in seconds.
type DurationProbe interface {
	Duration(localPath string) (float64, error)
}

type VideoService struct {
	store   VideoStore
	storage MediaStorage
	probe   DurationProbe
	cache   *CacheService
}

func NewVideoService(store VideoStore, storage MediaStorage, probe DurationProbe, cache *CacheService) *VideoService {
	return &VideoService{store: store, storage: storage, probe: probe, cache: cache}
}

// List returns the paginated, owner-joined video read view. Zero matches is
// an empty success list, not an error.
func (s *VideoService) List(ctx context.Context, filter repository.VideoFilter, page repository.PageParams) ([]model.VideoView, error) {
	return s.store.ListView(ctx, filter, page)
}

// Publish uploads the media files, probes the duration, and creates the
// video document. A failed upload fails the whole operation.
func (s *VideoService) Publish(ctx context.Context, owner primitive.ObjectID, req model.PublishVideoRequest) (*model.Video, error) {
	switch {
	case req.Title == "":
		return nil, apperror.InvalidInput("Title is required")
	case req.Description == "":
		return nil, apperror.InvalidInput("Description is required")
	case req.VideoFilePath == "":
		return nil, apperror.InvalidInput("Video file is required")
	case req.ThumbnailPath == "":
		return nil, apperror.InvalidInput("Thumbnail is required")
	}

	duration, err := s.probe.Duration(req.VideoFilePath)
	if err != nil {
		return nil, apperror.Persistence("Could not read video duration")
	}

	videoFile, err := s.storage.Store(ctx, req.VideoFilePath)
	if err != nil {
		return nil, apperror.Persistence("Error uploading video file")
	}

	thumbnail, err := s.storage.Store(ctx, req.ThumbnailPath)
	if err != nil {
		// The video object is already remote; clean it up so a failed
		// publish leaves nothing behind.
		if rmErr := s.storage.Remove(ctx, videoFile.PublicID); rmErr != nil {
			log.Printf("orphaned media object %s: %v", videoFile.PublicID, rmErr)
		}
		return nil, apperror.Persistence("Error uploading thumbnail")
	}

	video := &model.Video{
		VideoFile:   videoFile.URL,
		VideoFileID: videoFile.PublicID,
		Thumbnail:   thumbnail.URL,
		ThumbnailID: thumbnail.PublicID,
		Title:       req.Title,
		Description: req.Description,
		Duration:    duration,
		IsPublished: true,
		Owner:       owner,
	}
	return s.store.Insert(ctx, video)
}

// GetByID returns one video view with the owner joined, cache-aside.
func (s *VideoService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.VideoView, error) {
	if cached, err := s.cache.GetVideo(ctx, id.Hex()); err == nil && cached != nil {
		var view model.VideoView
		if err := json.Unmarshal(cached, &view); err == nil {
			metrics.ObserveCache(true)
			return &view, nil
		}
	}
	metrics.ObserveCache(false)

	view, err := s.store.ViewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetVideo(ctx, id.Hex(), view); err != nil {
		log.Printf("cache: set video: %v", err)
	}
	return view, nil
}

// UpdateMetadata patches title/description (and optionally a re-uploaded
// thumbnail) on a video the caller owns.
func (s *VideoService) UpdateMetadata(ctx context.Context, id, owner primitive.ObjectID, req model.UpdateVideoRequest) (*model.Video, error) {
	if req.Title == "" && req.Description == "" && req.ThumbnailPath == "" {
		return nil, apperror.InvalidInput("Nothing to update")
	}

	patch := bson.D{}
	if req.Title != "" {
		patch = append(patch, bson.E{Key: "title", Value: req.Title})
	}
	if req.Description != "" {
		patch = append(patch, bson.E{Key: "description", Value: req.Description})
	}
	if req.ThumbnailPath != "" {
		thumbnail, err := s.storage.Store(ctx, req.ThumbnailPath)
		if err != nil {
			return nil, apperror.Persistence("Error uploading thumbnail")
		}
		patch = append(patch,
			bson.E{Key: "thumbnail", Value: thumbnail.URL},
			bson.E{Key: "thumbnailId", Value: thumbnail.PublicID},
		)
	}

	updated, err := s.store.UpdateOwned(ctx, id, owner, patch)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}

	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes a video the caller owns, then best-effort deletes its media
// objects from storage.
func (s *VideoService) Delete(ctx context.Context, id, owner primitive.ObjectID) (*model.Video, error) {
	deleted, err := s.store.DeleteOwned(ctx, id, owner)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}

	for _, publicID := range []string{deleted.VideoFileID, deleted.ThumbnailID} {
		if publicID == "" {
			continue
		}
		if err := s.storage.Remove(ctx, publicID); err != nil {
			log.Printf("media delete %s: %v", publicID, err)
		}
	}

	s.invalidate(ctx, id)
	return deleted, nil
}

// TogglePublish flips the published flag on a video the caller owns.
func (s *VideoService) TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*model.Video, error) {
	updated, err := s.store.TogglePublishOwned(ctx, id, owner)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}

	s.invalidate(ctx, id)
	return updated, nil
}

// resolveOwnedErr distinguishes "absent" from "present but foreign-owned"
// after an owner-scoped mutation matched nothing. The mutation itself stays
// a single atomic operation; this is a read-only follow-up for the error
// message only.
func (s *VideoService) resolveOwnedErr(ctx context.Context, id primitive.ObjectID, err error) error {
	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	exists, existsErr := s.store.Exists(ctx, id)
	if existsErr == nil && exists {
		return apperror.Forbidden("You do not own this video")
	}
	return err
}

func (s *VideoService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := s.cache.InvalidateVideo(ctx, id.Hex()); err != nil {
		log.Printf("cache: invalidate video: %v", err)
	}
}
