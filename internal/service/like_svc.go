package service

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/metrics"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
)

// LikeStore is the persistence surface the like service needs. Both edge
// operations are single atomic database operations, so two concurrent
// toggles on the same (actor, target) pair cannot create a duplicate edge
// or delete one twice.
type LikeStore interface {
	RemoveIfExists(ctx context.Context, kind model.LikeKind, target, user primitive.ObjectID) (*model.Like, error)
	AddIfAbsent(ctx context.Context, kind model.LikeKind, target, user primitive.ObjectID) (*model.Like, error)
	ListByUser(ctx context.Context, user primitive.ObjectID, kind model.LikeKind, page repository.PageParams) ([]model.LikedItem, error)
}

type LikeService struct {
	store LikeStore
	cache *CacheService
}

func NewLikeService(store LikeStore, cache *CacheService) *LikeService {
	return &LikeService{store: store, cache: cache}
}

// Toggle flips the like edge for (user, target): delete-if-exists, else
// upsert. Applying it twice in sequence restores the original state.
func (s *LikeService) Toggle(ctx context.Context, kind model.LikeKind, target, user primitive.ObjectID) (*model.ToggleResult, *model.Like, error) {
	removed, err := s.store.RemoveIfExists(ctx, kind, target, user)
	if err != nil {
		return nil, nil, err
	}
	if removed != nil {
		metrics.ObserveToggle("like_"+string(kind), false)
		s.invalidateVideo(ctx, kind, target)
		return &model.ToggleResult{Added: false}, removed, nil
	}

	added, err := s.store.AddIfAbsent(ctx, kind, target, user)
	if err != nil {
		return nil, nil, err
	}
	metrics.ObserveToggle("like_"+string(kind), true)
	s.invalidateVideo(ctx, kind, target)
	return &model.ToggleResult{Added: true}, added, nil
}

// Liked lists the caller's like edges of one kind with targets resolved.
func (s *LikeService) Liked(ctx context.Context, user primitive.ObjectID, kind model.LikeKind, page repository.PageParams) ([]model.LikedItem, error) {
	return s.store.ListByUser(ctx, user, kind, page)
}

func (s *LikeService) invalidateVideo(ctx context.Context, kind model.LikeKind, target primitive.ObjectID) {
	if kind != model.LikeVideo || s.cache == nil {
		return
	}
	if err := s.cache.InvalidateVideo(ctx, target.Hex()); err != nil {
		log.Printf("cache: invalidate video: %v", err)
	}
}
