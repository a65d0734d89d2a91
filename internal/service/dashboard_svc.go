package service

import (
	"context"
	"encoding/json"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/Pranshu-Chauhan/VidTube/internal/metrics"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

// DashboardSources are the per-collection reads the dashboard fans out to.
// Every failure propagates; a broken sub-metric must never be reported as a
// genuine zero.
type DashboardSources interface {
	CountVideosByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
	SumViewsByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
	VideoIDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error)
	TweetIDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error)
	CommentIDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error)
	CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error)
	CountLikesByTargets(ctx context.Context, kind model.LikeKind, targets []primitive.ObjectID) (int64, error)
	VideosByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Video, error)
}

type DashboardService struct {
	src   DashboardSources
	cache *CacheService
}

func NewDashboardService(src DashboardSources, cache *CacheService) *DashboardService {
	return &DashboardService{src: src, cache: cache}
}

// Stats computes channel-level statistics with one independent read per
// sub-metric, fanned out concurrently. Any sub-metric failure fails the
// whole request.
func (s *DashboardService) Stats(ctx context.Context, owner primitive.ObjectID) (*model.DashboardStats, error) {
	if cached, err := s.cache.GetDashboard(ctx, owner.Hex()); err == nil && cached != nil {
		var stats model.DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			metrics.ObserveCache(true)
			return &stats, nil
		}
	}
	metrics.ObserveCache(false)

	var stats model.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.src.CountVideosByOwner(gctx, owner)
		stats.TotalVideos = n
		return err
	})
	g.Go(func() error {
		n, err := s.src.CountSubscribers(gctx, owner)
		stats.TotalSubscribers = n
		return err
	})
	g.Go(func() error {
		n, err := s.src.SumViewsByOwner(gctx, owner)
		stats.TotalViews = n
		return err
	})
	g.Go(func() error {
		ids, err := s.src.VideoIDsByOwner(gctx, owner)
		if err != nil {
			return err
		}
		n, err := s.src.CountLikesByTargets(gctx, model.LikeVideo, ids)
		stats.TotalVideoLikes = n
		return err
	})
	g.Go(func() error {
		ids, err := s.src.TweetIDsByOwner(gctx, owner)
		if err != nil {
			return err
		}
		n, err := s.src.CountLikesByTargets(gctx, model.LikeTweet, ids)
		stats.TotalTweetLikes = n
		return err
	})
	g.Go(func() error {
		ids, err := s.src.CommentIDsByOwner(gctx, owner)
		if err != nil {
			return err
		}
		n, err := s.src.CountLikesByTargets(gctx, model.LikeComment, ids)
		stats.TotalCommentLikes = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.cache.SetDashboard(ctx, owner.Hex(), &stats); err != nil {
		log.Printf("cache: set dashboard: %v", err)
	}
	return &stats, nil
}

// ChannelVideos returns the owner's videos, newest first.
func (s *DashboardService) ChannelVideos(ctx context.Context, owner primitive.ObjectID) ([]model.Video, error) {
	return s.src.VideosByOwner(ctx, owner)
}
