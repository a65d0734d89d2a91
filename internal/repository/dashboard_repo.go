package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

// DashboardRepo fans dashboard reads out over the entity repositories. Each
// method maps to exactly one underlying query so sub-metrics stay
// independent.
type DashboardRepo struct {
	videos        *VideoRepo
	tweets        *TweetRepo
	comments      *CommentRepo
	subscriptions *SubscriptionRepo
	likes         *LikeRepo
}

func NewDashboardRepo(videos *VideoRepo, tweets *TweetRepo, comments *CommentRepo, subscriptions *SubscriptionRepo, likes *LikeRepo) *DashboardRepo {
	return &DashboardRepo{
		videos:        videos,
		tweets:        tweets,
		comments:      comments,
		subscriptions: subscriptions,
		likes:         likes,
	}
}

func (d *DashboardRepo) CountVideosByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	return d.videos.CountByOwner(ctx, owner)
}

func (d *DashboardRepo) SumViewsByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	return d.videos.SumViewsByOwner(ctx, owner)
}

func (d *DashboardRepo) VideoIDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	return d.videos.IDsByOwner(ctx, owner)
}

func (d *DashboardRepo) TweetIDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	return d.tweets.IDsByOwner(ctx, owner)
}

func (d *DashboardRepo) CommentIDsByOwner(ctx context.Context, owner primitive.ObjectID) ([]primitive.ObjectID, error) {
	return d.comments.IDsByOwner(ctx, owner)
}

func (d *DashboardRepo) CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	return d.subscriptions.CountByChannel(ctx, channel)
}

func (d *DashboardRepo) CountLikesByTargets(ctx context.Context, kind model.LikeKind, targets []primitive.ObjectID) (int64, error) {
	return d.likes.CountByTargets(ctx, kind, targets)
}

func (d *DashboardRepo) VideosByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Video, error) {
	return d.videos.ListByOwner(ctx, owner)
}
