package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/metrics"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
)

// SubscriptionStore is the persistence surface the subscription service needs.
type SubscriptionStore interface {
	RemoveIfExists(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error)
	AddIfAbsent(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error)
	ListSubscribers(ctx context.Context, channel primitive.ObjectID, page repository.PageParams) ([]model.SubscriptionView, error)
	ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, page repository.PageParams) ([]model.SubscriptionView, error)
}

type SubscriptionService struct {
	store SubscriptionStore
}

func NewSubscriptionService(store SubscriptionStore) *SubscriptionService {
	return &SubscriptionService{store: store}
}

// Toggle flips the subscriber → channel edge. Subscribing to your own
// channel is rejected before any database work, regardless of prior state.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (*model.ToggleResult, *model.Subscription, error) {
	if subscriber == channel {
		return nil, nil, apperror.Forbidden("You cannot subscribe to your own channel")
	}

	removed, err := s.store.RemoveIfExists(ctx, subscriber, channel)
	if err != nil {
		return nil, nil, err
	}
	if removed != nil {
		metrics.ObserveToggle("subscription", false)
		return &model.ToggleResult{Added: false}, removed, nil
	}

	added, err := s.store.AddIfAbsent(ctx, subscriber, channel)
	if err != nil {
		return nil, nil, err
	}
	metrics.ObserveToggle("subscription", true)
	return &model.ToggleResult{Added: true}, added, nil
}

// Subscribers lists a channel's subscribers with profiles joined.
func (s *SubscriptionService) Subscribers(ctx context.Context, channel primitive.ObjectID, page repository.PageParams) ([]model.SubscriptionView, error) {
	return s.store.ListSubscribers(ctx, channel, page)
}

// SubscribedChannels lists the channels the caller subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, page repository.PageParams) ([]model.SubscriptionView, error) {
	return s.store.ListSubscribedChannels(ctx, subscriber, page)
}
