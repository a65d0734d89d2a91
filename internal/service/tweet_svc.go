package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

// TweetStore is the persistence surface the tweet service needs.
type TweetStore interface {
	Insert(ctx context.Context, t *model.Tweet) (*model.Tweet, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Tweet, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*model.Tweet, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Tweet, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type TweetService struct {
	store TweetStore
}

func NewTweetService(store TweetStore) *TweetService {
	return &TweetService{store: store}
}

// Create posts a tweet for the caller.
func (s *TweetService) Create(ctx context.Context, owner primitive.ObjectID, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, apperror.InvalidInput("Content is required")
	}

	return s.store.Insert(ctx, &model.Tweet{
		Content: content,
		Owner:   owner,
	})
}

// ListForUser returns a user's tweets, newest first.
func (s *TweetService) ListForUser(ctx context.Context, owner primitive.ObjectID) ([]model.Tweet, error) {
	return s.store.ListByOwner(ctx, owner)
}

// Update rewrites a tweet's content; only the owner may do so.
func (s *TweetService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, apperror.InvalidInput("Content is required")
	}

	updated, err := s.store.UpdateOwned(ctx, id, owner, content)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return updated, nil
}

// Delete removes a tweet; only the owner may do so.
func (s *TweetService) Delete(ctx context.Context, id, owner primitive.ObjectID) (*model.Tweet, error) {
	deleted, err := s.store.DeleteOwned(ctx, id, owner)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return deleted, nil
}

func (s *TweetService) resolveOwnedErr(ctx context.Context, id primitive.ObjectID, err error) error {
	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	exists, existsErr := s.store.Exists(ctx, id)
	if existsErr == nil && exists {
		return apperror.Forbidden("You do not own this tweet")
	}
	return err
}
