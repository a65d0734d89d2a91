package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
)

// CommentStore is the persistence surface the comment service needs.
type CommentStore interface {
	ListForVideo(ctx context.Context, videoID primitive.ObjectID, page repository.PageParams) ([]model.CommentView, error)
	Insert(ctx context.Context, c *model.Comment) (*model.Comment, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*model.Comment, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*model.Comment, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type CommentService struct {
	store CommentStore
}

func NewCommentService(store CommentStore) *CommentService {
	return &CommentService{store: store}
}

// ListForVideo returns the paginated comment view for a video. A video with
// no comments yields an empty success list.
func (s *CommentService) ListForVideo(ctx context.Context, videoID primitive.ObjectID, page repository.PageParams) ([]model.CommentView, error) {
	return s.store.ListForVideo(ctx, videoID, page)
}

// Add creates a comment on a video for the authenticated caller.
func (s *CommentService) Add(ctx context.Context, videoID, owner primitive.ObjectID, content string) (*model.Comment, error) {
	if content == "" {
		return nil, apperror.InvalidInput("Comment content is required")
	}

	return s.store.Insert(ctx, &model.Comment{
		Content: content,
		Owner:   owner,
		Video:   videoID,
	})
}

// Update rewrites a comment's content; only the owner may do so.
func (s *CommentService) Update(ctx context.Context, id, owner primitive.ObjectID, content string) (*model.Comment, error) {
	if content == "" {
		return nil, apperror.InvalidInput("Comment content is required")
	}

	updated, err := s.store.UpdateOwned(ctx, id, owner, content)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return updated, nil
}

// Delete removes a comment; only the owner may do so.
func (s *CommentService) Delete(ctx context.Context, id, owner primitive.ObjectID) (*model.Comment, error) {
	deleted, err := s.store.DeleteOwned(ctx, id, owner)
	if err != nil {
		return nil, s.resolveOwnedErr(ctx, id, err)
	}
	return deleted, nil
}

func (s *CommentService) resolveOwnedErr(ctx context.Context, id primitive.ObjectID, err error) error {
	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	exists, existsErr := s.store.Exists(ctx, id)
	if existsErr == nil && exists {
		return apperror.Forbidden("You do not own this comment")
	}
	return err
}
