package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
)

// fakeCommentStore holds comments by id and mimics the owner-scoped
// mutation contract: no match yields ErrNotFound regardless of cause.
type fakeCommentStore struct {
	comments map[primitive.ObjectID]*model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[primitive.ObjectID]*model.Comment)}
}

func (f *fakeCommentStore) ListForVideo(_ context.Context, videoID primitive.ObjectID, _ repository.PageParams) ([]model.CommentView, error) {
	var out []model.CommentView
	for _, c := range f.comments {
		if c.Video == videoID {
			out = append(out, model.CommentView{ID: c.ID, Content: c.Content})
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Insert(_ context.Context, c *model.Comment) (*model.Comment, error) {
	c.ID = primitive.NewObjectID()
	f.comments[c.ID] = c
	return c, nil
}

func (f *fakeCommentStore) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, content string) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok || c.Owner != owner {
		return nil, apperror.NotFound("Comment not found")
	}
	c.Content = content
	return c, nil
}

func (f *fakeCommentStore) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok || c.Owner != owner {
		return nil, apperror.NotFound("Comment not found")
	}
	delete(f.comments, id)
	return c, nil
}

func (f *fakeCommentStore) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.comments[id]
	return ok, nil
}

func TestCommentAdd(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(store)

	video := primitive.NewObjectID()
	owner := primitive.NewObjectID()

	comment, err := svc.Add(context.Background(), video, owner, "first!")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if comment.Owner != owner || comment.Video != video {
		t.Error("comment should carry the caller and target video")
	}

	comments, err := svc.ListForVideo(context.Background(), video, repository.PageParams{})
	if err != nil {
		t.Fatalf("ListForVideo: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("video has %d comments, want 1", len(comments))
	}
}

func TestCommentUpdate_NonOwnerForbidden(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(store)

	owner := primitive.NewObjectID()
	comment, err := svc.Add(context.Background(), primitive.NewObjectID(), owner, "mine")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err = svc.Update(context.Background(), comment.ID, primitive.NewObjectID(), "hijacked")
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("non-owner update err = %v, want ErrForbidden", err)
	}
	if store.comments[comment.ID].Content != "mine" {
		t.Error("non-owner update must not change content")
	}
}

func TestCommentUpdate_MissingNotFound(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "hello")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("missing comment err = %v, want ErrNotFound", err)
	}
}

func TestCommentDelete_NonOwnerForbidden(t *testing.T) {
	store := newFakeCommentStore()
	svc := NewCommentService(store)

	comment, err := svc.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "keep me")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err = svc.Delete(context.Background(), comment.ID, primitive.NewObjectID())
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("non-owner delete err = %v, want ErrForbidden", err)
	}
	if len(store.comments) != 1 {
		t.Error("non-owner delete must not remove the comment")
	}
}

func TestCommentAdd_EmptyContentRejected(t *testing.T) {
	svc := NewCommentService(newFakeCommentStore())

	_, err := svc.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "")
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("empty content err = %v, want ErrInvalidInput", err)
	}
}
