package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

type fakeTweetStore struct {
	tweets map[primitive.ObjectID]*model.Tweet
}

func newFakeTweetStore() *fakeTweetStore {
	return &fakeTweetStore{tweets: make(map[primitive.ObjectID]*model.Tweet)}
}

func (f *fakeTweetStore) Insert(_ context.Context, tw *model.Tweet) (*model.Tweet, error) {
	tw.ID = primitive.NewObjectID()
	f.tweets[tw.ID] = tw
	return tw, nil
}

func (f *fakeTweetStore) ListByOwner(_ context.Context, owner primitive.ObjectID) ([]model.Tweet, error) {
	var out []model.Tweet
	for _, tw := range f.tweets {
		if tw.Owner == owner {
			out = append(out, *tw)
		}
	}
	return out, nil
}

func (f *fakeTweetStore) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, content string) (*model.Tweet, error) {
	tw, ok := f.tweets[id]
	if !ok || tw.Owner != owner {
		return nil, apperror.NotFound("Tweet not found")
	}
	tw.Content = content
	return tw, nil
}

func (f *fakeTweetStore) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) (*model.Tweet, error) {
	tw, ok := f.tweets[id]
	if !ok || tw.Owner != owner {
		return nil, apperror.NotFound("Tweet not found")
	}
	delete(f.tweets, id)
	return tw, nil
}

func (f *fakeTweetStore) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.tweets[id]
	return ok, nil
}

func TestTweetCreateAndList(t *testing.T) {
	svc := NewTweetService(newFakeTweetStore())

	owner := primitive.NewObjectID()
	if _, err := svc.Create(context.Background(), owner, "hello world"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tweets, err := svc.ListForUser(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(tweets) != 1 {
		t.Errorf("user has %d tweets, want 1", len(tweets))
	}

	other, err := svc.ListForUser(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListForUser (other): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other user has %d tweets, want 0", len(other))
	}
}

func TestTweetCreate_EmptyContentRejected(t *testing.T) {
	svc := NewTweetService(newFakeTweetStore())

	if _, err := svc.Create(context.Background(), primitive.NewObjectID(), ""); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestTweetUpdate_OwnershipEnforced(t *testing.T) {
	store := newFakeTweetStore()
	svc := NewTweetService(store)

	owner := primitive.NewObjectID()
	tw, err := svc.Create(context.Background(), owner, "original")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(context.Background(), tw.ID, primitive.NewObjectID(), "edited"); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("non-owner update err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Update(context.Background(), primitive.NewObjectID(), owner, "edited"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("missing tweet err = %v, want ErrNotFound", err)
	}

	updated, err := svc.Update(context.Background(), tw.ID, owner, "edited")
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("content = %q, want edited", updated.Content)
	}
}

func TestTweetDelete_OwnershipEnforced(t *testing.T) {
	store := newFakeTweetStore()
	svc := NewTweetService(store)

	owner := primitive.NewObjectID()
	tw, err := svc.Create(context.Background(), owner, "delete me")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Delete(context.Background(), tw.ID, primitive.NewObjectID()); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("non-owner delete err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Delete(context.Background(), tw.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(store.tweets) != 0 {
		t.Error("tweet should be gone after owner delete")
	}
}
