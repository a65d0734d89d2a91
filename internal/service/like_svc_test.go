package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
)

// fakeLikeStore keeps like edges in a map keyed by kind/target/user.
type fakeLikeStore struct {
	edges map[string]*model.Like
	err   error
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{edges: make(map[string]*model.Like)}
}

func likeTestKey(kind model.LikeKind, target, user primitive.ObjectID) string {
	return string(kind) + "/" + target.Hex() + "/" + user.Hex()
}

func (f *fakeLikeStore) RemoveIfExists(_ context.Context, kind model.LikeKind, target, user primitive.ObjectID) (*model.Like, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := likeTestKey(kind, target, user)
	like, ok := f.edges[key]
	if !ok {
		return nil, nil
	}
	delete(f.edges, key)
	return like, nil
}

func (f *fakeLikeStore) AddIfAbsent(_ context.Context, kind model.LikeKind, target, user primitive.ObjectID) (*model.Like, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := likeTestKey(kind, target, user)
	if like, ok := f.edges[key]; ok {
		return like, nil
	}
	like := &model.Like{ID: primitive.NewObjectID(), LikedBy: user}
	f.edges[key] = like
	return like, nil
}

func (f *fakeLikeStore) ListByUser(_ context.Context, user primitive.ObjectID, kind model.LikeKind, _ repository.PageParams) ([]model.LikedItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var items []model.LikedItem
	for _, like := range f.edges {
		if like.LikedBy == user {
			items = append(items, model.LikedItem{ID: like.ID})
		}
	}
	return items, nil
}

func TestLikeToggle_AddThenRemove(t *testing.T) {
	store := newFakeLikeStore()
	svc := NewLikeService(store, &CacheService{})

	target := primitive.NewObjectID()
	user := primitive.NewObjectID()

	result, like, err := svc.Toggle(context.Background(), model.LikeVideo, target, user)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !result.Added {
		t.Error("first toggle should add the edge")
	}
	if like == nil {
		t.Fatal("first toggle should return the created like")
	}

	result, _, err = svc.Toggle(context.Background(), model.LikeVideo, target, user)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if result.Added {
		t.Error("second toggle should remove the edge")
	}
	if len(store.edges) != 0 {
		t.Errorf("double toggle left %d edges, want 0", len(store.edges))
	}
}

func TestLikeToggle_KindsAreIndependent(t *testing.T) {
	store := newFakeLikeStore()
	svc := NewLikeService(store, &CacheService{})

	target := primitive.NewObjectID()
	user := primitive.NewObjectID()

	if _, _, err := svc.Toggle(context.Background(), model.LikeVideo, target, user); err != nil {
		t.Fatalf("video toggle: %v", err)
	}
	result, _, err := svc.Toggle(context.Background(), model.LikeComment, target, user)
	if err != nil {
		t.Fatalf("comment toggle: %v", err)
	}
	if !result.Added {
		t.Error("comment toggle should add despite existing video like on same id")
	}
	if len(store.edges) != 2 {
		t.Errorf("store has %d edges, want 2", len(store.edges))
	}
}

func TestLikeToggle_StoreErrorPropagates(t *testing.T) {
	store := newFakeLikeStore()
	store.err = errors.New("connection reset")
	svc := NewLikeService(store, &CacheService{})

	_, _, err := svc.Toggle(context.Background(), model.LikeTweet, primitive.NewObjectID(), primitive.NewObjectID())
	if err == nil {
		t.Fatal("store error should propagate")
	}
}

func TestLiked_EmptyForNewUser(t *testing.T) {
	svc := NewLikeService(newFakeLikeStore(), &CacheService{})

	items, err := svc.Liked(context.Background(), primitive.NewObjectID(), model.LikeVideo, repository.PageParams{})
	if err != nil {
		t.Fatalf("Liked: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("new user has %d liked items, want 0", len(items))
	}
}
