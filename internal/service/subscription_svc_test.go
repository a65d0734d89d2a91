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

type fakeSubscriptionStore struct {
	edges map[string]*model.Subscription
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{edges: make(map[string]*model.Subscription)}
}

func subTestKey(subscriber, channel primitive.ObjectID) string {
	return subscriber.Hex() + "/" + channel.Hex()
}

func (f *fakeSubscriptionStore) RemoveIfExists(_ context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error) {
	key := subTestKey(subscriber, channel)
	sub, ok := f.edges[key]
	if !ok {
		return nil, nil
	}
	delete(f.edges, key)
	return sub, nil
}

func (f *fakeSubscriptionStore) AddIfAbsent(_ context.Context, subscriber, channel primitive.ObjectID) (*model.Subscription, error) {
	key := subTestKey(subscriber, channel)
	if sub, ok := f.edges[key]; ok {
		return sub, nil
	}
	sub := &model.Subscription{ID: primitive.NewObjectID(), Subscriber: subscriber, Channel: channel}
	f.edges[key] = sub
	return sub, nil
}

func (f *fakeSubscriptionStore) ListSubscribers(_ context.Context, channel primitive.ObjectID, _ repository.PageParams) ([]model.SubscriptionView, error) {
	var out []model.SubscriptionView
	for _, sub := range f.edges {
		if sub.Channel == channel {
			out = append(out, model.SubscriptionView{ID: sub.ID})
		}
	}
	return out, nil
}

func (f *fakeSubscriptionStore) ListSubscribedChannels(_ context.Context, subscriber primitive.ObjectID, _ repository.PageParams) ([]model.SubscriptionView, error) {
	var out []model.SubscriptionView
	for _, sub := range f.edges {
		if sub.Subscriber == subscriber {
			out = append(out, model.SubscriptionView{ID: sub.ID})
		}
	}
	return out, nil
}

func TestSubscriptionToggle_AddThenRemove(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store)

	subscriber := primitive.NewObjectID()
	channel := primitive.NewObjectID()

	result, sub, err := svc.Toggle(context.Background(), subscriber, channel)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !result.Added || sub == nil {
		t.Error("first toggle should subscribe")
	}

	result, _, err = svc.Toggle(context.Background(), subscriber, channel)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if result.Added {
		t.Error("second toggle should unsubscribe")
	}
	if len(store.edges) != 0 {
		t.Errorf("double toggle left %d edges, want 0", len(store.edges))
	}
}

func TestSubscriptionToggle_SelfSubscribeForbidden(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store)

	id := primitive.NewObjectID()

	// Rejected on both attempts: the check is state-independent.
	for i := 0; i < 2; i++ {
		_, _, err := svc.Toggle(context.Background(), id, id)
		if !errors.Is(err, apperror.ErrForbidden) {
			t.Fatalf("attempt %d: err = %v, want ErrForbidden", i+1, err)
		}
	}
	if len(store.edges) != 0 {
		t.Errorf("self-subscribe created %d edges, want 0", len(store.edges))
	}
}

func TestSubscription_DirectionsIndependent(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store)

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	if _, _, err := svc.Toggle(context.Background(), a, b); err != nil {
		t.Fatalf("a→b: %v", err)
	}
	result, _, err := svc.Toggle(context.Background(), b, a)
	if err != nil {
		t.Fatalf("b→a: %v", err)
	}
	if !result.Added {
		t.Error("reverse direction should be a distinct edge")
	}

	subs, err := svc.Subscribers(context.Background(), b, repository.PageParams{})
	if err != nil {
		t.Fatalf("Subscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("channel b has %d subscribers, want 1", len(subs))
	}
}
