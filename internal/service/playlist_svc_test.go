package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/apperror"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
)

type fakePlaylistStore struct {
	playlists map[primitive.ObjectID]*model.Playlist
}

func newFakePlaylistStore() *fakePlaylistStore {
	return &fakePlaylistStore{playlists: make(map[primitive.ObjectID]*model.Playlist)}
}

func (f *fakePlaylistStore) Insert(_ context.Context, p *model.Playlist) (*model.Playlist, error) {
	p.ID = primitive.NewObjectID()
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	f.playlists[p.ID] = p
	return p, nil
}

func (f *fakePlaylistStore) ViewByID(_ context.Context, id primitive.ObjectID) (*model.PlaylistView, error) {
	p, ok := f.playlists[id]
	if !ok {
		return nil, apperror.NotFound("Playlist not found")
	}
	return &model.PlaylistView{ID: p.ID, Name: p.Name, Owner: p.Owner}, nil
}

func (f *fakePlaylistStore) ListByOwner(_ context.Context, owner primitive.ObjectID) ([]model.Playlist, error) {
	var out []model.Playlist
	for _, p := range f.playlists {
		if p.Owner == owner {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlaylistStore) owned(id, owner primitive.ObjectID) (*model.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok || p.Owner != owner {
		return nil, apperror.NotFound("Playlist not found")
	}
	return p, nil
}

func (f *fakePlaylistStore) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, name, description string) (*model.Playlist, error) {
	p, err := f.owned(id, owner)
	if err != nil {
		return nil, err
	}
	p.Name, p.Description = name, description
	return p, nil
}

func (f *fakePlaylistStore) AddVideoOwned(_ context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error) {
	p, err := f.owned(id, owner)
	if err != nil {
		return nil, err
	}
	for _, v := range p.Videos {
		if v == videoID {
			return p, nil
		}
	}
	p.Videos = append(p.Videos, videoID)
	return p, nil
}

func (f *fakePlaylistStore) RemoveVideoOwned(_ context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error) {
	p, err := f.owned(id, owner)
	if err != nil {
		return nil, err
	}
	kept := p.Videos[:0]
	for _, v := range p.Videos {
		if v != videoID {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	return p, nil
}

func (f *fakePlaylistStore) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) (*model.Playlist, error) {
	p, err := f.owned(id, owner)
	if err != nil {
		return nil, err
	}
	delete(f.playlists, id)
	return p, nil
}

func (f *fakePlaylistStore) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.playlists[id]
	return ok, nil
}

func TestPlaylistCreate_StartsEmpty(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistStore())

	p, err := svc.Create(context.Background(), primitive.NewObjectID(), model.PlaylistRequest{
		Name:        "Watch later",
		Description: "Things to watch",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Videos == nil || len(p.Videos) != 0 {
		t.Errorf("new playlist videos = %v, want empty non-nil set", p.Videos)
	}
}

func TestPlaylistCreate_RequiresNameAndDescription(t *testing.T) {
	svc := NewPlaylistService(newFakePlaylistStore())

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), model.PlaylistRequest{Name: "only name"})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Errorf("missing description err = %v, want ErrInvalidInput", err)
	}
}

func TestPlaylistAddVideo_SetSemantics(t *testing.T) {
	store := newFakePlaylistStore()
	svc := NewPlaylistService(store)

	owner := primitive.NewObjectID()
	p, err := svc.Create(context.Background(), owner, model.PlaylistRequest{Name: "n", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	video := primitive.NewObjectID()
	if _, err := svc.AddVideo(context.Background(), p.ID, owner, video); err != nil {
		t.Fatalf("first AddVideo: %v", err)
	}
	updated, err := svc.AddVideo(context.Background(), p.ID, owner, video)
	if err != nil {
		t.Fatalf("second AddVideo: %v", err)
	}
	if len(updated.Videos) != 1 {
		t.Errorf("adding twice left %d occurrences, want 1", len(updated.Videos))
	}
}

func TestPlaylistAddVideo_UnionWithExisting(t *testing.T) {
	store := newFakePlaylistStore()
	svc := NewPlaylistService(store)

	owner := primitive.NewObjectID()
	p, err := svc.Create(context.Background(), owner, model.PlaylistRequest{Name: "n", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	for _, v := range []primitive.ObjectID{a, b, b, c} {
		if _, err := svc.AddVideo(context.Background(), p.ID, owner, v); err != nil {
			t.Fatalf("AddVideo: %v", err)
		}
	}

	if got := len(store.playlists[p.ID].Videos); got != 3 {
		t.Errorf("playlist has %d videos, want {a,b,c} = 3", got)
	}
}

func TestPlaylistRemoveVideo_AbsentIsNoop(t *testing.T) {
	store := newFakePlaylistStore()
	svc := NewPlaylistService(store)

	owner := primitive.NewObjectID()
	p, err := svc.Create(context.Background(), owner, model.PlaylistRequest{Name: "n", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.RemoveVideo(context.Background(), p.ID, owner, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("RemoveVideo of absent entry: %v", err)
	}
	if len(updated.Videos) != 0 {
		t.Errorf("playlist has %d videos, want 0", len(updated.Videos))
	}
}

func TestPlaylistMutation_NonOwnerForbidden(t *testing.T) {
	store := newFakePlaylistStore()
	svc := NewPlaylistService(store)

	owner := primitive.NewObjectID()
	p, err := svc.Create(context.Background(), owner, model.PlaylistRequest{Name: "n", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stranger := primitive.NewObjectID()
	if _, err := svc.Delete(context.Background(), p.ID, stranger); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("non-owner delete err = %v, want ErrForbidden", err)
	}
	if _, err := svc.AddVideo(context.Background(), p.ID, stranger, primitive.NewObjectID()); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("non-owner add err = %v, want ErrForbidden", err)
	}
}
