package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPageParams_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        PageParams
		wantPage  int64
		wantLimit int64
		wantSort  string
	}{
		{"zero values take defaults", PageParams{}, 1, 10, "createdAt"},
		{"negative page coerced", PageParams{Page: -3, Limit: 20}, 1, 20, "createdAt"},
		{"limit capped", PageParams{Page: 2, Limit: 500}, 2, 100, "createdAt"},
		{"explicit sort kept", PageParams{Page: 1, Limit: 10, SortBy: "views"}, 1, 10, "views"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit || got.SortBy != tt.wantSort {
				t.Errorf("Normalize() = {page:%d limit:%d sortBy:%s}, want {page:%d limit:%d sortBy:%s}",
					got.Page, got.Limit, got.SortBy, tt.wantPage, tt.wantLimit, tt.wantSort)
			}
		})
	}
}

func TestPageParams_Skip(t *testing.T) {
	tests := []struct {
		name string
		in   PageParams
		want int64
	}{
		{"first page skips nothing", PageParams{Page: 1, Limit: 10}, 0},
		{"second page skips one page", PageParams{Page: 2, Limit: 10}, 10},
		{"page 4 limit 25", PageParams{Page: 4, Limit: 25}, 75},
		{"bad page never negative", PageParams{Page: -1, Limit: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Skip(); got != tt.want {
				t.Errorf("Skip() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPageParams_SortDirection(t *testing.T) {
	if got := (PageParams{SortAsc: true}).SortDirection(); got != 1 {
		t.Errorf("ascending SortDirection() = %d, want 1", got)
	}
	if got := (PageParams{}).SortDirection(); got != -1 {
		t.Errorf("default SortDirection() = %d, want -1", got)
	}
}

// stageKey returns the single operator name of a pipeline stage.
func stageKey(t *testing.T, stage bson.D) string {
	t.Helper()
	if len(stage) != 1 {
		t.Fatalf("stage has %d keys, want 1: %v", len(stage), stage)
	}
	return stage[0].Key
}

func TestViewPipeline_StageOrder(t *testing.T) {
	owner := primitive.NewObjectID()

	pipeline := NewViewPipeline().
		Match(bson.D{{Key: "owner", Value: owner}}).
		LookupOne("users", "owner", "owner").
		Project(bson.D{{Key: "title", Value: 1}}).
		Paginate(PageParams{Page: 2, Limit: 10}).
		Build()

	want := []string{"$match", "$lookup", "$addFields", "$project", "$sort", "$skip", "$limit"}
	if len(pipeline) != len(want) {
		t.Fatalf("pipeline has %d stages, want %d", len(pipeline), len(want))
	}
	for i, key := range want {
		if got := stageKey(t, pipeline[i]); got != key {
			t.Errorf("stage %d = %s, want %s", i, got, key)
		}
	}
}

func TestViewPipeline_EmptyMatchOmitted(t *testing.T) {
	pipeline := NewViewPipeline().
		LookupOne("users", "owner", "owner").
		Paginate(PageParams{}).
		Build()

	if got := stageKey(t, pipeline[0]); got != "$lookup" {
		t.Errorf("first stage = %s, want $lookup (no match configured)", got)
	}
}

func TestViewPipeline_PaginateValues(t *testing.T) {
	// 15 documents at limit 10: page 2 must skip 10 and cap at 10.
	pipeline := NewViewPipeline().
		Match(bson.D{{Key: "video", Value: primitive.NewObjectID()}}).
		Paginate(PageParams{Page: 2, Limit: 10}).
		Build()

	var skip, limit int64 = -1, -1
	for _, stage := range pipeline {
		switch stage[0].Key {
		case "$skip":
			skip = stage[0].Value.(int64)
		case "$limit":
			limit = stage[0].Value.(int64)
		}
	}
	if skip != 10 {
		t.Errorf("$skip = %d, want 10", skip)
	}
	if limit != 10 {
		t.Errorf("$limit = %d, want 10", limit)
	}
}

func TestViewPipeline_DefaultSortDescending(t *testing.T) {
	pipeline := NewViewPipeline().Paginate(PageParams{}).Build()

	for _, stage := range pipeline {
		if stage[0].Key != "$sort" {
			continue
		}
		sort := stage[0].Value.(bson.D)
		if sort[0].Key != "createdAt" || sort[0].Value.(int) != -1 {
			t.Errorf("$sort = %v, want createdAt descending", sort)
		}
		return
	}
	t.Fatal("pipeline has no $sort stage")
}

func TestViewPipeline_ExplicitSortWins(t *testing.T) {
	pipeline := NewViewPipeline().
		Sort("views", 1).
		Paginate(PageParams{SortBy: "createdAt"}).
		Build()

	for _, stage := range pipeline {
		if stage[0].Key != "$sort" {
			continue
		}
		sort := stage[0].Value.(bson.D)
		if sort[0].Key != "views" {
			t.Errorf("$sort field = %s, want views", sort[0].Key)
		}
		return
	}
	t.Fatal("pipeline has no $sort stage")
}

func TestViewPipeline_LookupOneCollapses(t *testing.T) {
	pipeline := NewViewPipeline().LookupOne("users", "owner", "owner").Build()

	if len(pipeline) != 2 {
		t.Fatalf("pipeline has %d stages, want lookup + addFields", len(pipeline))
	}
	fields := pipeline[1][0].Value.(bson.D)
	collapse := fields[0].Value.(bson.D)
	if collapse[0].Key != "$arrayElemAt" {
		t.Errorf("collapse operator = %s, want $arrayElemAt", collapse[0].Key)
	}
}

func TestViewPipeline_LookupManyDoesNotCollapse(t *testing.T) {
	pipeline := NewViewPipeline().LookupMany("videos", "videos", "videos").Build()

	for _, stage := range pipeline {
		if stage[0].Key == "$addFields" {
			t.Fatal("LookupMany must not add a collapse stage")
		}
	}
}

func TestTitleRegexFilter(t *testing.T) {
	e := TitleRegexFilter("title", "gopher")
	re, ok := e.Value.(primitive.Regex)
	if !ok {
		t.Fatalf("filter value is %T, want primitive.Regex", e.Value)
	}
	if re.Pattern != "gopher" || re.Options != "i" {
		t.Errorf("regex = %q options %q, want case-insensitive substring", re.Pattern, re.Options)
	}
}
