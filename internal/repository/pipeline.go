package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Pagination defaults shared by every list endpoint.
const (
	DefaultPage  = int64(1)
	DefaultLimit = int64(10)
	MaxLimit     = int64(100)

	DefaultSortField = "createdAt"
)

// PageParams carries the caller-supplied pagination and sort contract:
// page (default 1), limit (default 10, capped), sortBy (default "createdAt"),
// descending by default. Non-positive values are coerced to the defaults so a
// bad page can never turn into a negative skip.
type PageParams struct {
	Page    int64
	Limit   int64
	SortBy  string
	SortAsc bool
}

// Normalize returns a copy with defaults applied and the limit capped.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortField
	}
	return p
}

// Skip returns the number of documents to skip for the normalized params.
func (p PageParams) Skip() int64 {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// SortDirection returns the Mongo sort direction for the normalized params.
func (p PageParams) SortDirection() int {
	if p.SortAsc {
		return 1
	}
	return -1
}

// ViewPipeline assembles read-view aggregation pipelines in a fixed stage
// order: match → lookup(s) → project → sort → skip/limit. Each foreign
// reference resolves via a left-outer lookup whose multiplicity is 0 or 1,
// so the joined array is collapsed to its first element right away.
type ViewPipeline struct {
	match    bson.D
	lookups  []bson.D
	collapse bson.D
	project  bson.D
	sort     bson.D
	skip     *int64
	limit    *int64
}

func NewViewPipeline() *ViewPipeline {
	return &ViewPipeline{}
}

// Match sets the equality/regex filter stage.
func (v *ViewPipeline) Match(filter bson.D) *ViewPipeline {
	v.match = filter
	return v
}

// LookupOne joins a single document from another collection and collapses the
// resulting array to its first element under the same field name. A missing
// counterpart leaves the field absent (null in the serialized view).
func (v *ViewPipeline) LookupOne(from, localField, as string) *ViewPipeline {
	v.lookups = append(v.lookups, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}})
	v.collapse = append(v.collapse, bson.E{Key: as, Value: bson.D{
		{Key: "$arrayElemAt", Value: bson.A{"$" + as, 0}},
	}})
	return v
}

// LookupMany joins all matching documents without collapsing (playlist videos).
func (v *ViewPipeline) LookupMany(from, localField, as string) *ViewPipeline {
	v.lookups = append(v.lookups, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}})
	return v
}

// Project selects the fields that survive into the view.
func (v *ViewPipeline) Project(fields bson.D) *ViewPipeline {
	v.project = fields
	return v
}

// Sort sets an explicit sort field and direction.
func (v *ViewPipeline) Sort(field string, direction int) *ViewPipeline {
	v.sort = bson.D{{Key: field, Value: direction}}
	return v
}

// Paginate appends skip/limit computed from the normalized params and sets
// the sort stage from them.
func (v *ViewPipeline) Paginate(p PageParams) *ViewPipeline {
	n := p.Normalize()
	skip := (n.Page - 1) * n.Limit
	limit := n.Limit
	v.skip = &skip
	v.limit = &limit
	if v.sort == nil {
		v.sort = bson.D{{Key: n.SortBy, Value: n.SortDirection()}}
	}
	return v
}

// Build emits the pipeline stages in their fixed order.
func (v *ViewPipeline) Build() mongo.Pipeline {
	var p mongo.Pipeline
	if v.match != nil {
		p = append(p, bson.D{{Key: "$match", Value: v.match}})
	}
	p = append(p, v.lookups...)
	if v.collapse != nil {
		p = append(p, bson.D{{Key: "$addFields", Value: v.collapse}})
	}
	if v.project != nil {
		p = append(p, bson.D{{Key: "$project", Value: v.project}})
	}
	if v.sort != nil {
		p = append(p, bson.D{{Key: "$sort", Value: v.sort}})
	}
	if v.skip != nil {
		p = append(p, bson.D{{Key: "$skip", Value: *v.skip}})
	}
	if v.limit != nil {
		p = append(p, bson.D{{Key: "$limit", Value: *v.limit}})
	}
	return p
}

// TitleRegexFilter builds a case-insensitive substring predicate on a field.
func TitleRegexFilter(field, query string) bson.E {
	return bson.E{Key: field, Value: primitive.Regex{Pattern: query, Options: "i"}}
}
