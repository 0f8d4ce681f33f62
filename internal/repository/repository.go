package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerguide/careerguide-api/internal/database"
)

// document is what a stored model must provide: identity plus timestamp
// stamping. Models satisfy it by embedding Meta.
type document interface {
	SetID(primitive.ObjectID)
	DocumentID() primitive.ObjectID
	Stamp(t time.Time)
}

// Repository provides the shared CRUD, listing and counter operations for
// one collection of T documents.
type Repository[T any, PT interface {
	*T
	document
}] struct {
	coll         database.Collection
	searchFields []string
	now          func() time.Time
}

// New creates a repository over coll. searchFields are the fields the
// free-text search term is matched against when listing.
func New[T any, PT interface {
	*T
	document
}](coll database.Collection, searchFields ...string) *Repository[T, PT] {
	return &Repository[T, PT]{
		coll:         coll,
		searchFields: searchFields,
		now:          time.Now,
	}
}

// Collection exposes the underlying store for service-level queries that
// go beyond the shared operations.
func (r *Repository[T, PT]) Collection() database.Collection {
	return r.coll
}

// Create stamps and inserts doc, filling in its generated id.
func (r *Repository[T, PT]) Create(ctx context.Context, doc PT) error {
	doc.Stamp(r.now().UTC())
	id, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	doc.SetID(id)
	return nil
}

// Get fetches one document by its hex id.
func (r *Repository[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.GetBy(ctx, bson.M{"_id": oid})
}

// GetBy fetches the first document matching filter.
func (r *Repository[T, PT]) GetBy(ctx context.Context, filter bson.M) (PT, error) {
	var doc T
	if err := r.coll.FindOne(ctx, filter, &doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// List returns one page of documents matching q, along with the total
// count across all pages.
func (r *Repository[T, PT]) List(ctx context.Context, q ListQuery) (*Page[T], error) {
	filter := q.Filter(r.searchFields)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortField := q.Sort
	order := q.Order
	if sortField == "" {
		sortField = "created_at"
		order = -1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	items := make([]T, 0)
	err = r.coll.Find(ctx, filter, database.FindOptions{
		Sort:  sortField,
		Order: order,
		Skip:  q.Skip,
		Limit: limit,
	}, &items)
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		Items: items,
		Total: total,
		Page:  q.Skip/limit + 1,
		Limit: limit,
	}, nil
}

// Update applies the given $set fields to the document with the hex id and
// returns the updated document. An empty fields map is rejected so callers
// surface "no data to update" instead of silently stamping the document.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, fields bson.M) (PT, error) {
	if len(fields) == 0 {
		return nil, ErrNoUpdate
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields["updated_at"] = r.now().UTC()
	matched, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes the document with the hex id. Deletes are hard and do not
// cascade to documents that reference the id.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	deleted, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// Toggle flips the named boolean field on the document and returns the
// updated document.
func (r *Repository[T, PT]) Toggle(ctx context.Context, id string, field string) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var raw bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, &raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	current, _ := raw[field].(bool)

	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{field: !current, "updated_at": r.now().UTC()},
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Inc atomically adds delta to the named counter field.
func (r *Repository[T, PT]) Inc(ctx context.Context, id primitive.ObjectID, field string, delta int64) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
	return err
}

// Count counts documents matching filter.
func (r *Repository[T, PT]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.coll.CountDocuments(ctx, filter)
}
