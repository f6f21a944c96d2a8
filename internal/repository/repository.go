package repository

import (
	"context"
	"time"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Document constrains PT to a pointer to an entity struct T.
type Document[T any] interface {
	*T
	models.Entity
}

// Repository is the typed access layer for one entity collection. It assigns
// ids and timestamps, decodes documents, and classifies store errors into
// ErrNotFound or *FaultError.
type Repository[T any, PT Document[T]] struct {
	store Store
	now   func() time.Time
	newID func() string
}

// New wraps store for entity type T.
func New[T any, PT Document[T]](store Store) *Repository[T, PT] {
	return &Repository[T, PT]{store: store, now: Now, newID: uuid.NewString}
}

// Now is the timestamp source. Mongo keeps millisecond precision, so times are
// truncated up front to keep the returned and stored forms equal.
func Now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// WithClock replaces the timestamp source (tests).
func (r *Repository[T, PT]) WithClock(now func() time.Time) *Repository[T, PT] {
	r.now = now
	return r
}

func (r *Repository[T, PT]) Store() Store { return r.store }

func (r *Repository[T, PT]) decode(raw bson.Raw) (*T, error) {
	var v T
	if err := bson.Unmarshal(raw, PT(&v)); err != nil {
		return nil, &FaultError{Op: "decode", Collection: r.store.Name(), Err: err}
	}
	return &v, nil
}

// GetOne returns the first document matching filter.
func (r *Repository[T, PT]) GetOne(ctx context.Context, filter bson.M) (*T, error) {
	raw, err := r.store.FindOne(ctx, filter)
	if err != nil {
		return nil, fault("find", r.store.Name(), err)
	}
	return r.decode(raw)
}

// Get returns the document with the given id.
func (r *Repository[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	return r.GetOne(ctx, bson.M{"_id": id})
}

// List returns one page of documents plus the total number matching filter,
// independent of paging.
func (r *Repository[T, PT]) List(ctx context.Context, filter bson.M, opts FindOptions) ([]T, int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	total, err := r.store.Count(ctx, filter)
	if err != nil {
		return nil, 0, fault("count", r.store.Name(), err)
	}
	raws, err := r.store.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fault("find", r.store.Name(), err)
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := r.decode(raw)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *v)
	}
	return out, total, nil
}

// Count returns the number of documents matching filter.
func (r *Repository[T, PT]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := r.store.Count(ctx, filter)
	return n, fault("count", r.store.Name(), err)
}

// Create stamps id and timestamps (unless already present) and persists doc.
// created_at equals updated_at on a fresh document.
func (r *Repository[T, PT]) Create(ctx context.Context, doc PT) (PT, error) {
	doc.Meta().Stamp(r.newID(), r.now())
	if err := r.store.InsertOne(ctx, doc); err != nil {
		var zero PT
		return zero, fault("insert", r.store.Name(), err)
	}
	return doc, nil
}

// UpdateOne applies patch to the first document matching filter and always
// advances updated_at past its stored value. Id and created_at are never touched.
func (r *Repository[T, PT]) UpdateOne(ctx context.Context, filter bson.M, patch models.Patch) (*T, error) {
	raw, err := r.store.FindOne(ctx, filter)
	if err != nil {
		return nil, fault("find", r.store.Name(), err)
	}
	var current models.Base
	if err := bson.Unmarshal(raw, &current); err != nil {
		return nil, &FaultError{Op: "decode", Collection: r.store.Name(), Err: err}
	}
	// pin the write to the document read above
	filter = bson.M{"_id": current.ID}

	set := bson.M{}
	for k, v := range patch.Set {
		switch k {
		case "_id", "id", "created_at", "updated_at":
			continue
		}
		set[k] = v
	}
	set["updated_at"] = nextUpdatedAt(r.now(), current.UpdatedAt)
	update := bson.M{"$set": set}
	if len(patch.Unset) > 0 {
		unset := bson.M{}
		for _, k := range patch.Unset {
			unset[k] = ""
		}
		update["$unset"] = unset
	}
	raw, err = r.store.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fault("update", r.store.Name(), err)
	}
	return r.decode(raw)
}

// nextUpdatedAt keeps updated_at strictly increasing at millisecond precision,
// even when two writes land in the same millisecond.
func nextUpdatedAt(now, prev time.Time) time.Time {
	if floor := prev.Add(time.Millisecond); now.Before(floor) {
		return floor.UTC()
	}
	return now
}

// Update applies patch to the document with the given id.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, patch models.Patch) (*T, error) {
	return r.UpdateOne(ctx, bson.M{"_id": id}, patch)
}

// DeleteOne removes the first document matching filter.
func (r *Repository[T, PT]) DeleteOne(ctx context.Context, filter bson.M) error {
	return fault("delete", r.store.Name(), r.store.DeleteOne(ctx, filter))
}

// Delete removes the document with the given id.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	return r.DeleteOne(ctx, bson.M{"_id": id})
}
