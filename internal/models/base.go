package models

import "time"

// Base holds the server-assigned fields shared by every stored entity.
type Base struct {
	ID        string    `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Meta exposes the base fields so repositories can stamp any entity.
func (b *Base) Meta() *Base { return b }

// Entity is implemented by every stored document type (via an embedded Base).
type Entity interface {
	Meta() *Base
}

// Stamp assigns identifier and timestamps on creation. Fields already present
// are kept, so a pre-built document (e.g. seed data) can carry its own id.
func (b *Base) Stamp(id string, now time.Time) {
	if b.ID == "" {
		b.ID = id
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() || b.UpdatedAt.Before(b.CreatedAt) {
		b.UpdatedAt = b.CreatedAt
	}
}

// Patch is the field-level outcome of an update shape: bson field names to
// overwrite and nullable fields to clear. updated_at is added by the repository.
type Patch struct {
	Set   map[string]any
	Unset []string
}

// Empty reports whether the patch touches no fields.
func (p Patch) Empty() bool { return len(p.Set) == 0 && len(p.Unset) == 0 }

func newPatch() Patch { return Patch{Set: map[string]any{}} }
