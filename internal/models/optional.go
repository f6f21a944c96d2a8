package models

import (
	"bytes"
	"encoding/json"
)

// Optional wraps a field of an update request so that an absent key, an
// explicit null and a concrete value can be told apart after decoding.
type Optional[T any] struct {
	Value T
	Set   bool // key was present in the payload
	Null  bool // key was present with a null value
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Set: true} }

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// HasValue reports whether a concrete value was supplied.
func (o Optional[T]) HasValue() bool { return o.Set && !o.Null }
