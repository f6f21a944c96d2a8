package repository

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used by tests and for running without a
// database. Documents are kept as BSON maps so filtering, sorting and update
// semantics match MongoDB for the equality filters this service uses.
type MemoryStore struct {
	name string

	mu      sync.RWMutex
	docs    []bson.M // insertion order
	indexes map[string]IndexSpec
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{name: name, indexes: map[string]IndexSpec{}}
}

// NewMemoryCollections returns empty in-memory stores for every collection.
func NewMemoryCollections() *Collections {
	return newCollections(func(name string) Store { return NewMemoryStore(name) })
}

func (m *MemoryStore) Name() string { return m.name }

func (m *MemoryStore) FindOne(_ context.Context, filter bson.M) (bson.Raw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		if matches(d, filter) {
			return bson.Marshal(d)
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Find(_ context.Context, filter bson.M, fo FindOptions) ([]bson.Raw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hits := make([]bson.M, 0, len(m.docs))
	for _, d := range m.docs {
		if matches(d, filter) {
			hits = append(hits, d)
		}
	}
	if fo.SortField != "" {
		sort.SliceStable(hits, func(i, j int) bool {
			c := compareValues(hits[i][fo.SortField], hits[j][fo.SortField])
			if fo.Descending {
				return c > 0
			}
			return c < 0
		})
	}
	if fo.Skip > 0 {
		if fo.Skip >= int64(len(hits)) {
			hits = nil
		} else {
			hits = hits[fo.Skip:]
		}
	}
	if fo.Limit > 0 && int64(len(hits)) > fo.Limit {
		hits = hits[:fo.Limit]
	}
	out := make([]bson.Raw, 0, len(hits))
	for _, d := range hits {
		raw, err := bson.Marshal(d)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func (m *MemoryStore) Count(_ context.Context, filter bson.M) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, d := range m.docs {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) InsertOne(_ context.Context, doc any) error {
	d, err := toM(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkUnique(d, -1); err != nil {
		return err
	}
	m.docs = append(m.docs, d)
	return nil
}

func (m *MemoryStore) UpdateOne(_ context.Context, filter, update bson.M) (bson.Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if !matches(d, filter) {
			continue
		}
		next := bson.M{}
		for k, v := range d {
			next[k] = v
		}
		if set, ok := update["$set"].(bson.M); ok {
			for k, v := range set {
				next[k] = v
			}
		}
		if unset, ok := update["$unset"].(bson.M); ok {
			for k := range unset {
				delete(next, k)
			}
		}
		normalized, err := toM(next)
		if err != nil {
			return nil, err
		}
		if err := m.checkUnique(normalized, i); err != nil {
			return nil, err
		}
		m.docs[i] = normalized
		return bson.Marshal(normalized)
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) DeleteOne(_ context.Context, filter bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if matches(d, filter) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) EnsureIndex(_ context.Context, idx IndexSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indexes[idx.Field] = idx
	return nil
}

// Indexes lists the indexed fields; used by tests.
func (m *MemoryStore) Indexes() []IndexSpec {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]IndexSpec, 0, len(m.indexes))
	for _, idx := range m.indexes {
		out = append(out, idx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

// checkUnique enforces _id and unique indexes; skip is the index being replaced.
func (m *MemoryStore) checkUnique(d bson.M, skip int) error {
	fields := []string{"_id"}
	for f, idx := range m.indexes {
		if idx.Unique {
			fields = append(fields, f)
		}
	}
	for i, other := range m.docs {
		if i == skip {
			continue
		}
		for _, f := range fields {
			v, ok := d[f]
			if ok && equalValues(v, other[f]) {
				return fmt.Errorf("%w: %s.%s = %v", ErrDuplicate, m.name, f, v)
			}
		}
	}
	return nil
}

func toM(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func matches(d, filter bson.M) bool {
	for k, want := range filter {
		if !equalValues(d[k], want) {
			return false
		}
	}
	return true
}

func normalize(v any) any {
	switch t := v.(type) {
	case time.Time:
		return primitive.NewDateTimeFromTime(t)
	case int:
		return int64(t)
	case int32:
		return int64(t)
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String()
	}
	return v
}

func equalValues(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// compareValues orders two BSON values of the same kind; missing values sort first.
func compareValues(a, b any) int {
	a, b = normalize(a), normalize(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch x := a.(type) {
	case primitive.DateTime:
		if y, ok := b.(primitive.DateTime); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok && x != y {
			if x {
				return 1
			}
			return -1
		}
		return 0
	}
	return 0
}
