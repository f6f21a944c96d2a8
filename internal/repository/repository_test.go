package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// tick returns a clock advancing one millisecond per call.
func tick(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func strp(s string) *string { return &s }

func TestRepository_CreateGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	r := New[models.Equipment](NewMemoryStore(EquipmentCollection)).WithClock(tick(start))

	created, err := r.Create(ctx, &models.Equipment{Type: models.EquipmentTransceiver, Name: "IC-7300", Specs: "100W", Power: strp("100W")})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, *created, *got)

	updated, err := r.Update(ctx, created.ID, models.Patch{
		Set:   map[string]any{"specs": "100W, HF/6m", "created_at": start, "_id": "hijack"},
		Unset: []string{"power"},
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	require.Equal(t, "100W, HF/6m", updated.Specs)
	require.Equal(t, "IC-7300", updated.Name)
	require.Nil(t, updated.Power)

	require.NoError(t, r.Delete(ctx, created.ID))
	_, err = r.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, created.ID), ErrNotFound)
}

func TestRepository_UpdatedAtIncreasesWithinOneMillisecond(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	r := New[models.Equipment](NewMemoryStore(EquipmentCollection)).WithClock(func() time.Time { return frozen })

	created, err := r.Create(ctx, &models.Equipment{Type: models.EquipmentTransceiver, Name: "FT-991A", Specs: "HF/VHF/UHF"})
	require.NoError(t, err)

	prev := created.UpdatedAt
	for i := 0; i < 3; i++ {
		u, err := r.Update(ctx, created.ID, models.Patch{Set: map[string]any{"specs": "Updated"}})
		require.NoError(t, err)
		require.True(t, u.UpdatedAt.After(prev), "update %d: %v not after %v", i, u.UpdatedAt, prev)
		require.True(t, u.UpdatedAt.After(u.CreatedAt))
		require.Equal(t, frozen, u.CreatedAt)
		prev = u.UpdatedAt
	}

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, prev, got.UpdatedAt)
}

func TestNextUpdatedAt(t *testing.T) {
	prev := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	require.Equal(t, prev.Add(time.Millisecond), nextUpdatedAt(prev, prev))
	require.Equal(t, prev.Add(time.Millisecond), nextUpdatedAt(prev.Add(-time.Second), prev))
	later := prev.Add(time.Minute)
	require.Equal(t, later, nextUpdatedAt(later, prev))
}

func TestRepository_UpdateMissing(t *testing.T) {
	r := New[models.Equipment](NewMemoryStore(EquipmentCollection))
	_, err := r.Update(context.Background(), "nope", models.Patch{Set: map[string]any{"name": "x"}})
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, IsFault(err))
}

func TestRepository_ListSortsPagesAndCounts(t *testing.T) {
	ctx := context.Background()
	r := New[models.News](NewMemoryStore(NewsCollection))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := r.Create(ctx, &models.News{Title: string(rune('a' + i)), Content: "c", Date: base.AddDate(0, 0, i), Category: models.NewsGeneral})
		require.NoError(t, err)
	}

	page, total, err := r.List(ctx, nil, FindOptions{SortField: "date", Descending: true, Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	require.Equal(t, "d", page[0].Title)
	require.Equal(t, "c", page[1].Title)

	page, total, err = r.List(ctx, nil, FindOptions{SortField: "date", Skip: 10})
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Empty(t, page)
}

func TestRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	r := New[models.Guestbook](NewMemoryStore(GuestbookCollection))
	_, err := r.Create(ctx, &models.Guestbook{Name: "a", Message: "m", Approved: true})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Guestbook{Name: "b", Message: "m", Approved: false})
	require.NoError(t, err)

	items, total, err := r.List(ctx, bson.M{"approved": true}, FindOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "a", items[0].Name)
}

func TestMemoryStore_UniqueIndex(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(StationCollection)
	require.NoError(t, s.EnsureIndex(ctx, IndexSpec{Field: "callsign", Unique: true}))
	require.NoError(t, s.EnsureIndex(ctx, IndexSpec{Field: "callsign", Unique: true}))
	require.Len(t, s.Indexes(), 1)

	require.NoError(t, s.InsertOne(ctx, bson.M{"_id": "1", "callsign": "4K6AG"}))
	err := s.InsertOne(ctx, bson.M{"_id": "2", "callsign": "4K6AG"})
	require.ErrorIs(t, err, ErrDuplicate)
	err = s.InsertOne(ctx, bson.M{"_id": "1", "callsign": "OTHER"})
	require.ErrorIs(t, err, ErrDuplicate)

	n, err := s.Count(ctx, bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestMemoryStore_StoredCopyIsIsolated(t *testing.T) {
	ctx := context.Background()
	r := New[models.Equipment](NewMemoryStore(EquipmentCollection))
	doc := &models.Equipment{Type: models.EquipmentOther, Name: "Tuner", Specs: "auto"}
	created, err := r.Create(ctx, doc)
	require.NoError(t, err)

	doc.Name = "mutated"
	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Tuner", got.Name)
}

func TestStationRepository_Singleton(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(StationCollection)
	require.NoError(t, store.EnsureIndex(ctx, IndexSpec{Field: "callsign", Unique: true}))
	s := NewStationRepository(store)

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	ok, err := s.Exists(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	created, err := s.Init(ctx, &models.StationInfo{Operator: "Op", Location: "Baku", Grid: "LN40", License: "Cat 1", Status: models.StatusOnline})
	require.NoError(t, err)
	require.True(t, created)

	created, err = s.Init(ctx, &models.StationInfo{Operator: "Other"})
	require.NoError(t, err)
	require.False(t, created)

	info, err := s.Update(ctx, models.Patch{Set: map[string]any{"status": models.StatusOffline}, Unset: []string{"frequency"}})
	require.NoError(t, err)
	require.Equal(t, models.StatusOffline, info.Status)
	require.Equal(t, "Op", info.Operator)
	require.Equal(t, models.StationCallsign, info.Callsign)

	n, err := store.Count(ctx, bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

type brokenStore struct{ *MemoryStore }

var errDown = errors.New("connection refused")

func (b brokenStore) FindOne(context.Context, bson.M) (bson.Raw, error) { return nil, errDown }
func (b brokenStore) InsertOne(context.Context, any) error              { return errDown }

func TestRepository_FaultsAreWrapped(t *testing.T) {
	ctx := context.Background()
	r := New[models.QSLCard](brokenStore{NewMemoryStore(QSLCardsCollection)})

	_, err := r.Get(ctx, "x")
	require.True(t, IsFault(err))
	require.ErrorIs(t, err, errDown)
	require.Contains(t, err.Error(), "find qsl_cards")

	_, err = r.Create(ctx, &models.QSLCard{Image: "i", Year: "2024", Design: "d"})
	require.True(t, IsFault(err))
}

func TestNow_MillisecondUTC(t *testing.T) {
	n := Now()
	require.Equal(t, time.UTC, n.Location())
	require.Zero(t, n.Nanosecond()%int(time.Millisecond))
}
