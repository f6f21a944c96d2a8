package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestOptional_DistinguishesAbsentNullAndValue(t *testing.T) {
	var u EquipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"IC-7300","power":null}`), &u))

	require.True(t, u.Name.HasValue())
	require.Equal(t, "IC-7300", u.Name.Value)
	require.True(t, u.Power.Set)
	require.True(t, u.Power.Null)
	require.False(t, u.Gain.Set)
	require.False(t, u.Type.Set)
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Optional[string] `json:"a"`
		B Optional[string] `json:"b"`
	}{A: Some("x"), B: Null[string]()})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":"x","b":null}`, string(b))
}

func TestEquipmentUpdate_Patch(t *testing.T) {
	u := EquipmentUpdate{
		Specs: Some("100W, HF/6m"),
		Gain:  Null[string](),
	}
	p, err := u.Patch()
	require.NoError(t, err)
	require.Equal(t, map[string]any{"specs": "100W, HF/6m"}, p.Set)
	require.Equal(t, []string{"gain"}, p.Unset)
	require.False(t, p.Empty())

	p, err = EquipmentUpdate{}.Patch()
	require.NoError(t, err)
	require.True(t, p.Empty())
}

func TestEquipmentUpdate_RejectsBadValues(t *testing.T) {
	_, err := EquipmentUpdate{Type: Some(EquipmentType("laser"))}.Patch()
	require.Error(t, err)
	require.Equal(t, []string{"type"}, fieldNames(t, err))
	require.Contains(t, err.Error(), "must be one of: transceiver, antenna, amplifier, other")

	_, err = EquipmentUpdate{Name: Null[string](), Specs: Some("")}.Patch()
	require.ElementsMatch(t, []string{"name", "specs"}, fieldNames(t, err))
}

func TestNewEquipment_Validation(t *testing.T) {
	_, err := NewEquipment(EquipmentCreate{Type: "radar", Name: "x", Specs: "y"})
	require.Equal(t, []string{"type"}, fieldNames(t, err))

	_, err = NewEquipment(EquipmentCreate{})
	require.ElementsMatch(t, []string{"type", "name", "specs"}, fieldNames(t, err))

	e, err := NewEquipment(EquipmentCreate{Type: EquipmentAntenna, Name: "Yagi", Specs: "3 el"})
	require.NoError(t, err)
	require.Empty(t, e.ID)
	require.Nil(t, e.Power)
}

func TestNewStationInfo_DefaultsOnline(t *testing.T) {
	s, err := NewStationInfo(StationInfoCreate{Operator: "Op", Location: "Baku", Grid: "LN40", License: "Cat 1"})
	require.NoError(t, err)
	require.Equal(t, StationCallsign, s.Callsign)
	require.Equal(t, StatusOnline, s.Status)

	_, err = NewStationInfo(StationInfoCreate{Operator: "Op", Location: "Baku", Grid: "LN40", License: "Cat 1", Status: "busy"})
	require.Equal(t, []string{"status"}, fieldNames(t, err))
}

func TestStationStatusUpdate_RequiresStatus(t *testing.T) {
	_, err := StationStatusUpdate{Frequency: Some("14.205")}.Patch()
	require.Equal(t, []string{"status"}, fieldNames(t, err))

	_, err = StationStatusUpdate{Status: Null[StationStatus]()}.Patch()
	require.Equal(t, []string{"status"}, fieldNames(t, err))

	p, err := StationStatusUpdate{Status: Some(StatusOffline), Mode: Null[string]()}.Patch()
	require.NoError(t, err)
	require.Equal(t, StatusOffline, p.Set["status"])
	require.Equal(t, []string{"mode"}, p.Unset)
}

func TestStatusInfo_Projection(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := "7.100"
	s := &StationInfo{Base: Base{UpdatedAt: now}, Status: StatusOnline, Frequency: &f}
	st := s.StatusInfo()
	require.Equal(t, StatusOnline, st.Status)
	require.Equal(t, now, st.LastUpdated)
	require.Equal(t, &f, st.Frequency)
	require.Nil(t, st.Mode)

	require.Equal(t, StatusOffline, (&StationInfo{}).StatusInfo().Status)
}

func TestNewNews_Defaults(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	n, err := NewNews(NewsCreate{Title: "t", Content: "c"}, now)
	require.NoError(t, err)
	require.Equal(t, now, n.Date)
	require.Equal(t, NewsGeneral, n.Category)

	_, err = NewNews(NewsCreate{Title: "t", Content: "c", Category: "weather"}, now)
	require.Equal(t, []string{"category"}, fieldNames(t, err))
}

func TestClientDatesKeepMilliseconds(t *testing.T) {
	d := time.Date(2024, 1, 15, 10, 0, 0, 123456789, time.FixedZone("AZT", 4*3600))
	n, err := NewNews(NewsCreate{Title: "t", Content: "c", Date: &d}, time.Now())
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 6, 0, 0, 123000000, time.UTC), n.Date)

	r, err := NewContactRequest(ContactRequestCreate{Name: "A", Email: "a@example.com", Message: "m", Date: &d})
	require.NoError(t, err)
	require.Equal(t, n.Date, *r.Date)
}

func TestNewGuestbook_ApprovedAndDated(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	g, err := NewGuestbook(GuestbookCreate{Name: "John", Message: "73"}, now)
	require.NoError(t, err)
	require.True(t, g.Approved)
	require.Equal(t, now, g.Date)
}

func TestNewContactRequest_Email(t *testing.T) {
	_, err := NewContactRequest(ContactRequestCreate{Name: "A", Email: "not-an-email", Message: "hi"})
	require.Equal(t, []string{"email"}, fieldNames(t, err))
	require.Contains(t, err.Error(), "must be a valid email address")

	r, err := NewContactRequest(ContactRequestCreate{Name: "A", Email: "a@example.com", Message: "hi", QSLRequest: true})
	require.NoError(t, err)
	require.True(t, r.QSLRequest)
	require.Nil(t, r.Date)
}

func TestStamp_KeepsPresetFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var b Base
	b.Stamp("id-1", now)
	require.Equal(t, "id-1", b.ID)
	require.Equal(t, now, b.CreatedAt)
	require.Equal(t, now, b.UpdatedAt)

	earlier := now.Add(-time.Hour)
	b2 := Base{ID: "fixed", CreatedAt: earlier}
	b2.Stamp("ignored", now)
	require.Equal(t, "fixed", b2.ID)
	require.Equal(t, earlier, b2.CreatedAt)
	require.Equal(t, earlier, b2.UpdatedAt)
}

func i64(n int64) *int64 { return &n }

func TestPageBounds(t *testing.T) {
	p, err := NewsPageBounds.Page(PageQuery{})
	require.NoError(t, err)
	require.Equal(t, Page{Limit: 10}, p)

	p, err = GuestbookPageBounds.Page(PageQuery{Limit: i64(100), Offset: i64(40)})
	require.NoError(t, err)
	require.Equal(t, Page{Limit: 100, Offset: 40}, p)

	_, err = NewsPageBounds.Page(PageQuery{Limit: i64(51)})
	require.Equal(t, []string{"limit"}, fieldNames(t, err))
	require.Contains(t, err.Error(), "must be <= 50")

	_, err = NewsPageBounds.Page(PageQuery{Limit: i64(0), Offset: i64(-1)})
	require.Equal(t, []string{"limit", "offset"}, fieldNames(t, err))
	require.Contains(t, err.Error(), "must be >= 1")
	require.Contains(t, err.Error(), "must be >= 0")
}

func TestIsValidation(t *testing.T) {
	require.True(t, IsValidation(NewValidationError("x", "bad")))
	require.False(t, IsValidation(nil))
}
