package models

import "time"

// StationCallsign identifies the single StationInfo document.
const StationCallsign = "4K6AG"

// StationInfo is the station profile. Exactly one document exists, keyed by
// StationCallsign rather than by id.
type StationInfo struct {
	Base      `bson:",inline"`
	Callsign  string        `json:"callsign" bson:"callsign"`
	Operator  string        `json:"operator" bson:"operator"`
	Location  string        `json:"location" bson:"location"`
	Grid      string        `json:"grid" bson:"grid"`
	License   string        `json:"license" bson:"license"`
	Status    StationStatus `json:"status" bson:"status"`
	Frequency *string       `json:"frequency" bson:"frequency,omitempty"`
	Mode      *string       `json:"mode" bson:"mode,omitempty"`
}

// StationInfoCreate is the client-supplied part of a StationInfo.
type StationInfoCreate struct {
	Operator string        `json:"operator" validate:"required"`
	Location string        `json:"location" validate:"required"`
	Grid     string        `json:"grid" validate:"required"`
	License  string        `json:"license" validate:"required"`
	Status   StationStatus `json:"status" validate:"omitempty,oneof=online offline"`
}

// NewStationInfo validates c and applies defaults (status online).
func NewStationInfo(c StationInfoCreate) (*StationInfo, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	if c.Status == "" {
		c.Status = StatusOnline
	}
	return &StationInfo{
		Callsign: StationCallsign,
		Operator: c.Operator,
		Location: c.Location,
		Grid:     c.Grid,
		License:  c.License,
		Status:   c.Status,
	}, nil
}

// StationInfoUpdate is a partial update of the station profile.
type StationInfoUpdate struct {
	Operator  Optional[string]        `json:"operator"`
	Location  Optional[string]        `json:"location"`
	Grid      Optional[string]        `json:"grid"`
	License   Optional[string]        `json:"license"`
	Status    Optional[StationStatus] `json:"status"`
	Frequency Optional[string]        `json:"frequency"`
	Mode      Optional[string]        `json:"mode"`
}

func (u StationInfoUpdate) Patch() (Patch, error) {
	p, errs := newPatch(), []FieldError{}
	requiredField(&p, &errs, "operator", u.Operator, "")
	requiredField(&p, &errs, "location", u.Location, "")
	requiredField(&p, &errs, "grid", u.Grid, "")
	requiredField(&p, &errs, "license", u.License, "")
	requiredField(&p, &errs, "status", u.Status, stationStatusTag)
	nullableField(&p, "frequency", u.Frequency)
	nullableField(&p, "mode", u.Mode)
	return finish(p, errs)
}

// StationStatusInfo is the live-status projection of the station document.
type StationStatusInfo struct {
	Status      StationStatus `json:"status"`
	LastUpdated time.Time     `json:"last_updated"`
	Frequency   *string       `json:"frequency"`
	Mode        *string       `json:"mode"`
}

// StatusInfo projects the live status out of the station profile.
func (s *StationInfo) StatusInfo() StationStatusInfo {
	status := s.Status
	if status == "" {
		status = StatusOffline
	}
	return StationStatusInfo{
		Status:      status,
		LastUpdated: s.UpdatedAt,
		Frequency:   s.Frequency,
		Mode:        s.Mode,
	}
}

// StationStatusUpdate changes the on-air status; status itself is mandatory.
type StationStatusUpdate struct {
	Status    Optional[StationStatus] `json:"status"`
	Frequency Optional[string]        `json:"frequency"`
	Mode      Optional[string]        `json:"mode"`
}

func (u StationStatusUpdate) Patch() (Patch, error) {
	p, errs := newPatch(), []FieldError{}
	if !u.Status.Set {
		errs = append(errs, FieldError{Field: "status", Reason: "field required"})
	}
	requiredField(&p, &errs, "status", u.Status, stationStatusTag)
	nullableField(&p, "frequency", u.Frequency)
	nullableField(&p, "mode", u.Mode)
	return finish(p, errs)
}
