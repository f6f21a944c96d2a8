package repository

import (
	"context"
	"errors"
	"time"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// StationRepository is the accessor for the single StationInfo document. It
// only ever addresses the document by its fixed callsign, never by id.
type StationRepository struct {
	repo *Repository[models.StationInfo, *models.StationInfo]
}

func NewStationRepository(store Store) *StationRepository {
	return &StationRepository{repo: New[models.StationInfo](store)}
}

func (s *StationRepository) WithClock(now func() time.Time) *StationRepository {
	s.repo.WithClock(now)
	return s
}

func stationFilter() bson.M { return bson.M{"callsign": models.StationCallsign} }

// Get returns the station document or ErrNotFound.
func (s *StationRepository) Get(ctx context.Context) (*models.StationInfo, error) {
	return s.repo.GetOne(ctx, stationFilter())
}

// Exists reports whether the station document is present.
func (s *StationRepository) Exists(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx, stationFilter())
	return n > 0, err
}

// Update applies patch to the station document (last write wins).
func (s *StationRepository) Update(ctx context.Context, patch models.Patch) (*models.StationInfo, error) {
	return s.repo.UpdateOne(ctx, stationFilter(), patch)
}

// Init inserts info when no station document exists yet. It reports whether a
// document was created; a concurrent insert losing on the unique callsign
// index counts as already present.
func (s *StationRepository) Init(ctx context.Context, info *models.StationInfo) (bool, error) {
	ok, err := s.Exists(ctx)
	if err != nil || ok {
		return false, err
	}
	info.Callsign = models.StationCallsign
	if _, err := s.repo.Create(ctx, info); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
