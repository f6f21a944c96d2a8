package seed

import (
	"context"
	"fmt"
	"sync"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/4k6ag/radio-station/backend/internal/repository"
	"github.com/4k6ag/radio-station/backend/internal/service"
	"github.com/4k6ag/radio-station/backend/pkg/logger"
	"github.com/4k6ag/radio-station/backend/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Result maps a collection name to the number of starter documents inserted.
type Result map[string]int

// Bootstrap ensures indexes and then seeds empty collections. It is safe to
// run on every startup.
func Bootstrap(ctx context.Context, svc *service.Service, c *repository.Collections) (Result, error) {
	if err := EnsureIndexes(ctx, c); err != nil {
		return nil, err
	}
	return Run(ctx, svc)
}

// EnsureIndexes creates the indexes used by lookups and listings. Creating
// an index that already exists changes nothing.
func EnsureIndexes(ctx context.Context, c *repository.Collections) error {
	specs := []struct {
		store repository.Store
		idx   repository.IndexSpec
	}{
		{c.Station, repository.IndexSpec{Field: "callsign", Unique: true}},
		{c.News, repository.IndexSpec{Field: "date", Descending: true}},
		{c.Guestbook, repository.IndexSpec{Field: "date", Descending: true}},
		{c.Contacts, repository.IndexSpec{Field: "created_at", Descending: true}},
		{c.Equipment, repository.IndexSpec{Field: "type"}},
		{c.Achievements, repository.IndexSpec{Field: "year"}},
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range specs {
		g.Go(func() error {
			if err := s.store.EnsureIndex(gctx, s.idx); err != nil {
				return &repository.FaultError{Op: "create index " + s.idx.Field, Collection: s.store.Name(), Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

// Run inserts the starter content into every collection that is empty. The
// station is checked by its callsign, the others by document count; existing
// documents are never modified.
func Run(ctx context.Context, svc *service.Service) (Result, error) {
	var (
		mu  sync.Mutex
		res = Result{}
	)
	record := func(collection string, n int) {
		mu.Lock()
		res[collection] = n
		mu.Unlock()
		if n > 0 {
			metrics.SeededDocuments.WithLabelValues(collection).Add(float64(n))
			logger.Infow("seeded starter documents", "collection", collection, "count", n)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := models.NewStationInfo(stationInfo)
		if err != nil {
			return err
		}
		created, err := svc.Station.Init(gctx, info)
		if err != nil {
			return err
		}
		if created {
			record(repository.StationCollection, 1)
		} else {
			record(repository.StationCollection, 0)
		}
		return nil
	})
	g.Go(func() error {
		n, err := seedAll(gctx, svc.Equipment, equipment, models.NewEquipment)
		record(repository.EquipmentCollection, n)
		return err
	})
	g.Go(func() error {
		n, err := seedAll(gctx, svc.QSLCards, qslCards, models.NewQSLCard)
		record(repository.QSLCardsCollection, n)
		return err
	})
	g.Go(func() error {
		n, err := seedAll(gctx, svc.Achievements, achievements, models.NewAchievement)
		record(repository.AchievementsCollection, n)
		return err
	})
	g.Go(func() error {
		n, err := seedAll(gctx, svc.News, news, func(c models.NewsCreate) (*models.News, error) {
			return models.NewNews(c, repository.Now())
		})
		record(repository.NewsCollection, n)
		return err
	})
	g.Go(func() error {
		n, err := seedAll(gctx, svc.Gallery, gallery, models.NewGallery)
		record(repository.GalleryCollection, n)
		return err
	})
	g.Go(func() error {
		n, err := seedAll(gctx, svc.Guestbook, guestbook, func(s guestbookSeed) (*models.Guestbook, error) {
			return models.NewGuestbook(s.entry, s.date)
		})
		record(repository.GuestbookCollection, n)
		return err
	})
	if err := g.Wait(); err != nil {
		return res, fmt.Errorf("seed: %w", err)
	}
	return res, nil
}

// seedAll inserts every item when the collection holds no documents.
func seedAll[C any, T any, PT repository.Document[T]](ctx context.Context, repo *repository.Repository[T, PT], items []C, build func(C) (PT, error)) (int, error) {
	n, err := repo.Count(ctx, nil)
	if err != nil || n > 0 {
		return 0, err
	}
	inserted := 0
	for _, item := range items {
		doc, err := build(item)
		if err != nil {
			return inserted, err
		}
		if _, err := repo.Create(ctx, doc); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
