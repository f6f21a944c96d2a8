package service

import (
	"context"
	"time"

	"github.com/4k6ag/radio-station/backend/internal/models"
	"github.com/4k6ag/radio-station/backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// ContactAck is the message returned for every accepted contact request.
const ContactAck = "Message sent successfully! We will reply within 24 hours."

type (
	equipmentRepo   = repository.Repository[models.Equipment, *models.Equipment]
	qslRepo         = repository.Repository[models.QSLCard, *models.QSLCard]
	achievementRepo = repository.Repository[models.Achievement, *models.Achievement]
	newsRepo        = repository.Repository[models.News, *models.News]
	galleryRepo     = repository.Repository[models.Gallery, *models.Gallery]
	guestbookRepo   = repository.Repository[models.Guestbook, *models.Guestbook]
	contactRepo     = repository.Repository[models.ContactRequest, *models.ContactRequest]
)

// Service implements the content operations on top of the repositories.
// Every input is validated by the models layer before the store is touched.
type Service struct {
	stores *repository.Collections

	Station      *repository.StationRepository
	Equipment    *equipmentRepo
	QSLCards     *qslRepo
	Achievements *achievementRepo
	News         *newsRepo
	Gallery      *galleryRepo
	Guestbook    *guestbookRepo
	Contacts     *contactRepo

	now func() time.Time
}

// New builds the service over the given collections.
func New(c *repository.Collections) *Service {
	return &Service{
		stores:       c,
		Station:      repository.NewStationRepository(c.Station),
		Equipment:    repository.New[models.Equipment](c.Equipment),
		QSLCards:     repository.New[models.QSLCard](c.QSLCards),
		Achievements: repository.New[models.Achievement](c.Achievements),
		News:         repository.New[models.News](c.News),
		Gallery:      repository.New[models.Gallery](c.Gallery),
		Guestbook:    repository.New[models.Guestbook](c.Guestbook),
		Contacts:     repository.New[models.ContactRequest](c.Contacts),
		now:          repository.Now,
	}
}

// WithClock replaces the timestamp source of the service and every repository.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.Station.WithClock(now)
	s.Equipment.WithClock(now)
	s.QSLCards.WithClock(now)
	s.Achievements.WithClock(now)
	s.News.WithClock(now)
	s.Gallery.WithClock(now)
	s.Guestbook.WithClock(now)
	s.Contacts.WithClock(now)
	return s
}

// Ping checks that the document store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.stores.Station.Ping(ctx)
}

// --- station ---

func (s *Service) GetStation(ctx context.Context) (*models.StationInfo, error) {
	return s.Station.Get(ctx)
}

func (s *Service) UpdateStation(ctx context.Context, u models.StationInfoUpdate) (*models.StationInfo, error) {
	patch, err := u.Patch()
	if err != nil {
		return nil, err
	}
	return s.Station.Update(ctx, patch)
}

func (s *Service) GetStatus(ctx context.Context) (*models.StationStatusInfo, error) {
	info, err := s.Station.Get(ctx)
	if err != nil {
		return nil, err
	}
	st := info.StatusInfo()
	return &st, nil
}

func (s *Service) UpdateStatus(ctx context.Context, u models.StationStatusUpdate) (*models.StationStatusInfo, error) {
	patch, err := u.Patch()
	if err != nil {
		return nil, err
	}
	info, err := s.Station.Update(ctx, patch)
	if err != nil {
		return nil, err
	}
	st := info.StatusInfo()
	return &st, nil
}

// --- equipment ---

func (s *Service) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	items, _, err := s.Equipment.List(ctx, nil, repository.FindOptions{Limit: models.ListCap})
	return items, err
}

func (s *Service) GetEquipment(ctx context.Context, id string) (*models.Equipment, error) {
	return s.Equipment.Get(ctx, id)
}

func (s *Service) CreateEquipment(ctx context.Context, c models.EquipmentCreate) (*models.Equipment, error) {
	e, err := models.NewEquipment(c)
	if err != nil {
		return nil, err
	}
	return s.Equipment.Create(ctx, e)
}

func (s *Service) UpdateEquipment(ctx context.Context, id string, u models.EquipmentUpdate) (*models.Equipment, error) {
	patch, err := u.Patch()
	if err != nil {
		return nil, err
	}
	return s.Equipment.Update(ctx, id, patch)
}

func (s *Service) DeleteEquipment(ctx context.Context, id string) error {
	return s.Equipment.Delete(ctx, id)
}

// --- QSL cards, achievements, gallery ---

func (s *Service) ListQSLCards(ctx context.Context) ([]models.QSLCard, error) {
	items, _, err := s.QSLCards.List(ctx, nil, repository.FindOptions{SortField: "year", Descending: true, Limit: models.ListCap})
	return items, err
}

func (s *Service) CreateQSLCard(ctx context.Context, c models.QSLCardCreate) (*models.QSLCard, error) {
	q, err := models.NewQSLCard(c)
	if err != nil {
		return nil, err
	}
	return s.QSLCards.Create(ctx, q)
}

func (s *Service) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	items, _, err := s.Achievements.List(ctx, nil, repository.FindOptions{SortField: "year", Descending: true, Limit: models.ListCap})
	return items, err
}

func (s *Service) CreateAchievement(ctx context.Context, c models.AchievementCreate) (*models.Achievement, error) {
	a, err := models.NewAchievement(c)
	if err != nil {
		return nil, err
	}
	return s.Achievements.Create(ctx, a)
}

func (s *Service) ListGallery(ctx context.Context) ([]models.Gallery, error) {
	items, _, err := s.Gallery.List(ctx, nil, repository.FindOptions{SortField: "created_at", Descending: true, Limit: models.ListCap})
	return items, err
}

func (s *Service) CreateGallery(ctx context.Context, c models.GalleryCreate) (*models.Gallery, error) {
	g, err := models.NewGallery(c)
	if err != nil {
		return nil, err
	}
	return s.Gallery.Create(ctx, g)
}

// --- news ---

func (s *Service) ListNews(ctx context.Context, p models.Page) (*models.NewsResponse, error) {
	items, total, err := s.News.List(ctx, nil, repository.FindOptions{SortField: "date", Descending: true, Skip: p.Offset, Limit: p.Limit})
	if err != nil {
		return nil, err
	}
	return &models.NewsResponse{News: items, Total: total}, nil
}

func (s *Service) CreateNews(ctx context.Context, c models.NewsCreate) (*models.News, error) {
	n, err := models.NewNews(c, s.now())
	if err != nil {
		return nil, err
	}
	return s.News.Create(ctx, n)
}

// --- guestbook ---

func approvedOnly() bson.M { return bson.M{"approved": true} }

// ListGuestbook pages through approved entries only.
func (s *Service) ListGuestbook(ctx context.Context, p models.Page) (*models.GuestbookResponse, error) {
	items, total, err := s.Guestbook.List(ctx, approvedOnly(), repository.FindOptions{SortField: "date", Descending: true, Skip: p.Offset, Limit: p.Limit})
	if err != nil {
		return nil, err
	}
	return &models.GuestbookResponse{Entries: items, Total: total}, nil
}

func (s *Service) CreateGuestbook(ctx context.Context, c models.GuestbookCreate) (*models.Guestbook, error) {
	g, err := models.NewGuestbook(c, s.now())
	if err != nil {
		return nil, err
	}
	return s.Guestbook.Create(ctx, g)
}

// --- contact requests ---

func (s *Service) CreateContact(ctx context.Context, c models.ContactRequestCreate) (*models.ContactResponse, error) {
	r, err := models.NewContactRequest(c)
	if err != nil {
		return nil, err
	}
	if _, err := s.Contacts.Create(ctx, r); err != nil {
		return nil, err
	}
	return &models.ContactResponse{Success: true, Message: ContactAck, ID: r.ID}, nil
}

// ListContactRequests returns the newest requests first (admin view).
func (s *Service) ListContactRequests(ctx context.Context, p models.Page) ([]models.ContactRequest, error) {
	items, _, err := s.Contacts.List(ctx, nil, repository.FindOptions{SortField: "created_at", Descending: true, Skip: p.Offset, Limit: p.Limit})
	return items, err
}
