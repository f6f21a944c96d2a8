package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names in the document store.
const (
	StationCollection      = "station_info"
	EquipmentCollection    = "equipment"
	QSLCardsCollection     = "qsl_cards"
	AchievementsCollection = "achievements"
	NewsCollection         = "news"
	GalleryCollection      = "gallery"
	GuestbookCollection    = "guestbook"
	ContactsCollection     = "contact_requests"
)

// FindOptions controls ordering and paging of Find. Limit <= 0 means no limit.
type FindOptions struct {
	SortField  string
	Descending bool
	Skip       int64
	Limit      int64
}

// IndexSpec describes a single-field index.
type IndexSpec struct {
	Field      string
	Descending bool
	Unique     bool
}

// Store is the raw document-store surface of one collection. Documents cross
// it as BSON so the Mongo and in-memory implementations behave identically.
type Store interface {
	Name() string
	FindOne(ctx context.Context, filter bson.M) (bson.Raw, error)
	Find(ctx context.Context, filter bson.M, opts FindOptions) ([]bson.Raw, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	InsertOne(ctx context.Context, doc any) error
	// UpdateOne applies update ($set/$unset) to the first match and returns
	// the document after the update.
	UpdateOne(ctx context.Context, filter, update bson.M) (bson.Raw, error)
	DeleteOne(ctx context.Context, filter bson.M) error
	EnsureIndex(ctx context.Context, idx IndexSpec) error
	Ping(ctx context.Context) error
}

// Collections groups the stores of every governed collection.
type Collections struct {
	Station      Store
	Equipment    Store
	QSLCards     Store
	Achievements Store
	News         Store
	Gallery      Store
	Guestbook    Store
	Contacts     Store
}

// All returns every store, station first.
func (c *Collections) All() []Store {
	return []Store{c.Station, c.Equipment, c.QSLCards, c.Achievements, c.News, c.Gallery, c.Guestbook, c.Contacts}
}

func newCollections(open func(name string) Store) *Collections {
	return &Collections{
		Station:      open(StationCollection),
		Equipment:    open(EquipmentCollection),
		QSLCards:     open(QSLCardsCollection),
		Achievements: open(AchievementsCollection),
		News:         open(NewsCollection),
		Gallery:      open(GalleryCollection),
		Guestbook:    open(GuestbookCollection),
		Contacts:     open(ContactsCollection),
	}
}
