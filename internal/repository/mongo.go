package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB collection. Ids are stored as
// plain strings in _id.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

// NewMongoCollections opens every governed collection of db.
func NewMongoCollections(db *mongo.Database) *Collections {
	return newCollections(func(name string) Store { return NewMongoStore(db.Collection(name)) })
}

func (m *MongoStore) Name() string { return m.col.Name() }

func (m *MongoStore) FindOne(ctx context.Context, filter bson.M) (bson.Raw, error) {
	raw, err := m.col.FindOne(ctx, filter).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (m *MongoStore) Find(ctx context.Context, filter bson.M, fo FindOptions) ([]bson.Raw, error) {
	opts := options.Find()
	if fo.SortField != "" {
		order := 1
		if fo.Descending {
			order = -1
		}
		opts.SetSort(bson.D{{Key: fo.SortField, Value: order}})
	}
	if fo.Skip > 0 {
		opts.SetSkip(fo.Skip)
	}
	if fo.Limit > 0 {
		opts.SetLimit(fo.Limit)
	}
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []bson.Raw{}
	for cur.Next(ctx) {
		// cur.Current is reused by the cursor
		out = append(out, append(bson.Raw(nil), cur.Current...))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return m.col.CountDocuments(ctx, filter)
}

func (m *MongoStore) InsertOne(ctx context.Context, doc any) error {
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return err
	}
	return nil
}

func (m *MongoStore) UpdateOne(ctx context.Context, filter, update bson.M) (bson.Raw, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	raw, err := m.col.FindOneAndUpdate(ctx, filter, update, opts).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (m *MongoStore) DeleteOne(ctx context.Context, filter bson.M) error {
	res, err := m.col.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndex is idempotent: creating an identical index is a no-op in MongoDB.
func (m *MongoStore) EnsureIndex(ctx context.Context, idx IndexSpec) error {
	order := 1
	if idx.Descending {
		order = -1
	}
	model := mongo.IndexModel{Keys: bson.D{{Key: idx.Field, Value: order}}}
	if idx.Unique {
		model.Options = options.Index().SetUnique(true)
	}
	_, err := m.col.Indexes().CreateOne(ctx, model)
	return err
}

func (m *MongoStore) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
