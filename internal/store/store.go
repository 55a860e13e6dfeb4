// Package store is the document-access layer between validated records and
// MongoDB. Collections are named after entity kinds and carry no schema of
// their own; validation happens before records reach this package.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theramatch/theramatch-backend/internal/query"
)

// FindOptions control sorting and result size for FindMany.
type FindOptions struct {
	SortField string
	SortDesc  bool
	Limit     int64
}

// Store is the document store consumed by the handlers. It is passed
// explicitly to everything that needs it; there is no package-level handle.
type Store interface {
	// Insert stores a record under kind and returns its native identifier.
	Insert(ctx context.Context, kind string, record bson.M) (primitive.ObjectID, error)
	// FindOne returns the first match, or (nil, nil) when nothing matches.
	FindOne(ctx context.Context, kind string, pred query.Predicate) (bson.M, error)
	FindMany(ctx context.Context, kind string, pred query.Predicate, opts FindOptions) ([]bson.M, error)
	// Collections lists the kinds holding documents, for introspection.
	Collections(ctx context.Context) ([]string, error)
}

// Mongo implements Store over a mongo database handle.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Insert(ctx context.Context, kind string, record bson.M) (primitive.ObjectID, error) {
	res, err := m.db.Collection(kind).InsertOne(ctx, stamped(record))
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *Mongo) FindOne(ctx context.Context, kind string, pred query.Predicate) (bson.M, error) {
	var doc bson.M
	err := m.db.Collection(kind).FindOne(ctx, pred.BSON()).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *Mongo) FindMany(ctx context.Context, kind string, pred query.Predicate, opts FindOptions) ([]bson.M, error) {
	findOpts := options.Find()
	if opts.SortField != "" {
		dir := 1
		if opts.SortDesc {
			dir = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: dir}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := m.db.Collection(kind).Find(ctx, pred.BSON(), findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

// stamped copies the record and sets created_at if the caller didn't.
// List endpoints sort on it.
func stamped(record bson.M) bson.M {
	doc := make(bson.M, len(record)+1)
	for k, v := range record {
		doc[k] = v
	}
	if _, ok := doc["created_at"]; !ok {
		doc["created_at"] = time.Now().UTC()
	}
	return doc
}
