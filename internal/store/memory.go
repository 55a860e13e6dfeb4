package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theramatch/theramatch-backend/internal/query"
)

// Memory is an in-process Store backed by maps. Predicates are evaluated
// with their in-memory lowering, so it shares search semantics with Mongo.
// Used by tests and local development without a database.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]bson.M)}
}

func (m *Memory) Insert(_ context.Context, kind string, record bson.M) (primitive.ObjectID, error) {
	doc := stamped(record)
	id := primitive.NewObjectID()
	doc["_id"] = id

	m.mu.Lock()
	m.docs[kind] = append(m.docs[kind], doc)
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) FindOne(_ context.Context, kind string, pred query.Predicate) (bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.docs[kind] {
		if pred.Matches(doc) {
			return clone(doc), nil
		}
	}
	return nil, nil
}

func (m *Memory) FindMany(_ context.Context, kind string, pred query.Predicate, opts FindOptions) ([]bson.M, error) {
	m.mu.RLock()
	var out []bson.M
	for _, doc := range m.docs[kind] {
		if pred.Matches(doc) {
			out = append(out, clone(doc))
		}
	}
	m.mu.RUnlock()

	if opts.SortField != "" {
		sort.SliceStable(out, func(i, j int) bool {
			c := compareValues(out[i][opts.SortField], out[j][opts.SortField])
			if opts.SortDesc {
				return c > 0
			}
			return c < 0
		})
	}
	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *Memory) Collections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.docs))
	for kind := range m.docs {
		names = append(names, kind)
	}
	sort.Strings(names)
	return names, nil
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func compareValues(a, b interface{}) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}
