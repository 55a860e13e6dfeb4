package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/theramatch/theramatch-backend/internal/query"
)

func TestMemoryInsertAssignsID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "user", bson.M{"name": "a"})
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	doc, err := m.FindOne(ctx, "user", query.Eq{Field: "_id", Value: id})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "a", doc["name"])
	assert.IsType(t, time.Time{}, doc["created_at"], "created_at is stamped at insert")
}

func TestMemoryFindOneAbsentIsNotAnError(t *testing.T) {
	m := NewMemory()

	doc, err := m.FindOne(context.Background(), "user", query.Eq{Field: "name", Value: "nobody"})
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryFindManyFiltersSortsAndLimits(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, entry := range []bson.M{
		{"client_email": "sam@example.com", "title": "b", "created_at": time.Unix(200, 0)},
		{"client_email": "sam@example.com", "title": "a", "created_at": time.Unix(100, 0)},
		{"client_email": "other@example.com", "title": "x", "created_at": time.Unix(300, 0)},
		{"client_email": "sam@example.com", "title": "c", "created_at": time.Unix(300, 0)},
	} {
		_, err := m.Insert(ctx, "journalentry", entry)
		require.NoError(t, err)
	}

	pred := query.Journal(query.JournalParams{ClientEmail: "sam@example.com"})
	docs, err := m.FindMany(ctx, "journalentry", pred, FindOptions{SortField: "created_at", SortDesc: true})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "c", docs[0]["title"])
	assert.Equal(t, "b", docs[1]["title"])
	assert.Equal(t, "a", docs[2]["title"])

	limited, err := m.FindMany(ctx, "journalentry", pred, FindOptions{SortField: "created_at", Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "a", limited[0]["title"])
}

func TestMemoryEmptyPredicateReturnsAll(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := m.Insert(ctx, "user", bson.M{"n": i})
		require.NoError(t, err)
	}

	docs, err := m.FindMany(ctx, "user", query.MatchAll{}, FindOptions{})
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestMemoryCollections(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Insert(ctx, "user", bson.M{})
	require.NoError(t, err)
	_, err = m.Insert(ctx, "bookingrequest", bson.M{})
	require.NoError(t, err)

	names, err := m.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bookingrequest", "user"}, names)
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "user", bson.M{"name": "a"})
	require.NoError(t, err)

	doc, err := m.FindOne(ctx, "user", query.Eq{Field: "_id", Value: id})
	require.NoError(t, err)
	doc["name"] = "mutated"

	again, err := m.FindOne(ctx, "user", query.Eq{Field: "_id", Value: id})
	require.NoError(t, err)
	assert.Equal(t, "a", again["name"])
}
