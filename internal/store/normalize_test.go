package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeMovesNativeID(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{"_id": oid, "name": "Dr. Maya Patel"}

	out := Normalize(doc)

	assert.Equal(t, oid.Hex(), out["id"])
	_, hasNative := out["_id"]
	assert.False(t, hasNative)
	assert.Equal(t, "Dr. Maya Patel", out["name"])
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	oid := primitive.NewObjectID()
	ref := primitive.NewObjectID()
	doc := bson.M{"_id": oid, "therapist_id": ref}

	_ = Normalize(doc)

	assert.Equal(t, oid, doc["_id"])
	assert.Equal(t, ref, doc["therapist_id"])
}

func TestNormalizeRewritesNestedIdentifiers(t *testing.T) {
	ref := primitive.NewObjectID()
	inList := primitive.NewObjectID()
	doc := bson.M{
		"_id":          primitive.NewObjectID(),
		"therapist_id": ref,
		"related":      bson.A{inList, "plain-string", 7},
	}

	out := Normalize(doc)

	assert.Equal(t, ref.Hex(), out["therapist_id"])
	related, ok := out["related"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, inList.Hex(), related[0])
	assert.Equal(t, "plain-string", related[1])
	assert.Equal(t, 7, related[2])
}

func TestNormalizeIdempotent(t *testing.T) {
	doc := bson.M{
		"_id":          primitive.NewObjectID(),
		"therapist_id": primitive.NewObjectID(),
		"specialties":  bson.A{"CBT", "Trauma"},
	}

	once := Normalize(doc)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeEmptyIsNoOp(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Equal(t, bson.M{}, Normalize(bson.M{}))
}

func TestNormalizeAllYieldsEmptySliceNotNil(t *testing.T) {
	out := NormalizeAll(nil)
	require.NotNil(t, out)
	assert.Len(t, out, 0)
}
