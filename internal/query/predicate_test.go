package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmptyConjunctionMatchesEverything(t *testing.T) {
	pred := And{}

	assert.Equal(t, bson.M{}, pred.BSON())

	docs := []bson.M{
		{"name": "a"},
		{"name": "b", "virtual": true},
		{},
	}
	for _, doc := range docs {
		assert.True(t, pred.Matches(doc))
	}
}

func TestContainsFoldIsCaseInsensitive(t *testing.T) {
	pred := ContainsFold{Field: "bio", Substr: "cbt"}

	assert.True(t, pred.Matches(bson.M{"bio": "Specializes in CBT and mindfulness"}))
	assert.True(t, pred.Matches(bson.M{"bio": "cbt"}))
	assert.False(t, pred.Matches(bson.M{"bio": "psychodynamic"}))
	assert.False(t, pred.Matches(bson.M{}), "absent field never matches")
}

func TestContainsFoldBSONQuotesMetacharacters(t *testing.T) {
	pred := ContainsFold{Field: "name", Substr: "a.b"}

	rx, ok := pred.BSON()["name"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, `a\.b`, rx.Pattern)
	assert.Equal(t, "i", rx.Options)
}

func TestAnyContainsFold(t *testing.T) {
	pred := AnyContainsFold{Field: "specialties", Substr: "cbt"}

	assert.True(t, pred.Matches(bson.M{"specialties": []string{"Trauma", "CBT"}}))
	assert.True(t, pred.Matches(bson.M{"specialties": bson.A{"Trauma", "CBT"}}))
	assert.True(t, pred.Matches(bson.M{"specialties": []interface{}{"cbt therapy"}}))
	assert.False(t, pred.Matches(bson.M{"specialties": []string{"Anxiety"}}))
	assert.False(t, pred.Matches(bson.M{"specialties": []string{}}))
	assert.False(t, pred.Matches(bson.M{}))

	expected := bson.M{"specialties": bson.M{"$elemMatch": bson.M{"$regex": "cbt", "$options": "i"}}}
	assert.Equal(t, expected, pred.BSON())
}

func TestEqMatchesStoredValues(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.True(t, Eq{Field: "_id", Value: oid}.Matches(bson.M{"_id": oid}))
	assert.True(t, Eq{Field: "virtual", Value: false}.Matches(bson.M{"virtual": false}))
	assert.False(t, Eq{Field: "virtual", Value: false}.Matches(bson.M{"virtual": true}))
	assert.False(t, Eq{Field: "virtual", Value: false}.Matches(bson.M{}))
}

func TestOrSemantics(t *testing.T) {
	pred := Or{
		ContainsFold{Field: "name", Substr: "maya"},
		ContainsFold{Field: "bio", Substr: "maya"},
	}

	assert.True(t, pred.Matches(bson.M{"name": "Dr. Maya Patel", "bio": ""}))
	assert.True(t, pred.Matches(bson.M{"name": "x", "bio": "works with Maya"}))
	assert.False(t, pred.Matches(bson.M{"name": "x", "bio": "y"}))

	parts, ok := pred.BSON()["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, parts, 2)
}

func TestAndMergesDistinctKeys(t *testing.T) {
	pred := And{
		Eq{Field: "role", Value: "therapist"},
		Eq{Field: "virtual", Value: true},
	}
	assert.Equal(t, bson.M{"role": "therapist", "virtual": true}, pred.BSON())
}

func TestAndFallsBackOnDuplicateKeys(t *testing.T) {
	pred := And{
		AnyContainsFold{Field: "specialties", Substr: "cbt"},
		AnyContainsFold{Field: "specialties", Substr: "trauma"},
	}

	filter := pred.BSON()
	parts, ok := filter["$and"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, parts, 2)

	// The in-memory evaluation still applies both constraints.
	assert.True(t, pred.Matches(bson.M{"specialties": []string{"CBT", "Trauma"}}))
	assert.False(t, pred.Matches(bson.M{"specialties": []string{"CBT"}}))
}
