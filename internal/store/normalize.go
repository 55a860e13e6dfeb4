package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Normalize rewrites a raw store document for the outside world: the native
// "_id" moves to "id" as its hex string, and every other ObjectID-valued
// field, including elements of sequences, becomes a plain string. The input
// is never mutated, and normalizing an already-normalized document (or a
// nil/empty one) is a no-op.
func Normalize(doc bson.M) bson.M {
	if len(doc) == 0 {
		return doc
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = externalValue(v)
	}
	if id, ok := doc["_id"]; ok {
		out["id"] = externalID(id)
	}
	return out
}

// NormalizeAll normalizes a result set, always yielding a non-nil slice so
// empty lists encode as [] rather than null.
func NormalizeAll(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Normalize(doc))
	}
	return out
}

func externalID(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}

func externalValue(v interface{}) interface{} {
	switch x := v.(type) {
	case primitive.ObjectID:
		return x.Hex()
	case bson.A:
		return externalElements(x)
	case []interface{}:
		return externalElements(x)
	}
	return v
}

func externalElements(items []interface{}) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		if oid, ok := item.(primitive.ObjectID); ok {
			out[i] = oid.Hex()
		} else {
			out[i] = item
		}
	}
	return out
}
