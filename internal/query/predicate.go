// Package query builds store-native filter predicates from search parameters.
//
// Predicates are a small boolean tree with two lowerings: BSON() produces a
// MongoDB filter document, Matches() evaluates the same semantics against an
// in-memory document. The search rules (case-insensitive substring matching,
// any-element matching on sequences, unset-means-unconstrained) live here
// rather than in Mongo query syntax, so the memory store and tests share them.
package query

import (
	"reflect"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Predicate interface {
	BSON() bson.M
	Matches(doc bson.M) bool
}

// MatchAll matches every document.
type MatchAll struct{}

func (MatchAll) BSON() bson.M        { return bson.M{} }
func (MatchAll) Matches(bson.M) bool { return true }

// Eq is direct equality on a stored value.
type Eq struct {
	Field string
	Value interface{}
}

func (p Eq) BSON() bson.M { return bson.M{p.Field: p.Value} }

func (p Eq) Matches(doc bson.M) bool {
	return reflect.DeepEqual(doc[p.Field], p.Value)
}

// ContainsFold is a case-insensitive substring match on a scalar string field.
type ContainsFold struct {
	Field  string
	Substr string
}

func (p ContainsFold) BSON() bson.M {
	return bson.M{p.Field: primitive.Regex{Pattern: regexp.QuoteMeta(p.Substr), Options: "i"}}
}

func (p ContainsFold) Matches(doc bson.M) bool {
	s, ok := doc[p.Field].(string)
	return ok && containsFold(s, p.Substr)
}

// AnyContainsFold matches when at least one element of a string sequence
// case-insensitively contains the substring.
type AnyContainsFold struct {
	Field  string
	Substr string
}

func (p AnyContainsFold) BSON() bson.M {
	return bson.M{p.Field: bson.M{"$elemMatch": bson.M{
		"$regex":   regexp.QuoteMeta(p.Substr),
		"$options": "i",
	}}}
}

func (p AnyContainsFold) Matches(doc bson.M) bool {
	for _, item := range elements(doc[p.Field]) {
		if s, ok := item.(string); ok && containsFold(s, p.Substr) {
			return true
		}
	}
	return false
}

// Or is the disjunction of its parts.
type Or []Predicate

func (p Or) BSON() bson.M {
	parts := make([]bson.M, len(p))
	for i, sub := range p {
		parts[i] = sub.BSON()
	}
	return bson.M{"$or": parts}
}

func (p Or) Matches(doc bson.M) bool {
	for _, sub := range p {
		if sub.Matches(doc) {
			return true
		}
	}
	return false
}

// And is the conjunction of its parts. Empty And matches every document.
type And []Predicate

func (p And) BSON() bson.M {
	merged := bson.M{}
	for _, sub := range p {
		for k, v := range sub.BSON() {
			if _, dup := merged[k]; dup {
				// Same key constrained twice; fall back to an explicit $and.
				parts := make([]bson.M, len(p))
				for i, s := range p {
					parts[i] = s.BSON()
				}
				return bson.M{"$and": parts}
			}
			merged[k] = v
		}
	}
	return merged
}

func (p And) Matches(doc bson.M) bool {
	for _, sub := range p {
		if !sub.Matches(doc) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func elements(v interface{}) []interface{} {
	switch items := v.(type) {
	case []interface{}:
		return items
	case bson.A:
		return items
	case []string:
		out := make([]interface{}, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out
	}
	return nil
}
