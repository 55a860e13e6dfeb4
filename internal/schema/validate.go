package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Local part, "@", domain with at least one dot.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Rule is a business rule evaluated against a validated record, layered on
// top of structural validation by write paths that need it (e.g. the
// therapist-directory write path requires role == "therapist").
type Rule struct {
	Name  string
	Check func(rec bson.M) bool
}

// OneOf builds a rule requiring a string field to hold one of the given values.
func OneOf(field string, values ...string) Rule {
	return Rule{
		Name: fmt.Sprintf("%s must be one of %s", field, strings.Join(values, "|")),
		Check: func(rec bson.M) bool {
			s, ok := rec[field].(string)
			if !ok {
				return false
			}
			for _, v := range values {
				if s == v {
					return true
				}
			}
			return false
		},
	}
}

// Validate checks raw input against the schema for kind and produces a typed
// record ready for insertion. Unknown fields in the input are ignored.
// Sequence fields default to empty, declared defaults are applied, and
// optional fields absent from the input stay absent from the record.
// Any supplied rules run after structural validation succeeds.
func (r *Registry) Validate(kind string, raw map[string]interface{}, rules ...Rule) (bson.M, error) {
	s, err := r.Describe(kind)
	if err != nil {
		return nil, err
	}

	rec := bson.M{}
	for _, f := range s.Fields {
		v, present := raw[f.Name]
		if !present || v == nil {
			switch {
			case f.Type == StringList:
				rec[f.Name] = []string{}
			case f.Default != nil:
				rec[f.Name] = f.Default
			case f.Optional:
				// no stored value, not a null placeholder
			default:
				return nil, MissingFieldError{Field: f.Name}
			}
			continue
		}

		typed, err := coerce(f, v)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = typed
	}

	for _, rule := range rules {
		if !rule.Check(rec) {
			return nil, BusinessRuleError{Rule: rule.Name}
		}
	}
	return rec, nil
}

func coerce(f Field, v interface{}) (interface{}, error) {
	switch f.Type {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, InvalidFormatError{Field: f.Name}
		}
		return s, nil

	case Email:
		s, ok := v.(string)
		if !ok {
			return nil, InvalidFormatError{Field: f.Name}
		}
		s = strings.TrimSpace(s)
		if !emailPattern.MatchString(s) {
			return nil, InvalidFormatError{Field: f.Name}
		}
		return s, nil

	case Int:
		n, ok := intValue(v)
		if !ok {
			return nil, InvalidFormatError{Field: f.Name}
		}
		if f.Min != nil && f.Max != nil && (n < *f.Min || n > *f.Max) {
			return nil, RangeError{Field: f.Name, Min: *f.Min, Max: *f.Max}
		}
		return n, nil

	case Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, InvalidFormatError{Field: f.Name}
		}
		return b, nil

	case StringList:
		items, ok := anySlice(v)
		if !ok {
			return nil, InvalidFormatError{Field: f.Name}
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, InvalidFormatError{Field: f.Name}
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, InvalidFormatError{Field: f.Name}
}

// intValue accepts the numeric shapes JSON decoding and Go callers produce.
// Non-integral floats are rejected.
func intValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func anySlice(v interface{}) ([]interface{}, bool) {
	switch items := v.(type) {
	case []interface{}:
		return items, true
	case bson.A:
		return items, true
	case []string:
		out := make([]interface{}, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
