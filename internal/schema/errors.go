package schema

import "fmt"

// UnknownKindError is returned when a kind has no registered schema.
type UnknownKindError struct {
	Kind string
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown entity kind %q", e.Kind)
}

// MissingFieldError is returned when a required field is absent or null.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidFormatError is returned when a field value has the wrong shape,
// e.g. a malformed email address or a non-string list element.
type InvalidFormatError struct {
	Field string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid value for field %q", e.Field)
}

// RangeError is returned when a bounded integer falls outside its
// inclusive [Min, Max] range.
type RangeError struct {
	Field string
	Min   int
	Max   int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("field %q must be between %d and %d", e.Field, e.Min, e.Max)
}

// BusinessRuleError is returned when a caller-supplied rule rejects an
// otherwise structurally valid record.
type BusinessRuleError struct {
	Rule string
}

func (e BusinessRuleError) Error() string {
	return e.Rule
}
