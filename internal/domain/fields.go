package domain

import (
	"fmt"
	"strconv"
)

// FieldValue is a resolved exact-match filter: a store column name paired
// with a typed value.
type FieldValue struct {
	Column string
	Value  interface{}
}

// FieldSpec maps an external field name onto a store column. Parse converts
// the raw path value into the column's type; a nil Parse passes the string
// through verbatim.
type FieldSpec struct {
	Column string
	Parse  func(raw string) (interface{}, error)
}

// FieldSet is an allow-list of external field names. Any name outside the
// set is rejected before a query or update is built, so request input never
// reaches the store untyped.
type FieldSet map[string]FieldSpec

// Resolve validates a field name from the request path and builds the
// exact-match filter for it.
func (fs FieldSet) Resolve(field, raw string) (FieldValue, error) {
	spec, ok := fs[field]
	if !ok {
		return FieldValue{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if spec.Parse == nil {
		return FieldValue{Column: spec.Column, Value: raw}, nil
	}
	value, err := spec.Parse(raw)
	if err != nil {
		return FieldValue{}, &ValidationError{Field: field, Message: "valor no válido"}
	}
	return FieldValue{Column: spec.Column, Value: value}, nil
}

// FilterChanges keeps only the allow-listed entries of an update body,
// renamed to their store columns. Unknown fields are dropped silently.
func (fs FieldSet) FilterChanges(body map[string]interface{}) map[string]interface{} {
	changes := make(map[string]interface{})
	for name, spec := range fs {
		if value, ok := body[name]; ok {
			changes[spec.Column] = value
		}
	}
	return changes
}

// ParseIntField parses a path value for an integer column.
func ParseIntField(raw string) (interface{}, error) {
	return strconv.Atoi(raw)
}

func merged(sets ...FieldSet) FieldSet {
	out := make(FieldSet)
	for _, fs := range sets {
		for name, spec := range fs {
			out[name] = spec
		}
	}
	return out
}
