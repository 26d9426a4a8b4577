// Package domain holds the record shapes exchanged with the SpaceTraders API.
//
// Records are plain data composed from value types and closed enumerations.
// Decoding is strict: empty strings, out-of-range integers and unknown enum
// tags are rejected instead of being defaulted.
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEnum is matched by every UnknownEnumError.
var ErrUnknownEnum = errors.New("domain: unknown enum value")

// UnknownEnumError reports a wire tag that is not part of a closed enumeration.
type UnknownEnumError struct {
	Type  string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Type, e.Value)
}

func (e *UnknownEnumError) Is(target error) bool {
	return target == ErrUnknownEnum
}

// enumSet is the exhaustive table of tags for one enumeration.
type enumSet[T ~string] struct {
	name   string
	values map[T]struct{}
	order  []T
}

func newEnumSet[T ~string](name string, values ...T) enumSet[T] {
	set := enumSet[T]{name: name, values: make(map[T]struct{}, len(values)), order: values}
	for _, v := range values {
		set.values[v] = struct{}{}
	}
	return set
}

func (s enumSet[T]) parse(raw string) (T, error) {
	v := T(raw)
	if _, ok := s.values[v]; !ok {
		return "", &UnknownEnumError{Type: s.name, Value: raw}
	}
	return v, nil
}

func (s enumSet[T]) contains(v T) bool {
	_, ok := s.values[v]
	return ok
}

func (s enumSet[T]) all() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

func (s enumSet[T]) unmarshal(data []byte, dst *T) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: expected a string: %w", s.name, err)
	}
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (s enumSet[T]) marshal(v T) ([]byte, error) {
	if !s.contains(v) {
		return nil, &UnknownEnumError{Type: s.name, Value: string(v)}
	}
	return json.Marshal(string(v))
}
