// Package value provides self-validating wrappers around primitive values.
//
// Every type in this package can only be obtained through its constructor or by
// decoding JSON, and both paths share the same validation. Code that receives a
// value from this package never needs to re-check it.
package value

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyString is returned when a non-empty string is built from "".
var ErrEmptyString = errors.New("value: string must not be empty")

// Role distinguishes the semantic flavours of NonEmpty. Role types carry no data.
type Role interface {
	roleName() string
}

type (
	plainRole        struct{}
	symbolRole       struct{}
	nameRole         struct{}
	descriptionRole  struct{}
	idRole           struct{}
	headquartersRole struct{}
)

func (plainRole) roleName() string        { return "NonEmptyString" }
func (symbolRole) roleName() string       { return "Symbol" }
func (nameRole) roleName() string         { return "Name" }
func (descriptionRole) roleName() string  { return "Description" }
func (idRole) roleName() string           { return "ID" }
func (headquartersRole) roleName() string { return "Headquarters" }

// NonEmpty wraps a string that is guaranteed to have at least one byte.
// Different roles produce distinct types that do not convert into each other.
type NonEmpty[R Role] struct {
	s string
}

// Semantic string types. They validate identically but are not interchangeable.
type (
	NonEmptyString = NonEmpty[plainRole]
	Symbol         = NonEmpty[symbolRole]
	Name           = NonEmpty[nameRole]
	Description    = NonEmpty[descriptionRole]
	ID             = NonEmpty[idRole]
	Headquarters   = NonEmpty[headquartersRole]
)

// NewNonEmpty validates s and wraps it.
func NewNonEmpty[R Role](s string) (NonEmpty[R], error) {
	if s == "" {
		var r R
		return NonEmpty[R]{}, fmt.Errorf("%s: %w", r.roleName(), ErrEmptyString)
	}
	return NonEmpty[R]{s: s}, nil
}

// MustNonEmpty is NewNonEmpty for literals known to be valid. It panics otherwise.
func MustNonEmpty[R Role](s string) NonEmpty[R] {
	v, err := NewNonEmpty[R](s)
	if err != nil {
		panic(err)
	}
	return v
}

// NewNonEmptyString validates a plain, role-less non-empty string.
func NewNonEmptyString(s string) (NonEmptyString, error) { return NewNonEmpty[plainRole](s) }

// NewSymbol is shorthand for NewNonEmpty[Symbol role].
func NewSymbol(s string) (Symbol, error) { return NewNonEmpty[symbolRole](s) }

// NewID is shorthand for NewNonEmpty[ID role].
func NewID(s string) (ID, error) { return NewNonEmpty[idRole](s) }

// NewName is shorthand for NewNonEmpty[Name role].
func NewName(s string) (Name, error) { return NewNonEmpty[nameRole](s) }

// NewDescription is shorthand for NewNonEmpty[Description role].
func NewDescription(s string) (Description, error) { return NewNonEmpty[descriptionRole](s) }

// NewHeadquarters is shorthand for NewNonEmpty[Headquarters role].
func NewHeadquarters(s string) (Headquarters, error) { return NewNonEmpty[headquartersRole](s) }

// MustSymbol panics if s is empty.
func MustSymbol(s string) Symbol { return MustNonEmpty[symbolRole](s) }

// MustID panics if s is empty.
func MustID(s string) ID { return MustNonEmpty[idRole](s) }

// MustName panics if s is empty.
func MustName(s string) Name { return MustNonEmpty[nameRole](s) }

// MustDescription panics if s is empty.
func MustDescription(s string) Description { return MustNonEmpty[descriptionRole](s) }

// MustHeadquarters panics if s is empty.
func MustHeadquarters(s string) Headquarters { return MustNonEmpty[headquartersRole](s) }

// String returns the wrapped string.
func (n NonEmpty[R]) String() string {
	return n.s
}

// Equal compares against a plain string without unwrapping at the call site.
func (n NonEmpty[R]) Equal(s string) bool {
	return n.s == s
}

// IsZero reports whether n was never constructed.
func (n NonEmpty[R]) IsZero() bool {
	return n.s == ""
}

func (n NonEmpty[R]) MarshalJSON() ([]byte, error) {
	if n.s == "" {
		var r R
		return nil, fmt.Errorf("%s: %w", r.roleName(), ErrEmptyString)
	}
	return json.Marshal(n.s)
}

func (n *NonEmpty[R]) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var r R
		return fmt.Errorf("%s: expected a string: %w", r.roleName(), err)
	}
	v, err := NewNonEmpty[R](raw)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n NonEmpty[R]) MarshalText() ([]byte, error) {
	return []byte(n.s), nil
}

func (n *NonEmpty[R]) UnmarshalText(text []byte) error {
	v, err := NewNonEmpty[R](string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
