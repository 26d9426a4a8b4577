package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is matched by every RangeError.
var ErrOutOfRange = errors.New("value: integer out of range")

// RangeError reports an integer that violates a bound.
// Min or Max is nil when that side is unbounded.
type RangeError struct {
	Value int64
	Min   *int64
	Max   *int64
}

func (e *RangeError) Error() string {
	switch {
	case e.Min != nil && e.Max != nil:
		return fmt.Sprintf("value %d must be in the inclusive range [%d,%d]", e.Value, *e.Min, *e.Max)
	case e.Min != nil:
		return fmt.Sprintf("value %d must be greater than or equal to %d", e.Value, *e.Min)
	case e.Max != nil:
		return fmt.Sprintf("value %d must be less than or equal to %d", e.Value, *e.Max)
	default:
		return fmt.Sprintf("value %d out of range", e.Value)
	}
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Bound is a compile-time integer limit. Implementations are empty structs.
type Bound interface {
	Limit() int64
}

// Bound markers used across the data model.
type (
	Zero    struct{}
	One     struct{}
	Twenty  struct{}
	Hundred struct{}
)

func (Zero) Limit() int64    { return 0 }
func (One) Limit() int64     { return 1 }
func (Twenty) Limit() int64  { return 20 }
func (Hundred) Limit() int64 { return 100 }

func limit[B Bound]() int64 {
	var b B
	return b.Limit()
}

// LowerBoundInt holds an integer >= B.
type LowerBoundInt[B Bound] struct {
	v int64
}

// UpperBoundInt holds an integer <= B.
type UpperBoundInt[B Bound] struct {
	v int64
}

// BoundedInt holds an integer in [L, H].
type BoundedInt[L, H Bound] struct {
	v int64
}

// Common instantiations.
type (
	NonNegative = LowerBoundInt[Zero]
	Positive    = LowerBoundInt[One]
	Percent     = BoundedInt[Zero, Hundred]
	PageLimit   = BoundedInt[One, Twenty]
	PageNumber  = LowerBoundInt[One]
)

// NewLowerBoundInt validates v >= B.
func NewLowerBoundInt[B Bound](v int64) (LowerBoundInt[B], error) {
	lo := limit[B]()
	if v < lo {
		return LowerBoundInt[B]{}, &RangeError{Value: v, Min: &lo}
	}
	return LowerBoundInt[B]{v: v}, nil
}

// NewUpperBoundInt validates v <= B.
func NewUpperBoundInt[B Bound](v int64) (UpperBoundInt[B], error) {
	hi := limit[B]()
	if v > hi {
		return UpperBoundInt[B]{}, &RangeError{Value: v, Max: &hi}
	}
	return UpperBoundInt[B]{v: v}, nil
}

// NewBoundedInt validates L <= v <= H.
func NewBoundedInt[L, H Bound](v int64) (BoundedInt[L, H], error) {
	lo, hi := limit[L](), limit[H]()
	if v < lo || v > hi {
		return BoundedInt[L, H]{}, &RangeError{Value: v, Min: &lo, Max: &hi}
	}
	return BoundedInt[L, H]{v: v}, nil
}

// NewNonNegative is NewLowerBoundInt[Zero].
func NewNonNegative(v int64) (NonNegative, error) { return NewLowerBoundInt[Zero](v) }

// NewPositive is NewLowerBoundInt[One].
func NewPositive(v int64) (Positive, error) { return NewLowerBoundInt[One](v) }

// NewPercent is NewBoundedInt[Zero, Hundred].
func NewPercent(v int64) (Percent, error) { return NewBoundedInt[Zero, Hundred](v) }

// NewPageNumber is NewLowerBoundInt[One].
func NewPageNumber(v int64) (PageNumber, error) { return NewLowerBoundInt[One](v) }

// NewPageLimit is NewBoundedInt[One, Twenty].
func NewPageLimit(v int64) (PageLimit, error) { return NewBoundedInt[One, Twenty](v) }

// Must panics when err is non-nil. Intended for constants and tests.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func (i LowerBoundInt[B]) Int64() int64 {
	return i.v
}

func (i LowerBoundInt[B]) Equal(v int64) bool {
	return i.v == v
}

func (i LowerBoundInt[B]) String() string {
	return strconv.FormatInt(i.v, 10)
}

func (i LowerBoundInt[B]) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *LowerBoundInt[B]) UnmarshalJSON(data []byte) error {
	raw, err := decodeInt(data)
	if err != nil {
		return err
	}
	v, err := NewLowerBoundInt[B](raw)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i UpperBoundInt[B]) Int64() int64 {
	return i.v
}

func (i UpperBoundInt[B]) Equal(v int64) bool {
	return i.v == v
}

func (i UpperBoundInt[B]) String() string {
	return strconv.FormatInt(i.v, 10)
}

func (i UpperBoundInt[B]) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *UpperBoundInt[B]) UnmarshalJSON(data []byte) error {
	raw, err := decodeInt(data)
	if err != nil {
		return err
	}
	v, err := NewUpperBoundInt[B](raw)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i BoundedInt[L, H]) Int64() int64 {
	return i.v
}

func (i BoundedInt[L, H]) Equal(v int64) bool {
	return i.v == v
}

func (i BoundedInt[L, H]) String() string {
	return strconv.FormatInt(i.v, 10)
}

func (i BoundedInt[L, H]) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *BoundedInt[L, H]) UnmarshalJSON(data []byte) error {
	raw, err := decodeInt(data)
	if err != nil {
		return err
	}
	v, err := NewBoundedInt[L, H](raw)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// decodeInt accepts JSON integer literals only. Fractions and exponents are
// rejected even when they denote a whole number, as are values outside int64.
func decodeInt(data []byte) (int64, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.ContainsAny(trimmed, ".eE") || !json.Valid(trimmed) {
		return 0, fmt.Errorf("value: expected an integer, got %s", trimmed)
	}
	v, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value: %s is not a 64-bit integer", trimmed)
	}
	return v, nil
}
