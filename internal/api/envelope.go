// Package api speaks the SpaceTraders wire protocol: it classifies response
// envelopes, decodes them into typed values and carries requests over HTTP.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/zjrosen/spacetraders/internal/value"
)

// Shape is the structural kind of a response envelope.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeSingle
	ShapePaginated
	ShapeError
)

func (s Shape) String() string {
	switch s {
	case ShapeSingle:
		return "single"
	case ShapePaginated:
		return "paginated"
	case ShapeError:
		return "error"
	default:
		return "unknown"
	}
}

// Meta is the pagination block of a paginated envelope.
type Meta struct {
	Total int64            `json:"total"`
	Limit value.PageLimit  `json:"limit"`
	Page  value.PageNumber `json:"page"`
}

// HasNext reports whether another page follows this one.
func (m Meta) HasNext() bool {
	return m.Page.Int64()*m.Limit.Int64() < m.Total
}

// NextPage returns the request for the page after m. ok is false on the last page.
func (m Meta) NextPage() (req PageRequest, ok bool) {
	if !m.HasNext() {
		return PageRequest{}, false
	}
	next, err := value.NewPageNumber(m.Page.Int64() + 1)
	if err != nil {
		return PageRequest{}, false
	}
	return PageRequest{Limit: m.Limit, Page: next}, true
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

// DefaultPageLimit is the largest page the server accepts.
const DefaultPageLimit = 20

// PageRequest selects one page of a listing.
type PageRequest struct {
	Limit value.PageLimit
	Page  value.PageNumber
}

// FirstPage requests page 1 with the largest allowed page size.
func FirstPage() PageRequest {
	return PageRequest{
		Limit: value.Must(value.NewPageLimit(DefaultPageLimit)),
		Page:  value.Must(value.NewPageNumber(1)),
	}
}

// NewPageRequest validates a page number and size.
func NewPageRequest(page, limit int64) (PageRequest, error) {
	p, err := value.NewPageNumber(page)
	if err != nil {
		return PageRequest{}, fmt.Errorf("page: %w", err)
	}
	l, err := value.NewPageLimit(limit)
	if err != nil {
		return PageRequest{}, fmt.Errorf("limit: %w", err)
	}
	return PageRequest{Limit: l, Page: p}, nil
}

// Query encodes the request as limit/page parameters. A zero request
// encodes as the first page.
func (r PageRequest) Query() url.Values {
	if r.Limit.Int64() == 0 || r.Page.Int64() == 0 {
		r = FirstPage()
	}
	q := url.Values{}
	q.Set("limit", strconv.FormatInt(r.Limit.Int64(), 10))
	q.Set("page", strconv.FormatInt(r.Page.Int64(), 10))
	return q
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error json.RawMessage `json:"error"`
}

// Classify decides the envelope shape from its top-level keys alone.
// An error key wins over everything else; data with meta and an array
// payload is paginated; data alone is single.
func Classify(body []byte) (Shape, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ShapeUnknown, err
	}
	switch {
	case present(env.Error):
		return ShapeError, nil
	case present(env.Data) && present(env.Meta) && isArray(env.Data):
		return ShapePaginated, nil
	case present(env.Data):
		return ShapeSingle, nil
	default:
		return ShapeUnknown, nil
	}
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// DecodeSingle decodes a single-object envelope into T.
// An error envelope yields *APIError; any other shape, or a record missing a
// required field, is a *ProtocolError.
func DecodeSingle[T any](body []byte) (T, error) {
	var zero T
	env, err := expect(body, ShapeSingle)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, &ProtocolError{Expected: ShapeSingle, Got: ShapeSingle, Err: err}
	}
	if err := value.Validate(&out); err != nil {
		return zero, &ProtocolError{Expected: ShapeSingle, Got: ShapeSingle, Err: err}
	}
	return out, nil
}

// DecodePage decodes a paginated envelope into a Page of T.
// An error envelope yields *APIError; any other shape is a *ProtocolError.
func DecodePage[T any](body []byte) (Page[T], error) {
	env, err := expect(body, ShapePaginated)
	if err != nil {
		return Page[T]{}, err
	}
	var page Page[T]
	if err := json.Unmarshal(env.Data, &page.Data); err != nil {
		return Page[T]{}, &ProtocolError{Expected: ShapePaginated, Got: ShapePaginated, Err: err}
	}
	for i := range page.Data {
		if err := value.Validate(&page.Data[i]); err != nil {
			return Page[T]{}, &ProtocolError{Expected: ShapePaginated, Got: ShapePaginated, Err: fmt.Errorf("data[%d]: %w", i, err)}
		}
	}
	if err := json.Unmarshal(env.Meta, &page.Meta); err != nil {
		return Page[T]{}, &ProtocolError{Expected: ShapePaginated, Got: ShapePaginated, Err: fmt.Errorf("meta: %w", err)}
	}
	return page, nil
}

// DecodeError extracts the APIError from an error envelope.
// ok is false when body is not an error envelope.
func DecodeError(body []byte) (apiErr *APIError, ok bool) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || !present(env.Error) {
		return nil, false
	}
	apiErr = &APIError{}
	if err := json.Unmarshal(env.Error, apiErr); err != nil {
		return nil, false
	}
	return apiErr, true
}

func expect(body []byte, want Shape) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, &ProtocolError{Expected: want, Got: ShapeUnknown, Err: err}
	}
	got, _ := Classify(body)
	if got == ShapeError {
		if apiErr, ok := DecodeError(body); ok {
			return envelope{}, apiErr
		}
		return envelope{}, &ProtocolError{Expected: want, Got: ShapeError, Err: fmt.Errorf("malformed error envelope")}
	}
	if got != want {
		return envelope{}, &ProtocolError{Expected: want, Got: got}
	}
	return env, nil
}
