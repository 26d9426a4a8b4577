package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTestTracer(t *testing.T) (trace.Tracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp.Tracer("test"), exporter
}

func attrValue(span tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestNewRoundTripper_NilTracerReturnsNext(t *testing.T) {
	next := roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, nil })
	rt := NewRoundTripper(next, nil)
	_, wrapped := rt.(*RoundTripper)
	require.False(t, wrapped)
}

func TestRoundTripper_RecordsClientSpan(t *testing.T) {
	tracer, exporter := newTestTracer(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := &http.Client{Transport: NewRoundTripper(nil, tracer)}
	req, err := http.NewRequest(http.MethodPost, server.URL+"/v2/my/ships", nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "http.POST", span.Name)
	assert.Equal(t, trace.SpanKindClient, span.SpanKind)
	assert.Equal(t, codes.Ok, span.Status.Code)

	path, ok := attrValue(span, AttrHTTPPath)
	require.True(t, ok)
	assert.Equal(t, "/v2/my/ships", path.AsString())
	status, ok := attrValue(span, AttrHTTPStatusCode)
	require.True(t, ok)
	assert.Equal(t, int64(201), status.AsInt64())
}

func TestRoundTripper_ErrorStatusOn4xx(t *testing.T) {
	tracer, exporter := newTestTracer(t)
	next := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusConflict, Body: http.NoBody, Request: req}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "http://example.test/register", nil)
	resp, err := NewRoundTripper(next, tracer).RoundTrip(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "status 409", spans[0].Status.Description)
}

func TestRoundTripper_RecordsTransportError(t *testing.T) {
	tracer, exporter := newTestTracer(t)
	next := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	req := httptest.NewRequest(http.MethodGet, "http://example.test/my/agent", nil)
	_, err := NewRoundTripper(next, tracer).RoundTrip(req)
	require.EqualError(t, err, "connection refused")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	require.Len(t, spans[0].Events, 1, "error is recorded as an event")
}

func TestRoundTripper_ParentsToOperationSpan(t *testing.T) {
	tracer, exporter := newTestTracer(t)
	next := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
	})

	ctx, _, finish := StartOperation(context.Background(), tracer, "dock_ship",
		attribute.String(AttrShipSymbol, "X1-SHIP-1"))
	req := httptest.NewRequest(http.MethodPost, "http://example.test/my/ships/X1-SHIP-1/dock", nil).WithContext(ctx)
	_, err := NewRoundTripper(next, tracer).RoundTrip(req)
	require.NoError(t, err)
	finish(nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	httpSpan, opSpan := spans[0], spans[1]
	require.Equal(t, "client.dock_ship", opSpan.Name)
	require.Equal(t, opSpan.SpanContext.TraceID(), httpSpan.SpanContext.TraceID())
	require.Equal(t, opSpan.SpanContext.SpanID(), httpSpan.Parent.SpanID())

	op, ok := attrValue(opSpan, AttrOperation)
	require.True(t, ok)
	require.Equal(t, "dock_ship", op.AsString())
}

type codedErr struct{ code int }

func (e *codedErr) Error() string { return "coded" }
func (e *codedErr) APICode() int  { return e.code }

func TestStartOperation_RecordsErrorDetails(t *testing.T) {
	tracer, exporter := newTestTracer(t)

	_, _, finish := StartOperation(context.Background(), tracer, "accept_contract")
	finish(errors.Join(&codedErr{code: 4500}))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status.Code)

	code, ok := attrValue(spans[0], AttrAPICode)
	require.True(t, ok)
	require.Equal(t, int64(4500), code.AsInt64())
	_, ok = attrValue(spans[0], AttrErrorType)
	require.True(t, ok)
}

func TestStartOperation_NilTracer(t *testing.T) {
	ctx, span, finish := StartOperation(context.Background(), nil, "orbit_ship")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	finish(errors.New("ignored"))
}
