package tracing

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RoundTripper wraps an http.RoundTripper so every request becomes a client
// span, parented to whatever span is in the request's context.
type RoundTripper struct {
	next   http.RoundTripper
	tracer trace.Tracer
}

// NewRoundTripper wraps next; a nil next uses http.DefaultTransport. With a
// nil tracer, next is returned unwrapped.
func NewRoundTripper(next http.RoundTripper, tracer trace.Tracer) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if tracer == nil {
		return next
	}
	return &RoundTripper{next: next, tracer: tracer}
}

// RoundTrip implements http.RoundTripper.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := rt.tracer.Start(req.Context(), SpanPrefixHTTP+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrHTTPMethod, req.Method),
			attribute.String(AttrHTTPPath, req.URL.Path),
		),
	)
	defer span.End()

	resp, err := rt.next.RoundTrip(req.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int(AttrHTTPStatusCode, resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, fmt.Sprintf("status %d", resp.StatusCode))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return resp, nil
}

// StartOperation opens the span for one client operation. The returned finish
// func records err (if any) and ends the span. A nil tracer yields a no-op span.
func StartOperation(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span, func(err error)) {
	if tracer == nil {
		span := trace.SpanFromContext(ctx)
		return ctx, span, func(error) {}
	}
	ctx, span := tracer.Start(ctx, SpanPrefixOperation+name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(append(attrs, attribute.String(AttrOperation, name))...),
	)
	return ctx, span, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String(AttrErrorType, fmt.Sprintf("%T", unwrapAll(err))))
			var coded interface{ APICode() int }
			if errors.As(err, &coded) {
				span.SetAttributes(attribute.Int(AttrAPICode, coded.APICode()))
			}
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

func unwrapAll(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
