package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zjrosen/spacetraders/internal/log"
)

// DefaultBaseURL is the public v2 endpoint.
const DefaultBaseURL = "https://api.spacetraders.io/v2"

// maxBodyBytes bounds how much of a response is read into memory.
const maxBodyBytes = 8 << 20

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport sends JSON requests to the API and returns raw response bodies.
// It owns the bearer token; it does not interpret success envelopes.
type Transport struct {
	baseURL *url.URL
	doer    HTTPDoer
	token   string
}

// NewTransport parses baseURL and binds it to doer.
func NewTransport(baseURL string, doer HTTPDoer) (*Transport, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Transport{baseURL: u, doer: doer}, nil
}

// SetToken installs the bearer token sent with every request.
func (t *Transport) SetToken(token string) {
	t.token = token
}

// Token returns the current bearer token, or "" if none is set.
func (t *Transport) Token() string {
	return t.token
}

// BaseURL returns the endpoint requests are sent to.
func (t *Transport) BaseURL() string {
	return t.baseURL.String()
}

// Get issues a GET request. query may be nil.
func (t *Transport) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return t.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request with body encoded as JSON. A nil body sends no payload.
func (t *Transport) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return t.do(ctx, http.MethodPost, path, nil, body)
}

func (t *Transport) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	fail := func(err error) error {
		return &TransportError{Method: method, Path: path, Err: err}
	}

	u := t.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fail(fmt.Errorf("encoding request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fail(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	start := time.Now()
	resp, err := t.doer.Do(req)
	if err != nil {
		log.Debug(log.CatAPI, "request failed", "method", method, "path", path, "error", err)
		return nil, fail(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}
	if len(data) > maxBodyBytes {
		return nil, &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, maxBodyBytes)}
	}
	log.Debug(log.CatAPI, "request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration", time.Since(start))

	if apiErr, ok := DecodeError(data); ok {
		return nil, apiErr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	return data, nil
}
