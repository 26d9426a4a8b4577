package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Call is one request received by a FakeAPI.
type Call struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

type route struct {
	status int
	body   []byte
}

// FakeAPI is an httptest server that answers canned envelopes per route and
// records every request. Paths are matched without the server's base path, so
// "/my/agent" matches GET {URL}/my/agent.
type FakeAPI struct {
	t      *testing.T
	server *httptest.Server

	mu     sync.Mutex
	routes map[string]route
	calls  []Call
}

// NewFakeAPI starts a server that is closed at test cleanup. Unrouted
// requests fail the test and get a 404 error envelope.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{t: t, routes: make(map[string]route)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

// URL is the base URL to hand to the client.
func (f *FakeAPI) URL() string {
	return f.server.URL
}

// Client returns the server's HTTP client.
func (f *FakeAPI) Client() *http.Client {
	return f.server.Client()
}

// Handle answers method+path with status and a raw body.
func (f *FakeAPI) Handle(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = route{status: status, body: []byte(body)}
}

// HandleData answers with {"data": data}.
func (f *FakeAPI) HandleData(method, path string, status int, data any) {
	f.t.Helper()
	body, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		f.t.Fatalf("encoding fake response for %s %s: %v", method, path, err)
	}
	f.Handle(method, path, status, string(body))
}

// HandleError answers with an error envelope.
func (f *FakeAPI) HandleError(method, path string, status, code int, message string) {
	body := fmt.Sprintf(`{"error":{"code":%d,"message":%q}}`, code, message)
	f.Handle(method, path, status, body)
}

// Calls returns every request received so far.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount counts requests to method+path.
func (f *FakeAPI) CallCount(method, path string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// LastCall returns the most recent request. It fails the test if none was made.
func (f *FakeAPI) LastCall() Call {
	f.t.Helper()
	calls := f.Calls()
	if len(calls) == 0 {
		f.t.Fatal("fake api received no calls")
	}
	return calls[len(calls)-1]
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	call := Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "),
		Body:   body,
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	rt, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		f.t.Errorf("fake api: unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":404,"message":"route not found"}}`)
		return
	}
	w.WriteHeader(rt.status)
	_, _ = w.Write(rt.body)
}
