// Package client is the SpaceTraders API client.
//
// A Client owns the bearer token and, once registered or loaded, the session
// cache. Every operation checks its preconditions against the cache first,
// short-circuits when the cache already shows the requested state, and only
// mutates the cache after the server has confirmed the action. A Client is
// meant for one logical owner; it does no locking.
package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/cachemanager"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/pubsub"
	"github.com/zjrosen/spacetraders/internal/session"
	"github.com/zjrosen/spacetraders/internal/tracing"
	"github.com/zjrosen/spacetraders/internal/value"
)

// Client issues authenticated requests and keeps the session cache in step
// with the server.
type Client struct {
	transport *api.Transport
	cache     *session.Cache
	tracer    trace.Tracer
	ledger    ledger.Repository
	events    *pubsub.Broker[CacheChange]
	lookupTTL time.Duration

	waypoints *cachemanager.ReadThroughCache[lookupKey, domain.Waypoint, waypointRef]
	shipyards *cachemanager.ReadThroughCache[lookupKey, domain.Shipyard, waypointRef]
	searches  *cachemanager.ReadThroughCache[lookupKey, api.Page[domain.Waypoint], systemPage]
}

type options struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
	ledger     ledger.Repository
	lookupTTL  time.Duration
	events     *pubsub.Broker[CacheChange]
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at another API server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithTracer records a span per operation and per HTTP request.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// WithLedger records confirmed credit changes in repo.
func WithLedger(repo ledger.Repository) Option {
	return func(o *options) { o.ledger = repo }
}

// WithLookupCache memoizes waypoint and shipyard views for ttl.
// A ttl of zero disables memoization.
func WithLookupCache(ttl time.Duration) Option {
	return func(o *options) { o.lookupTTL = ttl }
}

// WithEvents publishes a CacheChange on broker after each cache mutation.
func WithEvents(broker *pubsub.Broker[CacheChange]) Option {
	return func(o *options) { o.events = broker }
}

// New builds a client with no token and no cache.
func New(opts ...Option) (*Client, error) {
	o := options{baseURL: api.DefaultBaseURL, httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if o.tracer != nil {
		traced := *hc
		traced.Transport = tracing.NewRoundTripper(hc.Transport, o.tracer)
		hc = &traced
	}
	transport, err := api.NewTransport(o.baseURL, hc)
	if err != nil {
		return nil, err
	}

	c := &Client{
		transport: transport,
		tracer:    o.tracer,
		ledger:    o.ledger,
		events:    o.events,
		lookupTTL: o.lookupTTL,
	}
	c.waypoints = newLookup(o.lookupTTL, "waypoints", c.fetchWaypoint)
	c.shipyards = newLookup(o.lookupTTL, "shipyards", c.fetchShipyard)
	c.searches = newLookup(o.lookupTTL, "shipyard-search", c.fetchShipyardPage)
	return c, nil
}

// Token returns the bearer token, or "" when none is set.
func (c *Client) Token() string {
	return c.transport.Token()
}

// Cache returns a read-only view of the session cache, or nil before
// registration or load. Only client operations mutate the cache.
func (c *Client) Cache() session.View {
	return c.cache.ReadOnly()
}

// InitializeWithToken adopts an existing token without any cached state.
// Read-only lookups work afterwards; cache-backed operations return
// session.ErrCacheEmpty.
func (c *Client) InitializeWithToken(token string) error {
	if token == "" {
		return session.ErrTokenNotSet
	}
	c.transport.SetToken(token)
	c.cache = nil
	return nil
}

// LoadSaved replaces the token and cache with the contents of a save file.
// On failure the client is left unchanged.
func (c *Client) LoadSaved(path string) error {
	token, cache, err := session.NewSaveFile(path).Load()
	if err != nil {
		return err
	}
	c.transport.SetToken(token)
	c.cache = cache
	c.publish(pubsub.UpdatedEvent, CacheChange{Kind: ChangeLoaded})
	return nil
}

// Save writes the token and cache to a save file.
func (c *Client) Save(path string) error {
	if c.Token() == "" {
		return session.ErrTokenNotSet
	}
	if c.cache == nil {
		return session.ErrCacheEmpty
	}
	return session.NewSaveFile(path).Store(c.Token(), c.cache)
}

// StartingSystem is the system containing the agent's headquarters.
func (c *Client) StartingSystem() (value.Symbol, error) {
	if c.cache == nil {
		return value.Symbol{}, session.ErrCacheEmpty
	}
	return c.cache.StartingSystem()
}

func (c *Client) requireToken() error {
	if c.Token() == "" {
		return session.ErrTokenNotSet
	}
	return nil
}

func (c *Client) requireCache() (*session.Cache, error) {
	if c.cache == nil {
		return nil, session.ErrCacheEmpty
	}
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	return c.cache, nil
}

// record appends a ledger entry for a confirmed credit change. Failures are
// logged only; the cache mutation already happened and stays.
func (c *Client) record(ctx context.Context, span trace.Span, kind ledger.Kind, reference string, delta int64) {
	if c.ledger == nil || c.cache == nil {
		return
	}
	agent := c.cache.Agent()
	entry, err := ledger.NewEntry(agent.Symbol.String(), kind, reference, delta, agent.Credits)
	if err == nil {
		err = c.ledger.Record(ctx, entry)
	}
	if err != nil {
		log.ErrorErr(log.CatLedger, "recording ledger entry failed", err,
			"kind", kind, "reference", reference, "delta", delta)
		span.AddEvent(tracing.EventLedgerFailed)
		return
	}
	log.Debug(log.CatLedger, "recorded", "kind", kind, "reference", reference, "delta", delta, "balance", agent.Credits)
}

// IsFatal reports whether err signals a broken API contract that retrying
// cannot fix.
func IsFatal(err error) bool {
	var fatal interface{ Fatal() bool }
	return errors.As(err, &fatal) && fatal.Fatal()
}
