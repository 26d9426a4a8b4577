package client

import (
	"context"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/cachemanager"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/tracing"
)

// lookupKey identifies a memoized read-only view.
type lookupKey string

type waypointRef struct {
	system   string
	waypoint string
}

func (r waypointRef) path() string {
	return "/systems/" + url.PathEscape(r.system) + "/waypoints/" + url.PathEscape(r.waypoint)
}

type systemPage struct {
	system string
	page   api.PageRequest
}

func newLookup[V, I any](ttl time.Duration, useCase string, fn func(context.Context, I) (V, error)) *cachemanager.ReadThroughCache[lookupKey, V, I] {
	if ttl <= 0 {
		return cachemanager.NewReadThroughCache[lookupKey, V, I](nil, fn, true)
	}
	store := cachemanager.NewInMemoryCacheManager[lookupKey, V](useCase, ttl, cachemanager.DefaultCleanupInterval)
	return cachemanager.NewReadThroughCache[lookupKey, V, I](store, fn, false)
}

// ViewWaypoint fetches one waypoint. Results are memoized in the lookup
// cache, never in the session cache.
func (c *Client) ViewWaypoint(ctx context.Context, system, waypoint string) (_ domain.Waypoint, err error) {
	if err := c.requireToken(); err != nil {
		return domain.Waypoint{}, err
	}
	ctx, _, finish := tracing.StartOperation(ctx, c.tracer, "view_waypoint",
		attribute.String(tracing.AttrSystem, system),
		attribute.String(tracing.AttrWaypoint, waypoint))
	defer func() { finish(err) }()

	ref := waypointRef{system: system, waypoint: waypoint}
	return c.waypoints.Get(ctx, lookupKey("waypoint:"+ref.path()), ref, c.lookupTTL)
}

func (c *Client) fetchWaypoint(ctx context.Context, ref waypointRef) (domain.Waypoint, error) {
	body, err := c.transport.Get(ctx, ref.path(), nil)
	if err != nil {
		return domain.Waypoint{}, err
	}
	return api.DecodeSingle[domain.Waypoint](body)
}

// ViewShipyard fetches the shipyard at a waypoint.
func (c *Client) ViewShipyard(ctx context.Context, system, waypoint string) (_ domain.Shipyard, err error) {
	if err := c.requireToken(); err != nil {
		return domain.Shipyard{}, err
	}
	ctx, _, finish := tracing.StartOperation(ctx, c.tracer, "view_shipyard",
		attribute.String(tracing.AttrSystem, system),
		attribute.String(tracing.AttrWaypoint, waypoint))
	defer func() { finish(err) }()

	ref := waypointRef{system: system, waypoint: waypoint}
	return c.shipyards.Get(ctx, lookupKey("shipyard:"+ref.path()), ref, c.lookupTTL)
}

func (c *Client) fetchShipyard(ctx context.Context, ref waypointRef) (domain.Shipyard, error) {
	body, err := c.transport.Get(ctx, ref.path()+"/shipyard", nil)
	if err != nil {
		return domain.Shipyard{}, err
	}
	return api.DecodeSingle[domain.Shipyard](body)
}

// FindShipyards lists one page of a system's waypoints and keeps those with
// the SHIPYARD trait. Meta describes the unfiltered listing, so callers can
// keep paging while Meta.HasNext.
func (c *Client) FindShipyards(ctx context.Context, system string, req api.PageRequest) (_ api.Page[domain.Waypoint], err error) {
	if err := c.requireToken(); err != nil {
		return api.Page[domain.Waypoint]{}, err
	}
	ctx, _, finish := tracing.StartOperation(ctx, c.tracer, "find_shipyards",
		attribute.String(tracing.AttrSystem, system))
	defer func() { finish(err) }()

	in := systemPage{system: system, page: req}
	key := lookupKey("shipyards:" + system + "?" + req.Query().Encode())
	return c.searches.Get(ctx, key, in, c.lookupTTL)
}

func (c *Client) fetchShipyardPage(ctx context.Context, in systemPage) (api.Page[domain.Waypoint], error) {
	query := in.page.Query()
	query.Set("traits", string(domain.WaypointTraitShipyard))
	body, err := c.transport.Get(ctx, "/systems/"+url.PathEscape(in.system)+"/waypoints", query)
	if err != nil {
		return api.Page[domain.Waypoint]{}, err
	}
	page, err := api.DecodePage[domain.Waypoint](body)
	if err != nil {
		return api.Page[domain.Waypoint]{}, err
	}

	shipyards := make([]domain.Waypoint, 0, len(page.Data))
	for _, wp := range page.Data {
		if wp.HasTrait(domain.WaypointTraitShipyard) {
			shipyards = append(shipyards, wp)
		}
	}
	page.Data = shipyards
	return page, nil
}
