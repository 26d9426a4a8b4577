package client

import (
	"context"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/pubsub"
	"github.com/zjrosen/spacetraders/internal/tracing"
	"github.com/zjrosen/spacetraders/internal/value"
)

type navUpdate struct {
	Nav domain.ShipNav `json:"nav"`
}

// DockShip docks a cached ship. A ship already docked is returned as is
// without a request.
func (c *Client) DockShip(ctx context.Context, symbol string) (domain.ShipNav, error) {
	return c.moveShip(ctx, symbol, domain.NavStatusDocked, "dock")
}

// OrbitShip puts a cached ship into orbit. A ship already in orbit is
// returned as is without a request.
func (c *Client) OrbitShip(ctx context.Context, symbol string) (domain.ShipNav, error) {
	return c.moveShip(ctx, symbol, domain.NavStatusInOrbit, "orbit")
}

func (c *Client) moveShip(ctx context.Context, symbol string, target domain.ShipNavStatus, action string) (_ domain.ShipNav, err error) {
	cache, err := c.requireCache()
	if err != nil {
		return domain.ShipNav{}, err
	}
	ship, err := cache.Ship(symbol)
	if err != nil {
		return domain.ShipNav{}, err
	}

	ctx, span, finish := tracing.StartOperation(ctx, c.tracer, action+"_ship",
		attribute.String(tracing.AttrShipSymbol, symbol))
	defer func() { finish(err) }()

	if ship.Nav.Status == target {
		span.SetAttributes(attribute.Bool(tracing.AttrShortCircuit, true))
		return ship.Nav, nil
	}

	body, err := c.transport.Post(ctx, shipPath(symbol, action), nil)
	if err != nil {
		return domain.ShipNav{}, err
	}
	update, err := api.DecodeSingle[navUpdate](body)
	if err != nil {
		return domain.ShipNav{}, err
	}

	if err := cache.SetShipNav(symbol, update.Nav); err != nil {
		return domain.ShipNav{}, err
	}
	span.AddEvent(tracing.EventCacheMutated)
	log.Debug(log.CatCache, "ship nav updated", "ship", symbol, "status", update.Nav.Status)
	c.publish(pubsub.UpdatedEvent, CacheChange{Kind: ChangeShipNav, Ship: symbol})
	return update.Nav, nil
}

type extractRequest struct {
	Survey *domain.Survey `json:"survey"`
}

// ExtractResources mines at the ship's current waypoint, optionally guided by
// a survey. Only that ship's cargo is replaced, from the server's response.
func (c *Client) ExtractResources(ctx context.Context, symbol string, survey *domain.Survey) (_ domain.ExtractionResult, err error) {
	cache, err := c.requireCache()
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	if _, err := cache.Ship(symbol); err != nil {
		return domain.ExtractionResult{}, err
	}

	ctx, span, finish := tracing.StartOperation(ctx, c.tracer, "extract_resources",
		attribute.String(tracing.AttrShipSymbol, symbol))
	defer func() { finish(err) }()

	var payload any
	if survey != nil {
		payload = extractRequest{Survey: survey}
	}
	body, err := c.transport.Post(ctx, shipPath(symbol, "extract"), payload)
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	result, err := api.DecodeSingle[domain.ExtractionResult](body)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	if err := cache.SetShipCargo(symbol, result.Cargo); err != nil {
		return domain.ExtractionResult{}, err
	}
	span.AddEvent(tracing.EventCacheMutated)
	log.Debug(log.CatCache, "ship cargo updated", "ship", symbol,
		"yield", result.Extraction.Yield.Symbol, "units", result.Extraction.Yield.Units, "cooldown", result.Cooldown.Remaining())
	c.publish(pubsub.UpdatedEvent, CacheChange{Kind: ChangeShipCargo, Ship: symbol})
	return result, nil
}

type purchaseRequest struct {
	ShipType       domain.ShipType `json:"shipType"`
	WaypointSymbol string          `json:"waypointSymbol"`
}

// BuyShip purchases a ship at a shipyard waypoint. With a cache the new ship
// is appended and the agent replaced from the response; without one the
// purchase is still returned, since the server has already completed it.
func (c *Client) BuyShip(ctx context.Context, shipType domain.ShipType, waypoint value.Symbol) (_ domain.ShipPurchase, err error) {
	if err := c.requireToken(); err != nil {
		return domain.ShipPurchase{}, err
	}
	if !shipType.Valid() {
		return domain.ShipPurchase{}, fmt.Errorf("buying ship: %w", &domain.UnknownEnumError{Type: "ShipType", Value: string(shipType)})
	}
	if waypoint.IsZero() {
		return domain.ShipPurchase{}, fmt.Errorf("buying ship: waypoint: %w", value.ErrEmptyString)
	}

	ctx, span, finish := tracing.StartOperation(ctx, c.tracer, "buy_ship",
		attribute.String(tracing.AttrWaypoint, waypoint.String()))
	defer func() { finish(err) }()

	body, err := c.transport.Post(ctx, "/my/ships", purchaseRequest{ShipType: shipType, WaypointSymbol: waypoint.String()})
	if err != nil {
		return domain.ShipPurchase{}, err
	}
	purchase, err := api.DecodeSingle[domain.ShipPurchase](body)
	if err != nil {
		return domain.ShipPurchase{}, err
	}
	span.SetAttributes(attribute.String(tracing.AttrShipSymbol, purchase.Ship.Symbol.String()))

	if c.cache == nil {
		log.Info(log.CatCache, "ship purchased without a cache", "ship", purchase.Ship.Symbol)
		return purchase, nil
	}
	c.cache.AppendShip(purchase.Ship)
	c.cache.ReplaceAgent(purchase.Agent)
	span.AddEvent(tracing.EventCacheMutated)
	log.Info(log.CatCache, "ship purchased", "ship", purchase.Ship.Symbol, "price", purchase.Transaction.Price)

	c.record(ctx, span, ledger.KindShipPurchased, purchase.Ship.Symbol.String(), -purchase.Transaction.Price.Int64())
	c.publish(pubsub.CreatedEvent, CacheChange{Kind: ChangeShipPurchased, Ship: purchase.Ship.Symbol.String()})
	return purchase, nil
}

func shipPath(symbol, action string) string {
	return "/my/ships/" + url.PathEscape(symbol) + "/" + action
}
