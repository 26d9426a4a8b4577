package client

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/pubsub"
	"github.com/zjrosen/spacetraders/internal/session"
	"github.com/zjrosen/spacetraders/internal/tracing"
	"github.com/zjrosen/spacetraders/internal/value"
)

// DefaultFaction is used when Register is called without a faction.
const DefaultFaction = domain.FactionCosmic

type registerRequest struct {
	Symbol  string               `json:"symbol"`
	Faction domain.FactionSymbol `json:"faction"`
}

type registration struct {
	Token    value.NonEmptyString `json:"token" validate:"required"`
	Agent    domain.Agent         `json:"agent"`
	Contract domain.Contract      `json:"contract"`
	Faction  domain.Faction       `json:"faction"`
	Ship     domain.Ship          `json:"ship"`
}

// Register creates a new agent. On success the client's token and cache are
// replaced by the registration; on any failure both are left as they were.
// A nil faction registers with DefaultFaction.
func (c *Client) Register(ctx context.Context, callsign string, faction *domain.FactionSymbol) (err error) {
	if n := len(callsign); n < MinCallsignLength || n > MaxCallsignLength {
		return &CallsignLengthError{Callsign: callsign, Length: n}
	}
	f := DefaultFaction
	if faction != nil {
		f = *faction
	}
	if !f.Valid() {
		return fmt.Errorf("registering %s: %w", callsign, &domain.UnknownEnumError{Type: "FactionSymbol", Value: string(f)})
	}

	ctx, span, finish := tracing.StartOperation(ctx, c.tracer, "register",
		attribute.String(tracing.AttrAgentSymbol, callsign))
	defer func() { finish(err) }()

	body, err := c.transport.Post(ctx, "/register", registerRequest{Symbol: callsign, Faction: f})
	if err != nil {
		return err
	}
	reg, err := api.DecodeSingle[registration](body)
	if err != nil {
		return err
	}
	cache, err := session.New(reg.Agent, reg.Faction, []domain.Contract{reg.Contract}, []domain.Ship{reg.Ship})
	if err != nil {
		return &api.ProtocolError{Expected: api.ShapeSingle, Got: api.ShapeSingle, Err: err}
	}

	c.transport.SetToken(reg.Token.String())
	c.cache = cache
	span.AddEvent(tracing.EventCacheMutated)
	log.Info(log.CatCache, "registered agent", "agent", callsign, "faction", f, "credits", reg.Agent.Credits)

	c.record(ctx, span, ledger.KindRegistered, "", reg.Agent.Credits)
	c.publish(pubsub.CreatedEvent, CacheChange{Kind: ChangeRegistered})
	return nil
}

// RefreshAgent fetches the agent and replaces the cached copy.
func (c *Client) RefreshAgent(ctx context.Context) (_ domain.Agent, err error) {
	cache, err := c.requireCache()
	if err != nil {
		return domain.Agent{}, err
	}

	ctx, span, finish := tracing.StartOperation(ctx, c.tracer, "refresh_agent")
	defer func() { finish(err) }()

	body, err := c.transport.Get(ctx, "/my/agent", nil)
	if err != nil {
		return domain.Agent{}, err
	}
	agent, err := api.DecodeSingle[domain.Agent](body)
	if err != nil {
		return domain.Agent{}, err
	}

	cache.ReplaceAgent(agent)
	span.AddEvent(tracing.EventCacheMutated)
	c.publish(pubsub.UpdatedEvent, CacheChange{Kind: ChangeAgentRefreshed})
	return agent, nil
}
