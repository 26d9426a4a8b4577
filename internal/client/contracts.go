package client

import (
	"context"
	"net/url"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/log"
	"github.com/zjrosen/spacetraders/internal/pubsub"
	"github.com/zjrosen/spacetraders/internal/tracing"
)

// ListContracts fetches one page of the agent's contracts. The cache is not
// touched; callers loop with Meta.NextPage for more.
func (c *Client) ListContracts(ctx context.Context, req api.PageRequest) (_ api.Page[domain.Contract], err error) {
	if err := c.requireToken(); err != nil {
		return api.Page[domain.Contract]{}, err
	}

	ctx, _, finish := tracing.StartOperation(ctx, c.tracer, "list_contracts")
	defer func() { finish(err) }()

	body, err := c.transport.Get(ctx, "/my/contracts", req.Query())
	if err != nil {
		return api.Page[domain.Contract]{}, err
	}
	return api.DecodePage[domain.Contract](body)
}

type acceptance struct {
	Agent    domain.Agent    `json:"agent"`
	Contract domain.Contract `json:"contract"`
}

// AcceptContract accepts a cached contract. Accepting an already accepted
// contract succeeds without a request, so the acceptance payment is credited
// exactly once.
func (c *Client) AcceptContract(ctx context.Context, id string) (_ domain.Contract, err error) {
	cache, err := c.requireCache()
	if err != nil {
		return domain.Contract{}, err
	}
	contract, err := cache.Contract(id)
	if err != nil {
		return domain.Contract{}, err
	}

	ctx, span, finish := tracing.StartOperation(ctx, c.tracer, "accept_contract",
		attribute.String(tracing.AttrContractID, id))
	defer func() { finish(err) }()

	if contract.Accepted {
		span.SetAttributes(attribute.Bool(tracing.AttrShortCircuit, true))
		return contract, nil
	}

	body, err := c.transport.Post(ctx, "/my/contracts/"+url.PathEscape(id)+"/accept", nil)
	if err != nil {
		return domain.Contract{}, err
	}
	if _, err := api.DecodeSingle[acceptance](body); err != nil {
		return domain.Contract{}, err
	}

	credited, err := cache.MarkContractAccepted(id)
	if err != nil {
		return domain.Contract{}, err
	}
	span.AddEvent(tracing.EventCacheMutated)
	log.Info(log.CatCache, "contract accepted", "contract", id, "credited", credited)

	c.record(ctx, span, ledger.KindContractAccepted, id, credited)
	c.publish(pubsub.UpdatedEvent, CacheChange{Kind: ChangeContractAccepted, Contract: id})
	return cache.Contract(id)
}
