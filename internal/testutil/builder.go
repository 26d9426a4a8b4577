package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/session"
)

// Builder accumulates records and assembles a session cache from them.
type Builder struct {
	t         *testing.T
	agent     domain.Agent
	faction   domain.Faction
	contracts []domain.Contract
	ships     []domain.Ship
}

// NewBuilder starts from agent "TESTER" and the COSMIC faction.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{
		t:       t,
		agent:   NewAgent("TESTER"),
		faction: NewFaction(),
	}
}

// WithAgent replaces the agent.
func (b *Builder) WithAgent(symbol string, opts ...AgentOption) *Builder {
	b.agent = NewAgent(symbol, opts...)
	return b
}

// WithContract adds a contract.
func (b *Builder) WithContract(id string, opts ...ContractOption) *Builder {
	b.contracts = append(b.contracts, NewContract(id, opts...))
	return b
}

// WithShip adds a ship.
func (b *Builder) WithShip(symbol string, opts ...ShipOption) *Builder {
	b.ships = append(b.ships, NewShip(symbol, opts...))
	return b
}

// Build assembles the cache, failing the test on invalid input.
func (b *Builder) Build() *session.Cache {
	b.t.Helper()
	cache, err := session.New(b.agent, b.faction, b.contracts, b.ships)
	require.NoError(b.t, err)
	return cache
}
