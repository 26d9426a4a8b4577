// Package session holds the client's mirror of server-confirmed state and the
// save file that persists it between runs.
package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/value"
)

// Cache mirrors what the server last confirmed for one agent.
//
// Readers get deep copies. The mutating methods exist for the client package,
// which only ever hands out a View, and must only be called after the server
// has confirmed the corresponding action. A Cache is not safe for concurrent use.
type Cache struct {
	agent     domain.Agent
	contracts []domain.Contract
	faction   domain.Faction
	ships     []domain.Ship
}

// New builds a cache, rejecting duplicate contract ids or ship symbols.
func New(agent domain.Agent, faction domain.Faction, contracts []domain.Contract, ships []domain.Ship) (*Cache, error) {
	seen := make(map[string]struct{}, len(contracts))
	for _, c := range contracts {
		if _, ok := seen[c.ID.String()]; ok {
			return nil, fmt.Errorf("contract %s: %w", c.ID, ErrDuplicate)
		}
		seen[c.ID.String()] = struct{}{}
	}
	seen = make(map[string]struct{}, len(ships))
	for _, s := range ships {
		if _, ok := seen[s.Symbol.String()]; ok {
			return nil, fmt.Errorf("ship %s: %w", s.Symbol, ErrDuplicate)
		}
		seen[s.Symbol.String()] = struct{}{}
	}

	return &Cache{
		agent:     agent,
		faction:   faction,
		contracts: append(make([]domain.Contract, 0, len(contracts)), contracts...),
		ships:     append(make([]domain.Ship, 0, len(ships)), ships...),
	}, nil
}

// Agent returns the cached agent.
func (c *Cache) Agent() domain.Agent {
	return c.agent.Clone()
}

// Faction returns the agent's starting faction.
func (c *Cache) Faction() domain.Faction {
	return c.faction.Clone()
}

// Contracts returns the cached contracts in server order.
func (c *Cache) Contracts() []domain.Contract {
	return domain.CloneAll(c.contracts)
}

// Ships returns the cached ships in acquisition order.
func (c *Cache) Ships() []domain.Ship {
	return domain.CloneAll(c.ships)
}

// Ship looks a ship up by symbol.
func (c *Cache) Ship(symbol string) (domain.Ship, error) {
	i := c.shipIndex(symbol)
	if i < 0 {
		return domain.Ship{}, &ShipNotFoundError{Symbol: symbol}
	}
	return c.ships[i].Clone(), nil
}

// Contract looks a contract up by id.
func (c *Cache) Contract(id string) (domain.Contract, error) {
	i := c.contractIndex(id)
	if i < 0 {
		return domain.Contract{}, &ContractNotFoundError{ID: id}
	}
	return c.contracts[i].Clone(), nil
}

func (c *Cache) shipIndex(symbol string) int {
	return slices.IndexFunc(c.ships, func(s domain.Ship) bool { return s.Symbol.Equal(symbol) })
}

func (c *Cache) contractIndex(id string) int {
	return slices.IndexFunc(c.contracts, func(k domain.Contract) bool { return k.ID.Equal(id) })
}

// ReplaceAgent overwrites the cached agent with a server-confirmed copy.
func (c *Cache) ReplaceAgent(agent domain.Agent) {
	c.agent = agent
}

// MarkContractAccepted flips the contract to accepted and credits the agent
// with its acceptance payment. It returns the credited amount, which is zero
// when the contract was already accepted.
func (c *Cache) MarkContractAccepted(id string) (int64, error) {
	i := c.contractIndex(id)
	if i < 0 {
		return 0, &ContractNotFoundError{ID: id}
	}
	if c.contracts[i].Accepted {
		return 0, nil
	}
	credit := c.contracts[i].Terms.Payment.OnAccepted.Int64()
	c.contracts[i].Accepted = true
	c.agent.Credits += credit
	return credit, nil
}

// SetShipNav replaces a ship's navigation state.
func (c *Cache) SetShipNav(symbol string, nav domain.ShipNav) error {
	i := c.shipIndex(symbol)
	if i < 0 {
		return &ShipNotFoundError{Symbol: symbol}
	}
	c.ships[i].Nav = nav
	return nil
}

// SetShipCargo replaces a ship's cargo hold.
func (c *Cache) SetShipCargo(symbol string, cargo domain.ShipCargo) error {
	i := c.shipIndex(symbol)
	if i < 0 {
		return &ShipNotFoundError{Symbol: symbol}
	}
	c.ships[i].Cargo = cargo
	return nil
}

// AppendShip adds a newly acquired ship. A ship with the same symbol is
// replaced in place so symbols stay unique.
func (c *Cache) AppendShip(ship domain.Ship) {
	if i := c.shipIndex(ship.Symbol.String()); i >= 0 {
		c.ships[i] = ship
		return
	}
	c.ships = append(c.ships, ship)
}

// StartingSystem is the system containing the agent's headquarters.
func (c *Cache) StartingSystem() (value.Symbol, error) {
	return c.agent.StartingSystem()
}

type snapshot struct {
	Agent     domain.Agent      `json:"agent"`
	Contracts []domain.Contract `json:"contracts" validate:"omitempty,dive"`
	Faction   domain.Faction    `json:"faction"`
	Ships     []domain.Ship     `json:"ships" validate:"omitempty,dive"`
}

// MarshalJSON encodes the cache as {agent, contracts, faction, ships}.
func (c *Cache) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot{
		Agent:     c.agent,
		Contracts: c.contracts,
		Faction:   c.faction,
		Ships:     c.ships,
	})
}

// UnmarshalJSON decodes {agent, contracts, faction, ships}, enforcing the
// same required fields as the API decoder and the same uniqueness rules as New.
func (c *Cache) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if err := value.Validate(&snap); err != nil {
		return err
	}
	decoded, err := New(snap.Agent, snap.Faction, snap.Contracts, snap.Ships)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// Equal reports whether c and other hold the same records, comparing their
// wire encodings.
func (c *Cache) Equal(other View) bool {
	if c == nil || isNil(other) {
		return c == nil && isNil(other)
	}
	a, errA := c.MarshalJSON()
	b, errB := other.MarshalJSON()
	return errA == nil && errB == nil && bytes.Equal(a, b)
}
