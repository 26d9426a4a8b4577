package domain

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/value"
)

// Shipyard lists the hulls a waypoint sells. Ships and Transactions are only
// present when the agent has a ship at the waypoint.
type Shipyard struct {
	Symbol           value.Symbol          `json:"symbol" validate:"required"`
	ShipTypes        []ShipyardShipType    `json:"shipTypes" validate:"omitempty,dive"`
	Transactions     []ShipyardTransaction `json:"transactions,omitempty" validate:"omitempty,dive"`
	Ships            []ShipyardShip        `json:"ships,omitempty" validate:"omitempty,dive"`
	ModificationsFee int64                 `json:"modificationsFee,omitempty"`
}

// Sells reports whether the shipyard offers the given hull.
func (s Shipyard) Sells(shipType ShipType) bool {
	for _, t := range s.ShipTypes {
		if t.Type == shipType {
			return true
		}
	}
	return false
}

type ShipyardShipType struct {
	Type ShipType `json:"type" validate:"required"`
}

type ShipyardShip struct {
	Type          ShipType          `json:"type" validate:"required"`
	Name          value.Name        `json:"name" validate:"required"`
	Description   value.Description `json:"description" validate:"required"`
	PurchasePrice value.NonNegative `json:"purchasePrice"`
	Frame         ShipFrame         `json:"frame"`
	Reactor       ShipReactor       `json:"reactor"`
	Engine        ShipEngine        `json:"engine"`
	Modules       []ShipModule      `json:"modules" validate:"omitempty,dive"`
	Mounts        []ShipMount       `json:"mounts" validate:"omitempty,dive"`
}

// ShipyardTransaction records a hull sold by a shipyard.
type ShipyardTransaction struct {
	WaypointSymbol value.Symbol      `json:"waypointSymbol" validate:"required"`
	ShipSymbol     value.Symbol      `json:"shipSymbol" validate:"required"`
	Price          value.NonNegative `json:"price"`
	AgentSymbol    value.Symbol      `json:"agentSymbol" validate:"required"`
	Timestamp      time.Time         `json:"timestamp" validate:"required"`
}

// ShipPurchase is the server's answer to a ship purchase.
type ShipPurchase struct {
	Agent       Agent               `json:"agent"`
	Ship        Ship                `json:"ship"`
	Transaction ShipyardTransaction `json:"transaction"`
}
