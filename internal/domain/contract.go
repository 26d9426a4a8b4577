package domain

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/value"
)

// Contract is a procurement, transport or shuttle obligation offered by a faction.
type Contract struct {
	ID               value.ID      `json:"id" validate:"required"`
	FactionSymbol    FactionSymbol `json:"factionSymbol" validate:"required"`
	Type             ContractType  `json:"type" validate:"required"`
	Terms            ContractTerms `json:"terms"`
	Accepted         bool          `json:"accepted"`
	Fulfilled        bool          `json:"fulfilled"`
	Expiration       time.Time     `json:"expiration" validate:"required"`
	DeadlineToAccept *time.Time    `json:"deadlineToAccept,omitempty"`
}

type ContractTerms struct {
	Deadline time.Time         `json:"deadline" validate:"required"`
	Payment  ContractPayment   `json:"payment"`
	Deliver  []ContractDeliver `json:"deliver" validate:"omitempty,dive"`
}

type ContractPayment struct {
	OnAccepted  value.NonNegative `json:"onAccepted"`
	OnFulfilled value.NonNegative `json:"onFulfilled"`
}

// ContractDeliver is one good the contract asks to be brought somewhere.
type ContractDeliver struct {
	TradeSymbol       value.Symbol      `json:"tradeSymbol" validate:"required"`
	DestinationSymbol value.Symbol      `json:"destinationSymbol" validate:"required"`
	UnitsRequired     value.NonNegative `json:"unitsRequired"`
	UnitsFulfilled    value.NonNegative `json:"unitsFulfilled"`
}
