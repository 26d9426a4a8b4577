package domain

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/value"
)

// Survey is a time-limited deposit signature. Passing one to an extraction
// biases the yield towards its deposits.
type Survey struct {
	Signature  value.Symbol    `json:"signature" validate:"required"`
	Symbol     value.Symbol    `json:"symbol" validate:"required"`
	Deposits   []SurveyDeposit `json:"deposits" validate:"omitempty,dive"`
	Expiration time.Time       `json:"expiration" validate:"required"`
	Size       SurveySize      `json:"size" validate:"required"`
}

// Expired reports whether the survey can no longer be used at now.
func (s Survey) Expired(now time.Time) bool {
	return !now.Before(s.Expiration)
}

type SurveyDeposit struct {
	Symbol value.Symbol `json:"symbol" validate:"required"`
}

// Cooldown is the wait the server enforces before a ship may act again.
type Cooldown struct {
	ShipSymbol       value.Symbol      `json:"shipSymbol" validate:"required"`
	TotalSeconds     value.NonNegative `json:"totalSeconds"`
	RemainingSeconds value.NonNegative `json:"remainingSeconds"`
	Expiration       *time.Time        `json:"expiration,omitempty"`
}

// Remaining returns the wait as a duration.
func (c Cooldown) Remaining() time.Duration {
	return time.Duration(c.RemainingSeconds.Int64()) * time.Second
}

// Extraction is what a single extract action produced.
type Extraction struct {
	ShipSymbol value.Symbol    `json:"shipSymbol" validate:"required"`
	Yield      ExtractionYield `json:"yield"`
}

type ExtractionYield struct {
	Symbol value.Symbol   `json:"symbol" validate:"required"`
	Units  value.Positive `json:"units" validate:"required"`
}

// ExtractionResult bundles everything the extract endpoint returns.
type ExtractionResult struct {
	Cooldown   Cooldown   `json:"cooldown"`
	Extraction Extraction `json:"extraction"`
	Cargo      ShipCargo  `json:"cargo"`
}
