package domain

import "github.com/zjrosen/spacetraders/internal/value"

// Faction is one of the factions an agent can start in.
type Faction struct {
	Symbol       FactionSymbol      `json:"symbol" validate:"required"`
	Name         value.Name         `json:"name" validate:"required"`
	Description  value.Description  `json:"description" validate:"required"`
	Headquarters value.Headquarters `json:"headquarters" validate:"required"`
	Traits       []FactionTrait     `json:"traits" validate:"omitempty,dive"`
	IsRecruiting bool               `json:"isRecruiting"`
}

type FactionTrait struct {
	Symbol      FactionTraitSymbol `json:"symbol" validate:"required"`
	Name        value.Name         `json:"name" validate:"required"`
	Description value.Description  `json:"description" validate:"required"`
}
