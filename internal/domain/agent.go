package domain

import (
	"fmt"
	"strings"

	"github.com/zjrosen/spacetraders/internal/value"
)

// Agent is the player account.
type Agent struct {
	AccountID       *value.ID          `json:"accountId,omitempty"`
	Symbol          value.Symbol       `json:"symbol" validate:"required"`
	Headquarters    value.Headquarters `json:"headquarters" validate:"required"`
	Credits         int64              `json:"credits"`
	StartingFaction FactionSymbol      `json:"startingFaction,omitempty"`
}

// StartingSystem derives the system symbol from the headquarters waypoint.
// Waypoint symbols have the form SECTOR-SYSTEM-WAYPOINT.
func (a Agent) StartingSystem() (value.Symbol, error) {
	return SystemOf(a.Headquarters.String())
}

// SystemOf returns the system part of a waypoint symbol.
func SystemOf(waypoint string) (value.Symbol, error) {
	i := strings.LastIndex(waypoint, "-")
	if i <= 0 {
		return value.Symbol{}, fmt.Errorf("waypoint %q has no system component", waypoint)
	}
	return value.NewSymbol(waypoint[:i])
}
