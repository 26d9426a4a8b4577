package domain

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/value"
)

// Waypoint is a navigable location in a system.
type Waypoint struct {
	Symbol       value.Symbol      `json:"symbol" validate:"required"`
	Type         WaypointType      `json:"type" validate:"required"`
	SystemSymbol value.Symbol      `json:"systemSymbol" validate:"required"`
	X            int64             `json:"x"`
	Y            int64             `json:"y"`
	Orbitals     []WaypointOrbital `json:"orbitals" validate:"omitempty,dive"`
	Faction      *WaypointFaction  `json:"faction,omitempty"`
	Traits       []WaypointTrait   `json:"traits" validate:"omitempty,dive"`
	Chart        *Chart            `json:"chart,omitempty"`
}

// HasTrait reports whether the waypoint carries the given trait.
func (w Waypoint) HasTrait(symbol WaypointTraitSymbol) bool {
	for _, t := range w.Traits {
		if t.Symbol == symbol {
			return true
		}
	}
	return false
}

type WaypointOrbital struct {
	Symbol value.Symbol `json:"symbol" validate:"required"`
}

type WaypointFaction struct {
	Symbol FactionSymbol `json:"symbol" validate:"required"`
}

type WaypointTrait struct {
	Symbol      WaypointTraitSymbol `json:"symbol" validate:"required"`
	Name        value.Name          `json:"name" validate:"required"`
	Description value.Description   `json:"description" validate:"required"`
}

// Chart records who first charted a waypoint.
type Chart struct {
	WaypointSymbol *value.Symbol `json:"waypointSymbol,omitempty"`
	SubmittedBy    *value.Symbol `json:"submittedBy,omitempty"`
	SubmittedOn    time.Time     `json:"submittedOn" validate:"required"`
}
