package domain

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/value"
)

// Ship is a vessel owned by the agent.
type Ship struct {
	Symbol       value.Symbol     `json:"symbol" validate:"required"`
	Registration ShipRegistration `json:"registration"`
	Nav          ShipNav          `json:"nav"`
	Crew         ShipCrew         `json:"crew"`
	Frame        ShipFrame        `json:"frame"`
	Reactor      ShipReactor      `json:"reactor"`
	Engine       ShipEngine       `json:"engine"`
	Modules      []ShipModule     `json:"modules" validate:"omitempty,dive"`
	Mounts       []ShipMount      `json:"mounts" validate:"omitempty,dive"`
	Cargo        ShipCargo        `json:"cargo"`
	Fuel         ShipFuel         `json:"fuel"`
}

// Docked reports whether the last known nav status is DOCKED.
func (s Ship) Docked() bool {
	return s.Nav.Status == NavStatusDocked
}

// InOrbit reports whether the last known nav status is IN_ORBIT.
func (s Ship) InOrbit() bool {
	return s.Nav.Status == NavStatusInOrbit
}

type ShipRegistration struct {
	Name          value.Name    `json:"name" validate:"required"`
	FactionSymbol FactionSymbol `json:"factionSymbol" validate:"required"`
	Role          ShipRole      `json:"role" validate:"required"`
}

type ShipNav struct {
	SystemSymbol   value.Symbol  `json:"systemSymbol" validate:"required"`
	WaypointSymbol value.Symbol  `json:"waypointSymbol" validate:"required"`
	Route          ShipNavRoute  `json:"route"`
	Status         ShipNavStatus `json:"status" validate:"required"`
	FlightMode     FlightMode    `json:"flightMode" validate:"required"`
}

type ShipNavRoute struct {
	Destination   RouteWaypoint `json:"destination"`
	Departure     RouteWaypoint `json:"departure"`
	DepartureTime time.Time     `json:"departureTime" validate:"required"`
	Arrival       time.Time     `json:"arrival" validate:"required"`
}

// RouteWaypoint is a waypoint as it appears inside a route.
type RouteWaypoint struct {
	Symbol       value.Symbol `json:"symbol" validate:"required"`
	Type         WaypointType `json:"type" validate:"required"`
	SystemSymbol value.Symbol `json:"systemSymbol" validate:"required"`
	X            int64        `json:"x"`
	Y            int64        `json:"y"`
}

type ShipCrew struct {
	Current  int64             `json:"current"`
	Required int64             `json:"required"`
	Capacity int64             `json:"capacity"`
	Rotation CrewRotation      `json:"rotation" validate:"required"`
	Morale   value.Percent     `json:"morale"`
	Wages    value.NonNegative `json:"wages"`
}

// ShipRequirements lists what a component draws from the ship. Absent keys mean none.
type ShipRequirements struct {
	Power *int64 `json:"power,omitempty"`
	Crew  *int64 `json:"crew,omitempty"`
	Slots *int64 `json:"slots,omitempty"`
}

type ShipFrame struct {
	Symbol         FrameSymbol       `json:"symbol" validate:"required"`
	Name           value.Name        `json:"name" validate:"required"`
	Description    value.Description `json:"description" validate:"required"`
	Condition      *value.Percent    `json:"condition,omitempty"`
	ModuleSlots    value.NonNegative `json:"moduleSlots"`
	MountingPoints value.NonNegative `json:"mountingPoints"`
	FuelCapacity   value.NonNegative `json:"fuelCapacity"`
	Requirements   ShipRequirements  `json:"requirements"`
}

type ShipReactor struct {
	Symbol       ReactorSymbol     `json:"symbol" validate:"required"`
	Name         value.Name        `json:"name" validate:"required"`
	Description  value.Description `json:"description" validate:"required"`
	Condition    *value.Percent    `json:"condition,omitempty"`
	PowerOutput  value.Positive    `json:"powerOutput" validate:"required"`
	Requirements ShipRequirements  `json:"requirements"`
}

type ShipEngine struct {
	Symbol       EngineSymbol      `json:"symbol" validate:"required"`
	Name         value.Name        `json:"name" validate:"required"`
	Description  value.Description `json:"description" validate:"required"`
	Condition    *value.Percent    `json:"condition,omitempty"`
	Speed        value.Positive    `json:"speed" validate:"required"`
	Requirements ShipRequirements  `json:"requirements"`
}

type ShipModule struct {
	Symbol       ModuleSymbol       `json:"symbol" validate:"required"`
	Capacity     *value.NonNegative `json:"capacity,omitempty"`
	Range        *value.NonNegative `json:"range,omitempty"`
	Name         value.Name         `json:"name" validate:"required"`
	Description  value.Description  `json:"description" validate:"required"`
	Requirements ShipRequirements   `json:"requirements"`
}

type ShipMount struct {
	Symbol       MountSymbol        `json:"symbol" validate:"required"`
	Name         value.Name         `json:"name" validate:"required"`
	Description  *value.Description `json:"description,omitempty"`
	Strength     *value.NonNegative `json:"strength,omitempty"`
	Deposits     []Deposit          `json:"deposits,omitempty"`
	Requirements ShipRequirements   `json:"requirements"`
}

// ShipCargo is replaced wholesale from server responses; it is never computed locally.
type ShipCargo struct {
	Capacity  value.NonNegative `json:"capacity"`
	Units     value.NonNegative `json:"units"`
	Inventory []CargoItem       `json:"inventory" validate:"omitempty,dive"`
}

type CargoItem struct {
	Symbol      value.Symbol      `json:"symbol" validate:"required"`
	Name        value.Name        `json:"name" validate:"required"`
	Description value.Description `json:"description" validate:"required"`
	Units       value.Positive    `json:"units" validate:"required"`
}

type ShipFuel struct {
	Current  value.NonNegative `json:"current"`
	Capacity value.NonNegative `json:"capacity"`
	Consumed *FuelConsumed     `json:"consumed,omitempty"`
}

type FuelConsumed struct {
	Amount    value.NonNegative `json:"amount"`
	Timestamp time.Time         `json:"timestamp" validate:"required"`
}
