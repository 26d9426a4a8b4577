// Package testutil provides fixtures, a session builder and a fake API server
// for tests.
package testutil

import (
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/value"
)

// DefaultHeadquarters is where fixture agents and ships start.
const DefaultHeadquarters = "X1-ZA40-15970B"

// NewAgent returns a valid agent with every required field set.
func NewAgent(symbol string, opts ...AgentOption) domain.Agent {
	accountID := value.MustID("cl0hok34m0003ks0jjql5q8f2")
	agent := domain.Agent{
		AccountID:       &accountID,
		Symbol:          value.MustSymbol(symbol),
		Headquarters:    value.MustHeadquarters(DefaultHeadquarters),
		Credits:         100000,
		StartingFaction: domain.FactionCosmic,
	}
	for _, opt := range opts {
		opt(&agent)
	}
	return agent
}

// NewFaction returns the COSMIC faction as the server describes it.
func NewFaction() domain.Faction {
	return domain.Faction{
		Symbol:       domain.FactionCosmic,
		Name:         value.MustName("Cosmic Engineers"),
		Description:  value.MustDescription("The Cosmic Engineers are a group of highly advanced scientists and engineers."),
		Headquarters: value.MustHeadquarters(DefaultHeadquarters),
		Traits: []domain.FactionTrait{{
			Symbol:      domain.TraitInnovative,
			Name:        value.MustName("Innovative"),
			Description: value.MustDescription("Willing to try new and untested ideas."),
		}},
		IsRecruiting: true,
	}
}

// NewContract returns an unaccepted procurement contract.
func NewContract(id string, opts ...ContractOption) domain.Contract {
	contract := domain.Contract{
		ID:            value.MustID(id),
		FactionSymbol: domain.FactionCosmic,
		Type:          domain.ContractProcurement,
		Terms: domain.ContractTerms{
			Deadline: Epoch.AddDate(0, 0, 7),
			Payment: domain.ContractPayment{
				OnAccepted:  value.Must(value.NewNonNegative(1000)),
				OnFulfilled: value.Must(value.NewNonNegative(5000)),
			},
			Deliver: []domain.ContractDeliver{},
		},
		Expiration: Epoch.AddDate(0, 0, 1),
	}
	for _, opt := range opts {
		opt(&contract)
	}
	return contract
}

// NewShip returns a docked command frigate at DefaultHeadquarters with an
// empty hold.
func NewShip(symbol string, opts ...ShipOption) domain.Ship {
	ship := domain.Ship{
		Symbol: value.MustSymbol(symbol),
		Registration: domain.ShipRegistration{
			Name:          value.MustName(symbol),
			FactionSymbol: domain.FactionCosmic,
			Role:          domain.RoleCommand,
		},
		Nav: domain.ShipNav{
			Route: domain.ShipNavRoute{
				Destination:   domain.RouteWaypoint{Type: domain.WaypointPlanet},
				Departure:     domain.RouteWaypoint{Type: domain.WaypointPlanet},
				DepartureTime: Epoch,
				Arrival:       Epoch,
			},
			Status:     domain.NavStatusDocked,
			FlightMode: domain.FlightModeCruise,
		},
		Crew: domain.ShipCrew{
			Current:  59,
			Required: 59,
			Capacity: 80,
			Rotation: domain.RotationStrict,
			Morale:   value.Must(value.NewPercent(100)),
			Wages:    value.Must(value.NewNonNegative(0)),
		},
		Frame: domain.ShipFrame{
			Symbol:         domain.FrameFrigate,
			Name:           value.MustName("Frame Frigate"),
			Description:    value.MustDescription("A medium-sized, multi-purpose spacecraft."),
			ModuleSlots:    value.Must(value.NewNonNegative(8)),
			MountingPoints: value.Must(value.NewNonNegative(5)),
			FuelCapacity:   value.Must(value.NewNonNegative(1200)),
		},
		Reactor: domain.ShipReactor{
			Symbol:      domain.ReactorFissionI,
			Name:        value.MustName("Fission Reactor I"),
			Description: value.MustDescription("A basic fission power reactor."),
			PowerOutput: value.Must(value.NewPositive(31)),
		},
		Engine: domain.ShipEngine{
			Symbol:      domain.EngineIonDriveII,
			Name:        value.MustName("Ion Drive II"),
			Description: value.MustDescription("An advanced propulsion system."),
			Speed:       value.Must(value.NewPositive(30)),
		},
		Modules: []domain.ShipModule{},
		Mounts:  []domain.ShipMount{},
		Cargo:   NewCargo(60),
		Fuel: domain.ShipFuel{
			Current:  value.Must(value.NewNonNegative(1200)),
			Capacity: value.Must(value.NewNonNegative(1200)),
		},
	}
	At(DefaultHeadquarters)(&ship)
	for _, opt := range opts {
		opt(&ship)
	}
	return ship
}

// NewCargoItem returns units of a trade good.
func NewCargoItem(symbol string, units int64) domain.CargoItem {
	return domain.CargoItem{
		Symbol:      value.MustSymbol(symbol),
		Name:        value.MustName(symbol),
		Description: value.MustDescription("Trade good " + symbol),
		Units:       value.Must(value.NewPositive(units)),
	}
}

// NewCargo builds a hold whose units are the sum of its items.
func NewCargo(capacity int64, items ...domain.CargoItem) domain.ShipCargo {
	var units int64
	for _, item := range items {
		units += item.Units.Int64()
	}
	return domain.ShipCargo{
		Capacity:  value.Must(value.NewNonNegative(capacity)),
		Units:     value.Must(value.NewNonNegative(units)),
		Inventory: append([]domain.CargoItem{}, items...),
	}
}

// NewWaypoint returns an orbital-free waypoint with the given traits.
func NewWaypoint(symbol string, traits ...domain.WaypointTraitSymbol) domain.Waypoint {
	wp := domain.Waypoint{
		Symbol:       value.MustSymbol(symbol),
		Type:         domain.WaypointPlanet,
		SystemSymbol: value.Must(domain.SystemOf(symbol)),
		X:            10,
		Y:            -4,
		Orbitals:     []domain.WaypointOrbital{},
		Traits:       []domain.WaypointTrait{},
	}
	for _, trait := range traits {
		wp.Traits = append(wp.Traits, domain.WaypointTrait{
			Symbol:      trait,
			Name:        value.MustName(string(trait)),
			Description: value.MustDescription("Trait " + string(trait)),
		})
	}
	return wp
}

// NewShipyard returns a shipyard selling the given types.
func NewShipyard(symbol string, types ...domain.ShipType) domain.Shipyard {
	yard := domain.Shipyard{Symbol: value.MustSymbol(symbol), ShipTypes: []domain.ShipyardShipType{}}
	for _, t := range types {
		yard.ShipTypes = append(yard.ShipTypes, domain.ShipyardShipType{Type: t})
	}
	return yard
}
