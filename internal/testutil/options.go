package testutil

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/value"
)

// Epoch is the fixed instant fixtures are stamped with, so encoded caches
// compare byte for byte across runs.
var Epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// AgentOption configures an Agent fixture.
type AgentOption func(*domain.Agent)

// AgentCredits sets the agent's credit balance.
func AgentCredits(credits int64) AgentOption {
	return func(a *domain.Agent) { a.Credits = credits }
}

// AgentHeadquarters sets the agent's headquarters waypoint.
func AgentHeadquarters(waypoint string) AgentOption {
	return func(a *domain.Agent) { a.Headquarters = value.MustHeadquarters(waypoint) }
}

// AgentFaction sets the agent's starting faction.
func AgentFaction(faction domain.FactionSymbol) AgentOption {
	return func(a *domain.Agent) { a.StartingFaction = faction }
}

// ContractOption configures a Contract fixture.
type ContractOption func(*domain.Contract)

// Accepted marks the contract as already accepted.
func Accepted() ContractOption {
	return func(c *domain.Contract) { c.Accepted = true }
}

// Payment sets the contract's acceptance and fulfillment payments.
func Payment(onAccepted, onFulfilled int64) ContractOption {
	return func(c *domain.Contract) {
		c.Terms.Payment = domain.ContractPayment{
			OnAccepted:  value.Must(value.NewNonNegative(onAccepted)),
			OnFulfilled: value.Must(value.NewNonNegative(onFulfilled)),
		}
	}
}

// Deliver adds a delivery term.
func Deliver(trade, destination string, units int64) ContractOption {
	return func(c *domain.Contract) {
		c.Terms.Deliver = append(c.Terms.Deliver, domain.ContractDeliver{
			TradeSymbol:       value.MustSymbol(trade),
			DestinationSymbol: value.MustSymbol(destination),
			UnitsRequired:     value.Must(value.NewNonNegative(units)),
		})
	}
}

// ShipOption configures a Ship fixture.
type ShipOption func(*domain.Ship)

// Status sets the ship's navigation status.
func Status(status domain.ShipNavStatus) ShipOption {
	return func(s *domain.Ship) { s.Nav.Status = status }
}

// Docked is Status(NavStatusDocked).
func Docked() ShipOption { return Status(domain.NavStatusDocked) }

// InOrbit is Status(NavStatusInOrbit).
func InOrbit() ShipOption { return Status(domain.NavStatusInOrbit) }

// At places the ship at waypoint, deriving the system symbol from it.
func At(waypoint string) ShipOption {
	return func(s *domain.Ship) {
		system := value.Must(domain.SystemOf(waypoint))
		s.Nav.WaypointSymbol = value.MustSymbol(waypoint)
		s.Nav.SystemSymbol = system
		s.Nav.Route.Destination.Symbol = value.MustSymbol(waypoint)
		s.Nav.Route.Destination.SystemSymbol = system
		s.Nav.Route.Departure.Symbol = value.MustSymbol(waypoint)
		s.Nav.Route.Departure.SystemSymbol = system
	}
}

// Cargo sets the hold's capacity and contents; units is the sum of items.
func Cargo(capacity int64, items ...domain.CargoItem) ShipOption {
	return func(s *domain.Ship) {
		s.Cargo = NewCargo(capacity, items...)
	}
}

// Role sets the ship's registration role.
func Role(role domain.ShipRole) ShipOption {
	return func(s *domain.Ship) { s.Registration.Role = role }
}
