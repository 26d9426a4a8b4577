package presentation

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/api"
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/ledger"
	"github.com/zjrosen/spacetraders/internal/session"
)

// AgentDTO summarizes the agent and the size of its fleet.
type AgentDTO struct {
	Symbol       string `json:"symbol"`
	Headquarters string `json:"headquarters"`
	Credits      int64  `json:"credits"`
	Faction      string `json:"faction,omitempty"`
	Ships        int    `json:"ships"`
	Contracts    int    `json:"contracts"`
}

// ContractDTO is a contract flattened for output.
type ContractDTO struct {
	ID          string       `json:"id"`
	Faction     string       `json:"faction"`
	Type        string       `json:"type"`
	Accepted    bool         `json:"accepted"`
	Fulfilled   bool         `json:"fulfilled"`
	OnAccepted  int64        `json:"on_accepted"`
	OnFulfilled int64        `json:"on_fulfilled"`
	Deadline    time.Time    `json:"deadline"`
	Deliver     []DeliverDTO `json:"deliver"`
}

type DeliverDTO struct {
	Trade       string `json:"trade"`
	Destination string `json:"destination"`
	Required    int64  `json:"required"`
	Fulfilled   int64  `json:"fulfilled"`
}

// ShipDTO is a ship's identity, position and hold.
type ShipDTO struct {
	Symbol        string    `json:"symbol"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Waypoint      string    `json:"waypoint"`
	FlightMode    string    `json:"flight_mode"`
	CargoUnits    int64     `json:"cargo_units"`
	CargoCapacity int64     `json:"cargo_capacity"`
	Fuel          int64     `json:"fuel"`
	FuelCapacity  int64     `json:"fuel_capacity"`
	Cargo         []ItemDTO `json:"cargo"`
}

type ItemDTO struct {
	Symbol string `json:"symbol"`
	Units  int64  `json:"units"`
}

// NavDTO is the outcome of a dock or orbit.
type NavDTO struct {
	Ship     string `json:"ship"`
	Status   string `json:"status"`
	Waypoint string `json:"waypoint"`
}

// ExtractionDTO is the outcome of an extraction.
type ExtractionDTO struct {
	Ship            string    `json:"ship"`
	Yield           string    `json:"yield"`
	Units           int64     `json:"units"`
	CooldownSeconds int64     `json:"cooldown_seconds"`
	CargoUnits      int64     `json:"cargo_units"`
	CargoCapacity   int64     `json:"cargo_capacity"`
	Cargo           []ItemDTO `json:"cargo"`
}

// PurchaseDTO is the outcome of a ship purchase.
type PurchaseDTO struct {
	Ship     string `json:"ship"`
	Role     string `json:"role"`
	Waypoint string `json:"waypoint"`
	Price    int64  `json:"price"`
	Credits  int64  `json:"credits"`
}

// WaypointDTO is a waypoint with its trait symbols.
type WaypointDTO struct {
	Symbol string   `json:"symbol"`
	Type   string   `json:"type"`
	System string   `json:"system"`
	X      int64    `json:"x"`
	Y      int64    `json:"y"`
	Traits []string `json:"traits"`
}

// ShipyardDTO lists the hulls a shipyard sells, with prices when known.
type ShipyardDTO struct {
	Symbol    string           `json:"symbol"`
	ShipTypes []string         `json:"ship_types"`
	Prices    map[string]int64 `json:"prices,omitempty"`
}

// EntryDTO is one ledger entry.
type EntryDTO struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Reference string    `json:"reference"`
	Delta     int64     `json:"delta"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// LedgerDTO is an agent's entries plus their net sum.
type LedgerDTO struct {
	Agent   string     `json:"agent"`
	Net     int64      `json:"net"`
	Entries []EntryDTO `json:"entries"`
}

// PageDTO wraps one page of a listing. NextPage is nil on the last page.
type PageDTO[T any] struct {
	Items    []T    `json:"items"`
	Total    int64  `json:"total"`
	Page     int64  `json:"page"`
	Limit    int64  `json:"limit"`
	NextPage *int64 `json:"next_page,omitempty"`
}

// FromAgent builds an AgentDTO from the session cache.
func FromAgent(cache session.View) AgentDTO {
	agent := cache.Agent()
	return AgentDTO{
		Symbol:       agent.Symbol.String(),
		Headquarters: agent.Headquarters.String(),
		Credits:      agent.Credits,
		Faction:      string(agent.StartingFaction),
		Ships:        len(cache.Ships()),
		Contracts:    len(cache.Contracts()),
	}
}

func FromContract(c domain.Contract) ContractDTO {
	deliver := make([]DeliverDTO, 0, len(c.Terms.Deliver))
	for _, d := range c.Terms.Deliver {
		deliver = append(deliver, DeliverDTO{
			Trade:       d.TradeSymbol.String(),
			Destination: d.DestinationSymbol.String(),
			Required:    d.UnitsRequired.Int64(),
			Fulfilled:   d.UnitsFulfilled.Int64(),
		})
	}
	return ContractDTO{
		ID:          c.ID.String(),
		Faction:     string(c.FactionSymbol),
		Type:        string(c.Type),
		Accepted:    c.Accepted,
		Fulfilled:   c.Fulfilled,
		OnAccepted:  c.Terms.Payment.OnAccepted.Int64(),
		OnFulfilled: c.Terms.Payment.OnFulfilled.Int64(),
		Deadline:    c.Terms.Deadline,
		Deliver:     deliver,
	}
}

func FromContracts(contracts []domain.Contract) []ContractDTO {
	return mapSlice(contracts, FromContract)
}

func FromShip(s domain.Ship) ShipDTO {
	return ShipDTO{
		Symbol:        s.Symbol.String(),
		Role:          string(s.Registration.Role),
		Status:        string(s.Nav.Status),
		Waypoint:      s.Nav.WaypointSymbol.String(),
		FlightMode:    string(s.Nav.FlightMode),
		CargoUnits:    s.Cargo.Units.Int64(),
		CargoCapacity: s.Cargo.Capacity.Int64(),
		Fuel:          s.Fuel.Current.Int64(),
		FuelCapacity:  s.Fuel.Capacity.Int64(),
		Cargo:         fromItems(s.Cargo.Inventory),
	}
}

func FromShips(ships []domain.Ship) []ShipDTO {
	return mapSlice(ships, FromShip)
}

func FromNav(ship string, nav domain.ShipNav) NavDTO {
	return NavDTO{Ship: ship, Status: string(nav.Status), Waypoint: nav.WaypointSymbol.String()}
}

func FromExtraction(r domain.ExtractionResult) ExtractionDTO {
	return ExtractionDTO{
		Ship:            r.Extraction.ShipSymbol.String(),
		Yield:           r.Extraction.Yield.Symbol.String(),
		Units:           r.Extraction.Yield.Units.Int64(),
		CooldownSeconds: r.Cooldown.RemainingSeconds.Int64(),
		CargoUnits:      r.Cargo.Units.Int64(),
		CargoCapacity:   r.Cargo.Capacity.Int64(),
		Cargo:           fromItems(r.Cargo.Inventory),
	}
}

func FromPurchase(p domain.ShipPurchase) PurchaseDTO {
	return PurchaseDTO{
		Ship:     p.Ship.Symbol.String(),
		Role:     string(p.Ship.Registration.Role),
		Waypoint: p.Transaction.WaypointSymbol.String(),
		Price:    p.Transaction.Price.Int64(),
		Credits:  p.Agent.Credits,
	}
}

func FromWaypoint(w domain.Waypoint) WaypointDTO {
	traits := make([]string, 0, len(w.Traits))
	for _, t := range w.Traits {
		traits = append(traits, string(t.Symbol))
	}
	return WaypointDTO{
		Symbol: w.Symbol.String(),
		Type:   string(w.Type),
		System: w.SystemSymbol.String(),
		X:      w.X,
		Y:      w.Y,
		Traits: traits,
	}
}

func FromShipyard(s domain.Shipyard) ShipyardDTO {
	dto := ShipyardDTO{Symbol: s.Symbol.String(), ShipTypes: make([]string, 0, len(s.ShipTypes))}
	for _, t := range s.ShipTypes {
		dto.ShipTypes = append(dto.ShipTypes, string(t.Type))
	}
	if len(s.Ships) > 0 {
		dto.Prices = make(map[string]int64, len(s.Ships))
		for _, ship := range s.Ships {
			dto.Prices[string(ship.Type)] = ship.PurchasePrice.Int64()
		}
	}
	return dto
}

func FromLedger(agent string, net int64, entries []*ledger.Entry) LedgerDTO {
	dto := LedgerDTO{Agent: agent, Net: net, Entries: make([]EntryDTO, 0, len(entries))}
	for _, e := range entries {
		dto.Entries = append(dto.Entries, EntryDTO{
			ID:        e.ID(),
			Kind:      e.Kind().String(),
			Reference: e.Reference(),
			Delta:     e.Delta(),
			Balance:   e.Balance(),
			CreatedAt: e.CreatedAt(),
		})
	}
	return dto
}

// FromPage converts a page of domain records with fn.
func FromPage[T, D any](page api.Page[T], fn func(T) D) PageDTO[D] {
	dto := PageDTO[D]{
		Items: mapSlice(page.Data, fn),
		Total: page.Meta.Total,
		Page:  page.Meta.Page.Int64(),
		Limit: page.Meta.Limit.Int64(),
	}
	if next, ok := page.Meta.NextPage(); ok {
		n := next.Page.Int64()
		dto.NextPage = &n
	}
	return dto
}

func fromItems(items []domain.CargoItem) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, ItemDTO{Symbol: it.Symbol.String(), Units: it.Units.Int64()})
	}
	return out
}

func mapSlice[T, D any](in []T, fn func(T) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
