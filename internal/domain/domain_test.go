package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/spacetraders/internal/value"
)

const agentJSON = `{
	"accountId": "clabc123",
	"symbol": "ABCDEFGHIJKLMN",
	"headquarters": "X1-ZA40-15970B",
	"credits": 100000,
	"startingFaction": "COSMIC"
}`

func TestAgent_Decode(t *testing.T) {
	var agent Agent
	require.NoError(t, json.Unmarshal([]byte(agentJSON), &agent))

	require.NotNil(t, agent.AccountID)
	require.True(t, agent.AccountID.Equal("clabc123"))
	require.True(t, agent.Symbol.Equal("ABCDEFGHIJKLMN"))
	require.Equal(t, int64(100000), agent.Credits)
	require.Equal(t, FactionCosmic, agent.StartingFaction)

	system, err := agent.StartingSystem()
	require.NoError(t, err)
	require.Equal(t, "X1-ZA40", system.String())
}

func TestAgent_DecodeRejectsEmptySymbol(t *testing.T) {
	var agent Agent
	err := json.Unmarshal([]byte(`{"symbol": "", "headquarters": "X1-A-B", "credits": 0}`), &agent)
	require.ErrorIs(t, err, value.ErrEmptyString)
}

func TestSystemOf(t *testing.T) {
	tests := []struct {
		name     string
		waypoint string
		want     string
		wantErr  bool
	}{
		{name: "waypoint", waypoint: "X1-DF55-20250Z", want: "X1-DF55"},
		{name: "system only", waypoint: "X1-DF55", want: "X1"},
		{name: "no dash", waypoint: "X1", wantErr: true},
		{name: "leading dash", waypoint: "-X1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SystemOf(tt.waypoint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestEnum_UnknownTagFailsDecoding(t *testing.T) {
	var status ShipNavStatus
	err := json.Unmarshal([]byte(`"WARPING"`), &status)
	require.ErrorIs(t, err, ErrUnknownEnum)

	var unknown *UnknownEnumError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "WARPING", unknown.Value)
	require.Equal(t, "ship nav status", unknown.Type)
}

func TestEnum_RejectsNonStrings(t *testing.T) {
	var mode FlightMode
	require.Error(t, json.Unmarshal([]byte(`3`), &mode))
	require.Error(t, json.Unmarshal([]byte(`""`), &mode))
}

func TestEnum_MarshalRejectsUnknown(t *testing.T) {
	_, err := json.Marshal(ShipType("SHIP_TEAPOT"))
	require.ErrorIs(t, err, ErrUnknownEnum)

	data, err := json.Marshal(ShipMiningDrone)
	require.NoError(t, err)
	require.JSONEq(t, `"SHIP_MINING_DRONE"`, string(data))
}

func TestEnum_ParseMatchesValues(t *testing.T) {
	for _, v := range WaypointTraitSymbolValues() {
		parsed, err := ParseWaypointTraitSymbol(string(v))
		require.NoError(t, err)
		require.Equal(t, v, parsed)
		require.True(t, v.Valid())
	}
	_, err := ParseWaypointTraitSymbol("NOT_A_TRAIT")
	require.ErrorIs(t, err, ErrUnknownEnum)
}

func TestProperty_EnumRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		deposit := rapid.SampledFrom(DepositValues()).Draw(t, "deposit")

		data, err := json.Marshal(deposit)
		require.NoError(t, err)

		var back Deposit
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, deposit, back)
	})
}

func TestEnumValues_ReturnsCopy(t *testing.T) {
	values := SurveySizeValues()
	values[0] = "MUTATED"
	require.Equal(t, SurveySmall, SurveySizeValues()[0])
}

const contractJSON = `{
	"id": "cl0hok34m0003ks0jjql5q8f2",
	"factionSymbol": "COSMIC",
	"type": "PROCUREMENT",
	"terms": {
		"deadline": "2023-03-14T17:37:32.519Z",
		"payment": {"onAccepted": 35640, "onFulfilled": 142560},
		"deliver": [{
			"tradeSymbol": "ALUMINUM_ORE",
			"destinationSymbol": "X1-ZA40-15970B",
			"unitsRequired": 6400,
			"unitsFulfilled": 0
		}]
	},
	"accepted": false,
	"fulfilled": false,
	"expiration": "2023-03-08T17:37:32.519Z",
	"deadlineToAccept": "2023-03-08T17:37:32.519Z"
}`

func TestContract_Decode(t *testing.T) {
	var contract Contract
	require.NoError(t, json.Unmarshal([]byte(contractJSON), &contract))

	require.True(t, contract.ID.Equal("cl0hok34m0003ks0jjql5q8f2"))
	require.Equal(t, ContractProcurement, contract.Type)
	require.True(t, contract.Terms.Payment.OnAccepted.Equal(35640))
	require.Len(t, contract.Terms.Deliver, 1)
	require.True(t, contract.Terms.Deliver[0].UnitsRequired.Equal(6400))
	require.NotNil(t, contract.DeadlineToAccept)
	require.False(t, contract.Accepted)
}

func TestContract_DecodeRejectsNegativePayment(t *testing.T) {
	var payment ContractPayment
	err := json.Unmarshal([]byte(`{"onAccepted": -1, "onFulfilled": 5}`), &payment)
	require.ErrorIs(t, err, value.ErrOutOfRange)
}

const shipJSON = `{
	"symbol": "X1-SHIP-1",
	"registration": {"name": "X1-SHIP-1", "factionSymbol": "COSMIC", "role": "EXCAVATOR"},
	"nav": {
		"systemSymbol": "X1-ZA40",
		"waypointSymbol": "X1-ZA40-15970B",
		"route": {
			"destination": {"symbol": "X1-ZA40-15970B", "type": "PLANET", "systemSymbol": "X1-ZA40", "x": 10, "y": -3},
			"departure": {"symbol": "X1-ZA40-15970B", "type": "PLANET", "systemSymbol": "X1-ZA40", "x": 10, "y": -3},
			"departureTime": "2023-03-08T17:37:32.519Z",
			"arrival": "2023-03-08T17:37:32.519Z"
		},
		"status": "DOCKED",
		"flightMode": "CRUISE"
	},
	"crew": {"current": 0, "required": 0, "capacity": 0, "rotation": "STRICT", "morale": 100, "wages": 0},
	"frame": {
		"symbol": "FRAME_DRONE", "name": "Drone", "description": "A small drone frame.",
		"condition": 100, "moduleSlots": 2, "mountingPoints": 1, "fuelCapacity": 0,
		"requirements": {"power": 1, "crew": -1}
	},
	"reactor": {
		"symbol": "REACTOR_CHEMICAL_I", "name": "Chemical Reactor I", "description": "Burns fuel.",
		"condition": 100, "powerOutput": 15, "requirements": {"crew": 3}
	},
	"engine": {
		"symbol": "ENGINE_IMPULSE_DRIVE_I", "name": "Impulse Drive I", "description": "Basic engine.",
		"condition": 100, "speed": 2, "requirements": {"power": 1, "crew": 0}
	},
	"modules": [{
		"symbol": "MODULE_CARGO_HOLD_I", "capacity": 30, "name": "Cargo Hold",
		"description": "Stores cargo.", "requirements": {"crew": 0, "power": 1, "slots": 1}
	}],
	"mounts": [{
		"symbol": "MOUNT_MINING_LASER_I", "name": "Mining Laser I", "description": "Extracts ore.",
		"strength": 10, "deposits": ["IRON_ORE", "COPPER_ORE"], "requirements": {"crew": 0, "power": 1}
	}],
	"cargo": {"capacity": 30, "units": 0, "inventory": []},
	"fuel": {"current": 0, "capacity": 0, "consumed": {"amount": 0, "timestamp": "2023-03-08T17:37:32.519Z"}}
}`

func TestShip_Decode(t *testing.T) {
	var ship Ship
	require.NoError(t, json.Unmarshal([]byte(shipJSON), &ship))

	require.True(t, ship.Symbol.Equal("X1-SHIP-1"))
	require.True(t, ship.Docked())
	require.False(t, ship.InOrbit())
	require.Equal(t, FlightModeCruise, ship.Nav.FlightMode)
	require.Equal(t, RoleExcavator, ship.Registration.Role)
	require.Equal(t, int64(-1), *ship.Frame.Requirements.Crew)
	require.Nil(t, ship.Frame.Requirements.Slots)
	require.Equal(t, []Deposit{DepositIronOre, DepositCopperOre}, ship.Mounts[0].Deposits)
	require.True(t, ship.Modules[0].Capacity.Equal(30))
	require.Nil(t, ship.Modules[0].Range)
	require.True(t, ship.Cargo.Capacity.Equal(30))
	require.Empty(t, ship.Cargo.Inventory)
}

func TestShip_JSONRoundTrip(t *testing.T) {
	var ship Ship
	require.NoError(t, json.Unmarshal([]byte(shipJSON), &ship))

	data, err := json.Marshal(ship)
	require.NoError(t, err)

	var back Ship
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, ship, back)
}

func TestShip_DecodeRejectsMoraleAbove100(t *testing.T) {
	var crew ShipCrew
	err := json.Unmarshal([]byte(`{"current":0,"required":0,"capacity":0,"rotation":"STRICT","morale":101,"wages":0}`), &crew)
	require.ErrorIs(t, err, value.ErrOutOfRange)
}

func TestCargoItem_RejectsZeroUnits(t *testing.T) {
	var item CargoItem
	err := json.Unmarshal([]byte(`{"symbol":"IRON_ORE","name":"Iron Ore","description":"Ore.","units":0}`), &item)
	require.ErrorIs(t, err, value.ErrOutOfRange)
}

func TestWaypoint_DecodeAndHasTrait(t *testing.T) {
	raw := `{
		"symbol": "X1-ZA40-15970B",
		"type": "PLANET",
		"systemSymbol": "X1-ZA40",
		"x": 10,
		"y": -3,
		"orbitals": [{"symbol": "X1-ZA40-69371Z"}],
		"faction": {"symbol": "COSMIC"},
		"traits": [
			{"symbol": "SHIPYARD", "name": "Shipyard", "description": "Sells ships."},
			{"symbol": "MARKETPLACE", "name": "Marketplace", "description": "Trades goods."}
		],
		"chart": {"submittedBy": "COSMIC", "submittedOn": "2023-03-08T17:37:32.519Z"}
	}`
	var wp Waypoint
	require.NoError(t, json.Unmarshal([]byte(raw), &wp))

	require.Equal(t, WaypointPlanet, wp.Type)
	require.True(t, wp.HasTrait(WaypointTraitShipyard))
	require.False(t, wp.HasTrait(WaypointTraitUncharted))
	require.NotNil(t, wp.Faction)
	require.Equal(t, FactionCosmic, wp.Faction.Symbol)
	require.NotNil(t, wp.Chart)
	require.True(t, wp.Chart.SubmittedBy.Equal("COSMIC"))
	require.Nil(t, wp.Chart.WaypointSymbol)
}

func TestShipyard_Sells(t *testing.T) {
	raw := `{
		"symbol": "X1-ZA40-68707C",
		"shipTypes": [{"type": "SHIP_PROBE"}, {"type": "SHIP_MINING_DRONE"}],
		"modificationsFee": 100
	}`
	var yard Shipyard
	require.NoError(t, json.Unmarshal([]byte(raw), &yard))
	require.True(t, yard.Sells(ShipMiningDrone))
	require.False(t, yard.Sells(ShipOreHound))
	require.Empty(t, yard.Ships)
}

func TestExtractionResult_Decode(t *testing.T) {
	raw := `{
		"cooldown": {"shipSymbol": "X1-SHIP-1", "totalSeconds": 70, "remainingSeconds": 69, "expiration": "2023-03-08T17:38:42.519Z"},
		"extraction": {"shipSymbol": "X1-SHIP-1", "yield": {"symbol": "IRON_ORE", "units": 15}},
		"cargo": {"capacity": 60, "units": 15, "inventory": [{"symbol": "IRON_ORE", "name": "Iron Ore", "description": "Ore.", "units": 15}]}
	}`
	var result ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	require.Equal(t, 69*time.Second, result.Cooldown.Remaining())
	require.True(t, result.Extraction.Yield.Units.Equal(15))
	require.True(t, result.Cargo.Units.Equal(15))
}

func TestSurvey_Expired(t *testing.T) {
	now := time.Date(2023, 3, 8, 12, 0, 0, 0, time.UTC)
	survey := Survey{Expiration: now.Add(time.Minute)}
	require.False(t, survey.Expired(now))
	require.True(t, survey.Expired(now.Add(time.Minute)))
}
