package testutil

import "github.com/zjrosen/spacetraders/internal/domain"

// Identifiers used by the standard session.
const (
	StandardAgent       = "TESTER"
	StandardContract    = "clhy0c0y20001s60jaj7ntx2n"
	StandardDockedShip  = "TESTER-1"
	StandardOrbitShip   = "TESTER-2"
	StandardOnAccepted  = 6072
	StandardCredits     = 150000
	StandardAsteroidWpt = "X1-ZA40-99095A"
)

// WithStandardSession adds the dataset most client tests start from: one
// unaccepted contract, one docked command ship and one mining drone in orbit
// over an asteroid field.
func (b *Builder) WithStandardSession() *Builder {
	return b.
		WithAgent(StandardAgent, AgentCredits(StandardCredits)).
		WithContract(StandardContract,
			Payment(StandardOnAccepted, 24416),
			Deliver("ALUMINUM_ORE", DefaultHeadquarters, 61)).
		WithShip(StandardDockedShip, Docked(), Cargo(60)).
		WithShip(StandardOrbitShip, InOrbit(), At(StandardAsteroidWpt),
			Role(domain.RoleExcavator),
			Cargo(30, NewCargoItem("ICE_WATER", 4)))
}
