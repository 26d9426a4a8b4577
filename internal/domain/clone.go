package domain

import "slices"

// Clone methods copy every slice and pointer a record holds, so the copy
// shares no memory with the original. Nil and empty slices are preserved.

func (a Agent) Clone() Agent {
	a.AccountID = clonePtr(a.AccountID)
	return a
}

func (f Faction) Clone() Faction {
	f.Traits = slices.Clone(f.Traits)
	return f
}

func (c Contract) Clone() Contract {
	c.DeadlineToAccept = clonePtr(c.DeadlineToAccept)
	c.Terms.Deliver = slices.Clone(c.Terms.Deliver)
	return c
}

func (s Ship) Clone() Ship {
	s.Frame.Condition = clonePtr(s.Frame.Condition)
	s.Frame.Requirements = s.Frame.Requirements.clone()
	s.Reactor.Condition = clonePtr(s.Reactor.Condition)
	s.Reactor.Requirements = s.Reactor.Requirements.clone()
	s.Engine.Condition = clonePtr(s.Engine.Condition)
	s.Engine.Requirements = s.Engine.Requirements.clone()
	s.Modules = cloneEach(s.Modules, ShipModule.clone)
	s.Mounts = cloneEach(s.Mounts, ShipMount.clone)
	s.Cargo.Inventory = slices.Clone(s.Cargo.Inventory)
	s.Fuel.Consumed = clonePtr(s.Fuel.Consumed)
	return s
}

func (m ShipModule) clone() ShipModule {
	m.Capacity = clonePtr(m.Capacity)
	m.Range = clonePtr(m.Range)
	m.Requirements = m.Requirements.clone()
	return m
}

func (m ShipMount) clone() ShipMount {
	m.Description = clonePtr(m.Description)
	m.Strength = clonePtr(m.Strength)
	m.Deposits = slices.Clone(m.Deposits)
	m.Requirements = m.Requirements.clone()
	return m
}

func (r ShipRequirements) clone() ShipRequirements {
	return ShipRequirements{Power: clonePtr(r.Power), Crew: clonePtr(r.Crew), Slots: clonePtr(r.Slots)}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneEach applies clone to every element of a copy of s.
func cloneEach[T any](s []T, clone func(T) T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = clone(v)
	}
	return out
}

// CloneAll clones every record in s.
func CloneAll[T interface{ Clone() T }](s []T) []T {
	return cloneEach(s, func(v T) T { return v.Clone() })
}
