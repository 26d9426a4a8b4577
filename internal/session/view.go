package session

import (
	"github.com/zjrosen/spacetraders/internal/domain"
	"github.com/zjrosen/spacetraders/internal/value"
)

// View is read-only access to a Cache. Every record it returns is a deep
// copy, so nothing a holder does can change the cache behind it.
type View interface {
	Agent() domain.Agent
	Faction() domain.Faction
	Contracts() []domain.Contract
	Ships() []domain.Ship
	Ship(symbol string) (domain.Ship, error)
	Contract(id string) (domain.Contract, error)
	StartingSystem() (value.Symbol, error)
	MarshalJSON() ([]byte, error)
	Equal(other View) bool
}

var (
	_ View = (*Cache)(nil)
	_ View = readOnly{}
)

// readOnly hides the Cache mutators from View holders; a type assertion back
// to *Cache fails.
type readOnly struct {
	c *Cache
}

// ReadOnly returns a View of c, or nil when c is nil.
func (c *Cache) ReadOnly() View {
	if c == nil {
		return nil
	}
	return readOnly{c: c}
}

func (r readOnly) Agent() domain.Agent                         { return r.c.Agent() }
func (r readOnly) Faction() domain.Faction                     { return r.c.Faction() }
func (r readOnly) Contracts() []domain.Contract                { return r.c.Contracts() }
func (r readOnly) Ships() []domain.Ship                        { return r.c.Ships() }
func (r readOnly) Ship(symbol string) (domain.Ship, error)     { return r.c.Ship(symbol) }
func (r readOnly) Contract(id string) (domain.Contract, error) { return r.c.Contract(id) }
func (r readOnly) StartingSystem() (value.Symbol, error)       { return r.c.StartingSystem() }
func (r readOnly) MarshalJSON() ([]byte, error)                { return r.c.MarshalJSON() }
func (r readOnly) Equal(other View) bool                       { return r.c.Equal(other) }

func isNil(v View) bool {
	if v == nil {
		return true
	}
	c, ok := v.(*Cache)
	return ok && c == nil
}
