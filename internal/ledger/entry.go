// Package ledger records every credit change the client confirms with the
// server, so a player can audit where credits came from and went.
//
// The package holds only the Entry entity, its repository interface and error
// types. Storage lives in infrastructure/sqlite.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind names the operation that moved credits.
type Kind string

const (
	// KindContractAccepted is the acceptance payment of a contract.
	KindContractAccepted Kind = "contract_accepted"

	// KindShipPurchased is the price paid for a new ship.
	KindShipPurchased Kind = "ship_purchased"

	// KindRegistered is the starting balance of a freshly registered agent.
	KindRegistered Kind = "registered"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a recognized entry kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindContractAccepted, KindShipPurchased, KindRegistered:
		return true
	default:
		return false
	}
}

// Entry is one confirmed credit change for an agent.
// Fields are unexported; use NewEntry or Rehydrate to build one.
type Entry struct {
	id        string
	agent     string
	kind      Kind
	reference string // contract id or ship symbol
	delta     int64
	balance   int64 // agent credits after the change
	createdAt time.Time
}

// NewEntry creates an entry with a fresh id, stamped with the current time.
func NewEntry(agent string, kind Kind, reference string, delta, balance int64) (*Entry, error) {
	if agent == "" {
		return nil, fmt.Errorf("ledger entry: agent is required")
	}
	if !kind.IsValid() {
		return nil, &InvalidKindError{Kind: kind}
	}
	return &Entry{
		id:        uuid.NewString(),
		agent:     agent,
		kind:      kind,
		reference: reference,
		delta:     delta,
		balance:   balance,
		createdAt: time.Now().UTC(),
	}, nil
}

// Rehydrate rebuilds an entry from storage without validation.
func Rehydrate(id, agent string, kind Kind, reference string, delta, balance int64, createdAt time.Time) *Entry {
	return &Entry{
		id:        id,
		agent:     agent,
		kind:      kind,
		reference: reference,
		delta:     delta,
		balance:   balance,
		createdAt: createdAt,
	}
}

func (e *Entry) ID() string           { return e.id }
func (e *Entry) Agent() string        { return e.agent }
func (e *Entry) Kind() Kind           { return e.kind }
func (e *Entry) Reference() string    { return e.reference }
func (e *Entry) Delta() int64         { return e.delta }
func (e *Entry) Balance() int64       { return e.balance }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
