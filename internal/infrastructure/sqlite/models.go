package sqlite

import (
	"time"

	"github.com/zjrosen/spacetraders/internal/ledger"
)

// EntryModel represents the database row for the ledger_entries table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type EntryModel struct {
	ID        string
	Agent     string
	Kind      string
	Reference *string // nullable
	Delta     int64
	Balance   int64
	CreatedAt int64 // Unix timestamp, nanoseconds
}

// toEntryModel converts a domain Entry to a database EntryModel.
func toEntryModel(e *ledger.Entry) *EntryModel {
	m := &EntryModel{
		ID:        e.ID(),
		Agent:     e.Agent(),
		Kind:      e.Kind().String(),
		Delta:     e.Delta(),
		Balance:   e.Balance(),
		CreatedAt: e.CreatedAt().UnixNano(),
	}
	if ref := e.Reference(); ref != "" {
		m.Reference = &ref
	}
	return m
}

// toDomain converts the row back into a domain Entry.
func (m *EntryModel) toDomain() *ledger.Entry {
	var ref string
	if m.Reference != nil {
		ref = *m.Reference
	}
	return ledger.Rehydrate(
		m.ID, m.Agent, ledger.Kind(m.Kind), ref,
		m.Delta, m.Balance,
		time.Unix(0, m.CreatedAt).UTC(),
	)
}
