package ledger

import (
	"context"
	"fmt"
)

// ListFilter narrows a listing of entries.
type ListFilter struct {
	// Kind filters entries by kind. If empty, all kinds are included.
	Kind Kind

	// Limit restricts the number of entries returned.
	// If 0, no limit is applied.
	Limit int
}

// Repository defines the persistence interface for ledger entries.
type Repository interface {
	// Record appends an entry. Entries are immutable once recorded.
	Record(ctx context.Context, entry *Entry) error

	// FindByID retrieves a single entry.
	// Returns EntryNotFoundError if no entry has that id.
	FindByID(ctx context.Context, id string) (*Entry, error)

	// List retrieves an agent's entries, newest first.
	List(ctx context.Context, agent string, filter ListFilter) ([]*Entry, error)

	// Net sums every delta recorded for an agent.
	Net(ctx context.Context, agent string) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}

// EntryNotFoundError is returned when an entry id is unknown.
type EntryNotFoundError struct {
	ID string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("ledger entry not found: %s", e.ID)
}

// InvalidKindError is returned when an entry is built with an unknown kind.
type InvalidKindError struct {
	Kind Kind
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid ledger entry kind: %q", e.Kind)
}
