package session

import (
	"errors"
	"fmt"
)

// Sentinel errors for session state.
var (
	// ErrTokenNotSet is returned when an operation needs a bearer token and none
	// has been set. Register, load a save file or initialize with a token first.
	ErrTokenNotSet = errors.New("session: token not set")

	// ErrCacheEmpty is returned when an operation needs cached state and the
	// client has none yet.
	ErrCacheEmpty = errors.New("session: cache not populated")

	// ErrNotFound is matched by ShipNotFoundError and ContractNotFoundError.
	ErrNotFound = errors.New("session: not found")

	// ErrDuplicate is returned when cached records would share an identifier.
	ErrDuplicate = errors.New("session: duplicate identifier")
)

// ShipNotFoundError is returned when a ship symbol is not in the cache.
type ShipNotFoundError struct {
	Symbol string
}

func (e *ShipNotFoundError) Error() string {
	return fmt.Sprintf("ship not found: %s", e.Symbol)
}

func (e *ShipNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ContractNotFoundError is returned when a contract id is not in the cache.
type ContractNotFoundError struct {
	ID string
}

func (e *ContractNotFoundError) Error() string {
	return fmt.Sprintf("contract not found: %s", e.ID)
}

func (e *ContractNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
