package client

import (
	"errors"
	"fmt"
)

// Callsign length limits enforced before registration.
const (
	MinCallsignLength = 3
	MaxCallsignLength = 14
)

// ErrInvalidCallsign is matched by every CallsignLengthError.
var ErrInvalidCallsign = errors.New("client: invalid callsign")

// CallsignLengthError is returned by Register before any request is sent.
type CallsignLengthError struct {
	Callsign string
	Length   int
}

func (e *CallsignLengthError) Error() string {
	return fmt.Sprintf("callsign %q has length %d, must be %d to %d characters",
		e.Callsign, e.Length, MinCallsignLength, MaxCallsignLength)
}

func (e *CallsignLengthError) Is(target error) bool {
	return target == ErrInvalidCallsign
}
