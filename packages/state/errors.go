package state

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrActorNotFound is returned when the state tree holds no actor under an address.
	ErrActorNotFound = errors.New("actor not found")

	// ErrNotRobustAddress is returned when an ID address (or Undef) is handed to an operation that needs a robust
	// address.
	ErrNotRobustAddress = errors.New("address is not a robust address")

	// ErrAddressAlreadyMapped is returned when a robust address already owns an ID address.
	ErrAddressAlreadyMapped = errors.New("address is already mapped to an ID address")

	// ErrUndefAddress is returned when the undefined address is used as a key.
	ErrUndefAddress = errors.New("undefined address")
)
