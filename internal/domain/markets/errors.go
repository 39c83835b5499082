package markets

import "errors"

var (
	// ErrNotFound is returned when no market matches
	ErrNotFound = errors.New("market not found")
	// ErrDuplicateCode is returned when a market code is already taken
	ErrDuplicateCode = errors.New("market code already exists")
	// ErrHasActiveContractors is returned when deactivating a market that still has active contractors
	ErrHasActiveContractors = errors.New("market has active contractors")
	// ErrHasContractors is returned when hard deleting a market referenced by contractors
	ErrHasContractors = errors.New("market is referenced by contractors")
	// ErrEmptyPatch is returned when an update carries no field
	ErrEmptyPatch = errors.New("at least one field must be provided")
)
