package dispatch

import "errors"

var (
	ErrNoDriverAvailable    = errors.New("no driver available")
	ErrDriverNotFound       = errors.New("driver not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrOrderAlreadyAssigned = errors.New("order already has an active assignment")
	ErrAssignmentInactive   = errors.New("assignment is cancelled")
	ErrBarcodeMismatch      = errors.New("scanned code does not match order pickup code")
	ErrAlreadyPickedUp      = errors.New("assignment already picked up")
	ErrNotPickedUp          = errors.New("assignment has not been picked up yet")
	ErrAlreadyDelivered     = errors.New("assignment already delivered")
)
