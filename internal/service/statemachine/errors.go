package statemachine

import "errors"

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrUnknownStatus          = errors.New("unknown order status")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrActorNotAllowed        = errors.New("actor is not allowed to perform this transition")
	ErrConcurrentModification = errors.New("order was modified concurrently")
)
