package order

import (
	"errors"
	"fmt"

	"marketplace/internal/service/statemachine"
)

var (
	// ErrOrderNotFound разделяется с машиной статусов: у них общий репозиторий.
	ErrOrderNotFound = statemachine.ErrOrderNotFound

	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidItem        = errors.New("order item is invalid")
	ErrTotalsMismatch     = errors.New("order totals do not add up")
	ErrVendorUnavailable  = errors.New("vendor is not accepting orders")
	ErrMissingCoordinates = errors.New("delivery coordinates are required")
)

// OutsideDeliveryRangeError несёт рассчитанную дистанцию, чтобы клиент мог
// показать "вы в N км, доставка недоступна".
type OutsideDeliveryRangeError struct {
	DistanceKm float64
}

func (e *OutsideDeliveryRangeError) Error() string {
	return fmt.Sprintf("outside delivery range: %.2f km", e.DistanceKm)
}
