package dispatch

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/statemachine"
)

type Dispatch struct {
	assignments AssignmentRepository
	drivers     DriverRepository
	orders      OrderProvider
	vendors     VendorProvider
	machine     StateMachine
	txManager   TxManager
}

func New(
	assignments AssignmentRepository,
	drivers DriverRepository,
	orders OrderProvider,
	vendors VendorProvider,
	machine StateMachine,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		assignments: assignments,
		drivers:     drivers,
		orders:      orders,
		vendors:     vendors,
		machine:     machine,
		txManager:   txManager,
	}
}

// driverID == nil означает автоматический подбор. Захват слота условный,
// проигравший конкурентный диспатч получает ErrNoDriverAvailable.
func (d *Dispatch) Assign(ctx context.Context, orderID string, driverID *int64, actor entities.Actor) (*entities.DriverAssignment, error) {
	var assignment *entities.DriverAssignment

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		var driver *entities.Driver
		if driverID != nil {
			driver, err = d.drivers.GetByID(ctx, *driverID)
			if err != nil {
				return fmt.Errorf("get driver: %w", err)
			}
		} else {
			vendor, err := d.vendors.GetByVendorID(ctx, order.VendorID)
			if err != nil {
				return fmt.Errorf("get vendor location: %w", err)
			}
			driver, err = d.drivers.SelectForAssignment(ctx, vendor.Location)
			if err != nil {
				return fmt.Errorf("select driver: %w", err)
			}
		}

		acquired, err := d.drivers.AcquireSlot(ctx, driver.ID)
		if err != nil {
			return fmt.Errorf("acquire driver slot: %w", err)
		}
		if !acquired {
			return ErrNoDriverAvailable
		}

		assignedAt := time.Now().UTC()
		assignment, err = d.assignments.Create(ctx, entities.DriverAssignmentModify{
			OrderID:    &orderID,
			DriverID:   &driver.ID,
			AssignedAt: &assignedAt,
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		_, err = d.machine.Transition(ctx, statemachine.Request{
			OrderID:  orderID,
			Target:   entities.OrderAssignedToDriver,
			Actor:    actor,
			DriverID: &driver.ID,
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// при несовпадении кода транзакция откатывается целиком, повтор скана разрешён
func (d *Dispatch) RecordPickup(ctx context.Context, assignmentID int64, scannedCode string, point entities.GeoPoint, actor entities.Actor) (*entities.DriverAssignment, error) {
	var updated *entities.DriverAssignment

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, err := d.assignments.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}
		if assignment.Cancelled {
			return ErrAssignmentInactive
		}
		if assignment.PickedUpAt != nil {
			return ErrAlreadyPickedUp
		}

		order, err := d.orders.GetByID(ctx, assignment.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if scannedCode != order.PickupCode {
			return ErrBarcodeMismatch
		}

		pickedUpAt := time.Now().UTC()
		updated, err = d.assignments.Update(ctx, entities.DriverAssignmentModify{
			ID:          &assignment.ID,
			PickedUpAt:  &pickedUpAt,
			ScannedCode: &scannedCode,
			PickupPoint: &point,
		})
		if err != nil {
			return fmt.Errorf("mark picked up: %w", err)
		}

		_, err = d.machine.Transition(ctx, statemachine.Request{
			OrderID:  assignment.OrderID,
			Target:   entities.OrderDriverPickedUp,
			Actor:    actor,
			Location: &point,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (d *Dispatch) StartDelivery(ctx context.Context, assignmentID int64, actor entities.Actor) (*entities.DriverAssignment, error) {
	var assignment *entities.DriverAssignment

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		assignment, err = d.assignments.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}
		if assignment.Cancelled {
			return ErrAssignmentInactive
		}
		if assignment.PickedUpAt == nil {
			return ErrNotPickedUp
		}

		_, err = d.machine.Transition(ctx, statemachine.Request{
			OrderID: assignment.OrderID,
			Target:  entities.OrderOnTheWay,
			Actor:   actor,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func (d *Dispatch) RecordDelivery(ctx context.Context, assignmentID int64, point entities.GeoPoint, proofRef, notes *string, actor entities.Actor) (*entities.DriverAssignment, error) {
	var updated *entities.DriverAssignment

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, err := d.assignments.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}
		if assignment.Cancelled {
			return ErrAssignmentInactive
		}
		if assignment.PickedUpAt == nil {
			return ErrNotPickedUp
		}
		if assignment.DeliveredAt != nil {
			return ErrAlreadyDelivered
		}

		deliveredAt := time.Now().UTC()
		updated, err = d.assignments.Update(ctx, entities.DriverAssignmentModify{
			ID:            &assignment.ID,
			DeliveredAt:   &deliveredAt,
			DeliveryPoint: &point,
			ProofRef:      proofRef,
			Notes:         notes,
		})
		if err != nil {
			return fmt.Errorf("mark delivered: %w", err)
		}

		if err := d.drivers.CompleteDelivery(ctx, assignment.DriverID); err != nil {
			return fmt.Errorf("complete delivery: %w", err)
		}

		_, err = d.machine.Transition(ctx, statemachine.Request{
			OrderID:  assignment.OrderID,
			Target:   entities.OrderDelivered,
			Actor:    actor,
			Location: &point,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// статусом заказа управляет вызывающая сторона (отмена либо переназначение)
func (d *Dispatch) CancelAssignment(ctx context.Context, assignmentID int64, reason string) (*entities.DriverAssignment, error) {
	var updated *entities.DriverAssignment

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, err := d.assignments.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}
		if assignment.Cancelled {
			return ErrAssignmentInactive
		}
		if assignment.DeliveredAt != nil {
			return ErrAlreadyDelivered
		}

		cancelled := true
		updated, err = d.assignments.Update(ctx, entities.DriverAssignmentModify{
			ID:           &assignment.ID,
			Cancelled:    &cancelled,
			CancelReason: &reason,
		})
		if err != nil {
			return fmt.Errorf("cancel assignment: %w", err)
		}

		if err := d.drivers.ReleaseSlot(ctx, assignment.DriverID); err != nil {
			return fmt.Errorf("release driver slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (d *Dispatch) UpdateDriverLocation(ctx context.Context, driverID int64, point entities.GeoPoint) error {
	err := d.drivers.UpdateLocation(ctx, driverID, point, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update driver location: %w", err)
	}
	return nil
}
