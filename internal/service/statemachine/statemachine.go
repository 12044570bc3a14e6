package statemachine

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/tx"
)

// Machine — единственная точка мутации статуса заказа. CAS и запись в
// журнал идут в одной транзакции.
type Machine struct {
	repository Repository
	history    HistoryRepository
	publisher  Publisher
	txManager  TxManager
}

func New(
	repository Repository,
	history HistoryRepository,
	publisher Publisher,
	txManager TxManager,
) *Machine {
	return &Machine{
		repository: repository,
		history:    history,
		publisher:  publisher,
		txManager:  txManager,
	}
}

type Request struct {
	OrderID string
	Target  entities.OrderStatusType
	Actor   entities.Actor
	Note    string
	// Location — геометка актора в момент перехода (pickup, proof of delivery).
	Location *entities.GeoPoint

	// AcceptanceExpiresAt задаётся только при переходе в waiting_acceptance.
	AcceptanceExpiresAt *time.Time
	// DriverID задаётся только при переходе в assigned_to_driver.
	DriverID *int64
}

func (m *Machine) Transition(ctx context.Context, req Request) (*entities.Order, error) {
	if !req.Target.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, req.Target)
	}

	var updated *entities.Order
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := m.repository.GetByID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		from := order.Status
		if !from.CanTransitionTo(req.Target) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, req.Target)
		}
		if !actorAllowed(from, req.Target, req.Actor.Type) {
			return fmt.Errorf("%w: %s cannot move order to %s", ErrActorNotAllowed, req.Actor.Type, req.Target)
		}

		modify := entities.OrderModify{
			Status:              &req.Target,
			DriverID:            req.DriverID,
			AcceptanceExpiresAt: req.AcceptanceExpiresAt,
		}
		if req.Target == entities.OrderCancelled || req.Target == entities.OrderRejected {
			note := req.Note
			modify.CancelReason = &note
		}

		ok, err := m.repository.UpdateStatusCAS(ctx, req.OrderID, from, modify)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if !ok {
			// Кто-то успел раньше (например, вендорский accept против свипа
			// окна приёмки). Проигравший перечитывает состояние сам.
			return fmt.Errorf("%w: %s -> %s", ErrConcurrentModification, from, req.Target)
		}

		// Журнал обязателен: если строку не записать, переход откатывается.
		entry := entities.StatusHistoryEntry{
			OrderID:    req.OrderID,
			FromStatus: from,
			ToStatus:   req.Target,
			Actor:      req.Actor.Type,
			ActorID:    req.Actor.ID,
			ActorName:  req.Actor.Name,
			Note:       req.Note,
			Location:   req.Location,
		}
		if err := m.history.Append(ctx, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		updatedOrder := *order
		updatedOrder.Status = req.Target
		if req.DriverID != nil {
			updatedOrder.DriverID = req.DriverID
		}
		if req.AcceptanceExpiresAt != nil {
			updatedOrder.AcceptanceExpiresAt = req.AcceptanceExpiresAt
		}
		updated = &updatedOrder

		// переход может идти внутри внешней транзакции (создание заказа,
		// диспатч) — публикуем только после её коммита
		event := entities.StatusEvent{
			OrderID:    updatedOrder.ID,
			VendorID:   updatedOrder.VendorID,
			CustomerID: updatedOrder.CustomerID,
			DriverID:   updatedOrder.DriverID,
			FromStatus: from,
			ToStatus:   req.Target,
			Actor:      req.Actor.Type,
			Note:       req.Note,
			OccurredAt: time.Now().UTC(),
		}
		tx.AfterCommit(ctx, func() {
			m.publisher.Publish(event)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// админ может всё, остальные — только свои рёбра графа
func actorAllowed(from, target entities.OrderStatusType, actor entities.ActorType) bool {
	if actor == entities.ActorAdmin {
		return true
	}

	switch target {
	case entities.OrderPendingConfirmation, entities.OrderWaitingAcceptance:
		return actor == entities.ActorCustomer || actor == entities.ActorSystem
	case entities.OrderAccepted, entities.OrderPreparing, entities.OrderReady:
		return actor == entities.ActorVendor
	case entities.OrderRejected:
		// Вендор руками либо система по истечению окна приёмки.
		return actor == entities.ActorVendor || actor == entities.ActorSystem
	case entities.OrderAssignedToDriver:
		return actor == entities.ActorVendor || actor == entities.ActorSystem
	case entities.OrderDriverPickedUp, entities.OrderOnTheWay, entities.OrderDelivered:
		return actor == entities.ActorDriver || actor == entities.ActorSystem
	case entities.OrderDeliveryConfirmed:
		return actor == entities.ActorCustomer || actor == entities.ActorSystem
	case entities.OrderDeliveryDisputed:
		return actor == entities.ActorCustomer
	case entities.OrderCancelled:
		switch actor {
		case entities.ActorCustomer:
			return from == entities.OrderCart ||
				from == entities.OrderPendingConfirmation ||
				from == entities.OrderWaitingAcceptance
		case entities.ActorVendor:
			return from.IsPreDelivery()
		default:
			return false
		}
	case entities.OrderRefunded:
		return actor == entities.ActorVendor
	default:
		return false
	}
}
