package status_handle

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/notification"
)

type pushGateway interface {
	Send(ctx context.Context, note entities.PushNotification) error
}

type dispatchService interface {
	Assign(ctx context.Context, orderID string, driverID *int64, actor entities.Actor) (*entities.DriverAssignment, error)
}

// StatusHandlerFactory раздаёт реакции на статусы: кому слать пуш и когда
// дергать автодиспатч водителя.
type StatusHandlerFactory struct {
	push     pushGateway
	dispatch dispatchService
}

func NewStatusHandlerFactory(push pushGateway, dispatch dispatchService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		push:     push,
		dispatch: dispatch,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (notification.ExecuteFn, error) {
	switch status {
	case entities.OrderWaitingAcceptance:
		return f.waitingAcceptanceHandler, nil
	case entities.OrderAccepted:
		return f.acceptedHandler, nil
	case entities.OrderRejected:
		return f.rejectedHandler, nil
	case entities.OrderReady:
		return f.readyHandler, nil
	case entities.OrderAssignedToDriver:
		return f.assignedHandler, nil
	case entities.OrderOnTheWay:
		return f.onTheWayHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) waitingAcceptanceHandler(ctx context.Context, event entities.StatusEvent) error {
	return f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorVendor,
		RecipientID:   event.VendorID,
		OrderID:       event.OrderID,
		Title:         "Новый заказ",
		Body:          "Поступил новый заказ, подтвердите приём",
	})
}

func (f *StatusHandlerFactory) acceptedHandler(ctx context.Context, event entities.StatusEvent) error {
	return f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorCustomer,
		RecipientID:   event.CustomerID,
		OrderID:       event.OrderID,
		Title:         "Заказ принят",
		Body:          "Ресторан принял ваш заказ",
	})
}

func (f *StatusHandlerFactory) rejectedHandler(ctx context.Context, event entities.StatusEvent) error {
	body := "Ресторан не смог принять заказ"
	if event.Note != "" {
		body = body + ": " + event.Note
	}
	return f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorCustomer,
		RecipientID:   event.CustomerID,
		OrderID:       event.OrderID,
		Title:         "Заказ отклонён",
		Body:          body,
	})
}

// readyHandler — заказ собран, подбираем водителя. Пуш клиенту уходит даже
// если свободных водителей нет: диспатч повторят руками через endpoint.
func (f *StatusHandlerFactory) readyHandler(ctx context.Context, event entities.StatusEvent) error {
	if err := f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorCustomer,
		RecipientID:   event.CustomerID,
		OrderID:       event.OrderID,
		Title:         "Заказ готов",
		Body:          "Заказ собран и ждёт водителя",
	}); err != nil {
		return err
	}

	_, err := f.dispatch.Assign(ctx, event.OrderID, nil, entities.SystemActor)
	if err != nil {
		return fmt.Errorf("auto assign driver for ready order %s: %w", event.OrderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) assignedHandler(ctx context.Context, event entities.StatusEvent) error {
	if event.DriverID == nil {
		return fmt.Errorf("assigned event for order %s has no driver", event.OrderID)
	}
	return f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorDriver,
		RecipientID:   *event.DriverID,
		OrderID:       event.OrderID,
		Title:         "Новая доставка",
		Body:          "Вам назначен заказ, заберите его у вендора",
	})
}

func (f *StatusHandlerFactory) onTheWayHandler(ctx context.Context, event entities.StatusEvent) error {
	return f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorCustomer,
		RecipientID:   event.CustomerID,
		OrderID:       event.OrderID,
		Title:         "Заказ в пути",
		Body:          "Водитель выехал к вам",
	})
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, event entities.StatusEvent) error {
	return f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorCustomer,
		RecipientID:   event.CustomerID,
		OrderID:       event.OrderID,
		Title:         "Заказ доставлен",
		Body:          "Подтвердите получение заказа",
	})
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, event entities.StatusEvent) error {
	return f.send(ctx, entities.PushNotification{
		RecipientType: entities.ActorVendor,
		RecipientID:   event.VendorID,
		OrderID:       event.OrderID,
		Title:         "Заказ отменён",
		Body:          "Заказ отменён, остановите сборку",
	})
}

func (f *StatusHandlerFactory) send(ctx context.Context, note entities.PushNotification) error {
	if err := f.push.Send(ctx, note); err != nil {
		return fmt.Errorf("push %s to %s %d: %w", note.OrderID, note.RecipientType, note.RecipientID, err)
	}
	return nil
}
