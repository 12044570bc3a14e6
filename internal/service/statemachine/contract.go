//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statemachine_test
package statemachine

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// UpdateStatusCAS атомарно переводит заказ из from в modify.Status
	// (UPDATE ... WHERE id = $1 AND status = $2) и проставляет таймстемп
	// достигнутой вехи. Возвращает false если заказ уже не в from.
	UpdateStatusCAS(ctx context.Context, orderID string, from entities.OrderStatusType, modify entities.OrderModify) (bool, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, entry entities.StatusHistoryEntry) error
}

// Publisher — best-effort fan-out после коммита. Ошибки публикации не
// возвращаются в вызывающий код перехода.
type Publisher interface {
	Publish(event entities.StatusEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
