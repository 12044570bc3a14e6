package entities

type OrderStatusType string

const (
	OrderCart                OrderStatusType = "cart"
	OrderPendingConfirmation OrderStatusType = "pending_confirmation"
	OrderWaitingAcceptance   OrderStatusType = "waiting_acceptance"
	OrderAccepted            OrderStatusType = "accepted"
	OrderRejected            OrderStatusType = "rejected"
	OrderPreparing           OrderStatusType = "preparing"
	OrderReady               OrderStatusType = "ready"
	OrderAssignedToDriver    OrderStatusType = "assigned_to_driver"
	OrderDriverPickedUp      OrderStatusType = "driver_picked_up"
	OrderOnTheWay            OrderStatusType = "on_the_way"
	OrderDelivered           OrderStatusType = "delivered"
	OrderDeliveryConfirmed   OrderStatusType = "delivery_confirmed"
	OrderDeliveryDisputed    OrderStatusType = "delivery_disputed"
	OrderCancelled           OrderStatusType = "cancelled"
	OrderRefunded            OrderStatusType = "refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// allowedTransitions — единственное место где описан граф переходов.
// Всё остальное (сервисы, хендлеры, свипы) ходит только через него.
var allowedTransitions = map[OrderStatusType][]OrderStatusType{
	OrderCart:                {OrderPendingConfirmation, OrderCancelled},
	OrderPendingConfirmation: {OrderWaitingAcceptance, OrderCancelled},
	OrderWaitingAcceptance:   {OrderAccepted, OrderRejected, OrderCancelled},
	OrderAccepted:            {OrderPreparing, OrderCancelled, OrderRefunded},
	OrderPreparing:           {OrderReady, OrderCancelled, OrderRefunded},
	OrderReady:               {OrderAssignedToDriver, OrderCancelled, OrderRefunded},
	OrderAssignedToDriver:    {OrderDriverPickedUp, OrderCancelled, OrderRefunded},
	OrderDriverPickedUp:      {OrderOnTheWay, OrderCancelled, OrderRefunded},
	OrderOnTheWay:            {OrderDelivered, OrderCancelled, OrderRefunded},
	OrderDelivered:           {OrderDeliveryConfirmed, OrderDeliveryDisputed, OrderRefunded},
	OrderRejected:            {},
	OrderCancelled:           {},
	OrderDeliveryConfirmed:   {},
	OrderDeliveryDisputed:    {},
	OrderRefunded:            {},
}

func (s OrderStatusType) CanTransitionTo(target OrderStatusType) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s OrderStatusType) IsTerminal() bool {
	successors, known := allowedTransitions[s]
	return known && len(successors) == 0
}

func (s OrderStatusType) IsKnown() bool {
	_, known := allowedTransitions[s]
	return known
}

// IsPreDelivery — статусы до передачи заказа клиенту, из них возможна отмена.
func (s OrderStatusType) IsPreDelivery() bool {
	switch s {
	case OrderCart, OrderPendingConfirmation, OrderWaitingAcceptance,
		OrderAccepted, OrderPreparing, OrderReady,
		OrderAssignedToDriver, OrderDriverPickedUp, OrderOnTheWay:
		return true
	default:
		return false
	}
}

// StageChecklist — порядок этапов happy path для трекинга на клиенте.
var StageChecklist = []OrderStatusType{
	OrderWaitingAcceptance,
	OrderAccepted,
	OrderPreparing,
	OrderReady,
	OrderAssignedToDriver,
	OrderDriverPickedUp,
	OrderOnTheWay,
	OrderDelivered,
	OrderDeliveryConfirmed,
}

type ActorType string

const (
	ActorCustomer ActorType = "customer"
	ActorVendor   ActorType = "vendor"
	ActorDriver   ActorType = "driver"
	ActorSystem   ActorType = "system"
	ActorAdmin    ActorType = "admin"
)

func (a ActorType) String() string {
	return string(a)
}

type Actor struct {
	Type ActorType
	ID   int64
	Name string
}

var SystemActor = Actor{Type: ActorSystem, Name: "system"}
