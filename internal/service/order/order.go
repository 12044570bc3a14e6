package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/service/statemachine"
	"marketplace/pkg/logger"
)

const expiredAcceptanceNote = "acceptance window expired"

type Service struct {
	log        logger.Logger
	repository Repository
	history    HistoryProvider
	zones      ZoneRepository
	drivers    DriverProvider
	gate       AvailabilityGate
	calculator ZoneCalculator
	machine    StateMachine
	txManager  TxManager

	// defaultAcceptanceWindow применяется когда вендор не задал своё окно.
	defaultAcceptanceWindow time.Duration
}

func New(
	log logger.Logger,
	repository Repository,
	history HistoryProvider,
	zones ZoneRepository,
	drivers DriverProvider,
	gate AvailabilityGate,
	calculator ZoneCalculator,
	machine StateMachine,
	txManager TxManager,
	defaultAcceptanceWindow time.Duration,
) *Service {
	return &Service{
		log:                     log.With(),
		repository:              repository,
		history:                 history,
		zones:                   zones,
		drivers:                 drivers,
		gate:                    gate,
		calculator:              calculator,
		machine:                 machine,
		txManager:               txManager,
		defaultAcceptanceWindow: defaultAcceptanceWindow,
	}
}

type ItemDraft struct {
	ProductID int64
	Name      string
	Quantity  int32
	UnitPrice int64
	Options   []entities.OrderItemOption
}

type CreateRequest struct {
	VendorID        int64
	CustomerID      int64
	Items           []ItemDraft
	Discount        int64
	DeliveryAddress string
	DeliveryPoint   entities.GeoPoint
}

// отказ гейта или зоны не оставляет после себя ни строки заказа, ни журнала
func (s *Service) Create(ctx context.Context, req CreateRequest) (*entities.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range req.Items {
		if !isValidItem(item) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidItem, item.Name)
		}
	}
	if req.DeliveryPoint.Lat == 0 && req.DeliveryPoint.Lng == 0 {
		return nil, ErrMissingCoordinates
	}

	now := time.Now().UTC()

	acceptance, availability, err := s.gate.CanAcceptOrders(ctx, req.VendorID, now)
	if err != nil {
		return nil, fmt.Errorf("vendor gate: %w", err)
	}
	if acceptance != entities.VendorAccepting {
		return nil, fmt.Errorf("%w (%s)", ErrVendorUnavailable, acceptance)
	}

	zones, err := s.zones.GetActiveByVendorID(ctx, req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("load delivery zones: %w", err)
	}
	quote := s.calculator.Calculate(availability.Location, req.DeliveryPoint, zones)
	if !quote.Available {
		return nil, &OutsideDeliveryRangeError{DistanceKm: quote.DistanceKm}
	}

	items := make([]entities.OrderItem, 0, len(req.Items))
	var subtotal int64
	for _, draft := range req.Items {
		var optionsTotal int64
		for _, opt := range draft.Options {
			optionsTotal += opt.Price
		}
		lineTotal := (draft.UnitPrice + optionsTotal) * int64(draft.Quantity)
		subtotal += lineTotal
		items = append(items, entities.OrderItem{
			ProductID: draft.ProductID,
			Name:      draft.Name,
			Quantity:  draft.Quantity,
			UnitPrice: draft.UnitPrice,
			Options:   draft.Options,
			Total:     lineTotal,
		})
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		VendorID:        req.VendorID,
		CustomerID:      req.CustomerID,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     quote.Fee,
		Discount:        req.Discount,
		Total:           subtotal - req.Discount + quote.Fee,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryPoint:   req.DeliveryPoint,
		DistanceKm:      quote.DistanceKm,
		Status:          entities.OrderCart,
		PickupCode:      newPickupCode(),
		OrderedAt:       now,
	}
	if !order.CheckTotals() {
		return nil, ErrTotalsMismatch
	}

	window := availability.AcceptanceWindow
	if window <= 0 {
		window = s.defaultAcceptanceWindow
	}
	expiresAt := now.Add(window)

	actor := entities.Actor{Type: entities.ActorCustomer, ID: req.CustomerID}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		// Две легальные дуги вместо вставки сразу в waiting_acceptance:
		// журнал обязан содержать полный путь по графу.
		if _, err := s.machine.Transition(ctx, statemachine.Request{
			OrderID: created.ID,
			Target:  entities.OrderPendingConfirmation,
			Actor:   actor,
		}); err != nil {
			return err
		}

		submitted, err := s.machine.Transition(ctx, statemachine.Request{
			OrderID:             created.ID,
			Target:              entities.OrderWaitingAcceptance,
			Actor:               actor,
			AcceptanceExpiresAt: &expiresAt,
		})
		if err != nil {
			return err
		}
		created = submitted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Accept(ctx context.Context, orderID string, actor entities.Actor) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.OrderAccepted, actor, "", nil)
}

func (s *Service) Reject(ctx context.Context, orderID string, actor entities.Actor, reason string) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.OrderRejected, actor, reason, nil)
}

func (s *Service) StartPreparing(ctx context.Context, orderID string, actor entities.Actor) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.OrderPreparing, actor, "", nil)
}

func (s *Service) MarkReady(ctx context.Context, orderID string, actor entities.Actor) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.OrderReady, actor, "", nil)
}

func (s *Service) Cancel(ctx context.Context, orderID string, actor entities.Actor, reason string) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.OrderCancelled, actor, reason, nil)
}

func (s *Service) ConfirmDelivery(ctx context.Context, orderID string, actor entities.Actor) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.OrderDeliveryConfirmed, actor, "", nil)
}

func (s *Service) DisputeDelivery(ctx context.Context, orderID string, actor entities.Actor, reason string) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.OrderDeliveryDisputed, actor, reason, nil)
}

func (s *Service) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// режим вендора тут не проверяем: цену доставки показываем и закрытому ресторану
func (s *Service) Quote(ctx context.Context, vendorID int64, point entities.GeoPoint) (*entities.ZoneQuote, error) {
	if point.Lat == 0 && point.Lng == 0 {
		return nil, ErrMissingCoordinates
	}

	_, availability, err := s.gate.CanAcceptOrders(ctx, vendorID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("vendor gate: %w", err)
	}

	zones, err := s.zones.GetActiveByVendorID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("load delivery zones: %w", err)
	}

	quote := s.calculator.Calculate(availability.Location, point, zones)
	return &quote, nil
}

type PendingOrder struct {
	Order              entities.Order
	SecondsUntilExpiry int64
}

func (s *Service) ListPending(ctx context.Context, vendorID int64) ([]PendingOrder, error) {
	orders, err := s.repository.ListByVendorAndStatus(ctx, vendorID, entities.OrderWaitingAcceptance)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	now := time.Now().UTC()
	pending := make([]PendingOrder, 0, len(orders))
	for _, o := range orders {
		var seconds int64
		if o.AcceptanceExpiresAt != nil {
			if remaining := o.AcceptanceExpiresAt.Sub(now); remaining > 0 {
				seconds = int64(remaining.Seconds())
			}
		}
		pending = append(pending, PendingOrder{Order: o, SecondsUntilExpiry: seconds})
	}
	return pending, nil
}

const expirySweepBatch = 100

// тело фонового свипа окна приёмки
func (s *Service) ExpireOverdueAcceptances(ctx context.Context) (int64, error) {
	overdue, err := s.repository.ListExpiredWaiting(ctx, time.Now().UTC(), expirySweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list expired orders: %w", err)
	}

	var expired int64
	for _, o := range overdue {
		_, err := s.machine.Transition(ctx, statemachine.Request{
			OrderID: o.ID,
			Target:  entities.OrderRejected,
			Actor:   entities.SystemActor,
			Note:    expiredAcceptanceNote,
		})
		switch {
		case err == nil:
			expired++
		case errors.Is(err, statemachine.ErrConcurrentModification),
			errors.Is(err, statemachine.ErrIllegalTransition):
			// Вендор успел раньше свипа. Идём дальше.
		default:
			s.log.Error("failed to expire order",
				logger.NewField("order_id", o.ID),
				logger.NewField("error", err),
			)
		}
	}
	return expired, nil
}

type TrackStage struct {
	Status  entities.OrderStatusType
	Reached bool
	At      *time.Time
}

type TrackView struct {
	Order            *entities.Order
	Stages           []TrackStage
	History          []entities.StatusHistoryEntry
	DriverLocation   *entities.GeoPoint
	DriverLocationAt *time.Time
}

func (s *Service) Track(ctx context.Context, orderID string) (*TrackView, error) {
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	entries, err := s.history.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load status history: %w", err)
	}

	view := &TrackView{
		Order:   order,
		Stages:  buildStages(order),
		History: entries,
	}

	if order.DriverID != nil {
		driver, err := s.drivers.GetByID(ctx, *order.DriverID)
		if err != nil {
			// Трекинг не должен падать из-за водителя: локация опциональна.
			s.log.Warn("failed to load driver for tracking",
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			)
		} else {
			view.DriverLocation = driver.LastLocation
			view.DriverLocationAt = driver.LocationAt
		}
	}
	return view, nil
}

func buildStages(order *entities.Order) []TrackStage {
	stamps := map[entities.OrderStatusType]*time.Time{
		entities.OrderWaitingAcceptance: &order.OrderedAt,
		entities.OrderAccepted:          order.AcceptedAt,
		entities.OrderPreparing:         order.PreparingAt,
		entities.OrderReady:             order.ReadyAt,
		entities.OrderDriverPickedUp:    order.PickedUpAt,
		entities.OrderDelivered:         order.DeliveredAt,
	}

	stages := make([]TrackStage, 0, len(entities.StageChecklist))
	for _, status := range entities.StageChecklist {
		reached := stageReached(order.Status, status)
		stage := TrackStage{Status: status, Reached: reached}
		if reached {
			stage.At = stamps[status]
		}
		stages = append(stages, stage)
	}
	return stages
}

func stageReached(current, stage entities.OrderStatusType) bool {
	currentIdx := stageIndex(current)
	return currentIdx >= 0 && currentIdx >= stageIndex(stage)
}

func stageIndex(status entities.OrderStatusType) int {
	for i, s := range entities.StageChecklist {
		if s == status {
			return i
		}
	}
	return -1
}

func (s *Service) transition(
	ctx context.Context,
	orderID string,
	target entities.OrderStatusType,
	actor entities.Actor,
	note string,
	location *entities.GeoPoint,
) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	return s.machine.Transition(ctx, statemachine.Request{
		OrderID:  orderID,
		Target:   target,
		Actor:    actor,
		Note:     note,
		Location: location,
	})
}

func newPickupCode() string {
	// Достаточно короткого кода: сверка при пикапе строгая, по равенству.
	id := uuid.NewString()
	return strings.ToUpper(strings.ReplaceAll(id, "-", "")[:10])
}
