//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	pushGateway "marketplace/internal/gateway/push"
	"marketplace/internal/handlers/rest/assignment_deliver_post"
	"marketplace/internal/handlers/rest/assignment_depart_post"
	"marketplace/internal/handlers/rest/assignment_pickup_post"
	"marketplace/internal/handlers/rest/delivery_cost_get"
	"marketplace/internal/handlers/rest/driver_location_post"
	"marketplace/internal/handlers/rest/order_accept_post"
	"marketplace/internal/handlers/rest/order_assign_post"
	"marketplace/internal/handlers/rest/order_cancel_post"
	"marketplace/internal/handlers/rest/order_confirm_post"
	"marketplace/internal/handlers/rest/order_dispute_post"
	"marketplace/internal/handlers/rest/order_events_get"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_pickup_code_get"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_prepare_post"
	"marketplace/internal/handlers/rest/order_ready_post"
	"marketplace/internal/handlers/rest/order_reject_post"
	"marketplace/internal/handlers/rest/order_track_get"
	"marketplace/internal/handlers/rest/orders_pending_get"
	"marketplace/internal/handlers/rest/radar_mode_post"
	"marketplace/internal/handlers/rest/radar_status_get"
	"marketplace/internal/handlers/rest/vendor_availability_get"
	"marketplace/internal/handlers/tasks/acceptance_expiry"
	"marketplace/internal/handlers/tasks/radar_sweep"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/status_handle"

	assignmentRepo "marketplace/internal/repository/assignment"
	driverRepo "marketplace/internal/repository/driver"
	historyRepo "marketplace/internal/repository/history"
	orderRepo "marketplace/internal/repository/order"
	"marketplace/internal/repository/radarcache"
	vendorRepo "marketplace/internal/repository/vendor"
	zoneRepo "marketplace/internal/repository/zone"

	dispatchService "marketplace/internal/service/dispatch"
	"marketplace/internal/service/fanout"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"
	radarService "marketplace/internal/service/radar"
	"marketplace/internal/service/statemachine"
	zoneService "marketplace/internal/service/zone"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const pushRequestTimeout = 10 * time.Second

type (
	AcceptanceSweepInterval time.Duration
	RadarSweepInterval      time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceDispatch   ServiceDispatch
	ServiceRadar      ServiceRadar
	EventSource       EventSource
	Fanout            *fanout.Fanout
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_accept_post.Service
	order_reject_post.Service
	order_cancel_post.Service
	order_prepare_post.Service
	order_ready_post.Service
	order_confirm_post.Service
	order_dispute_post.Service
	order_get.Service
	order_pickup_code_get.Service
	orders_pending_get.Service
	order_track_get.Service
	delivery_cost_get.Service
}

type ServiceDispatch interface {
	order_assign_post.Service
	assignment_pickup_post.Service
	assignment_depart_post.Service
	assignment_deliver_post.Service
	driver_location_post.Service
}

type ServiceRadar interface {
	radar_mode_post.Service
	radar_status_get.Service
	vendor_availability_get.Service
}

type EventSource interface {
	order_events_get.EventSource
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAcceptanceSweepInterval,
		provideRadarSweepInterval,

		provideOrderRepository,
		provideVendorRepository,
		provideZoneRepository,
		provideDriverRepository,
		provideAssignmentRepository,
		provideHistoryRepository,
		provideRadarCache,

		provideKafkaSink,
		provideRedisSink,
		provideFanout,
		provideRedisSource,

		provideZoneCalculator,
		provideStateMachine,
		provideServiceRadar,
		provideServiceOrder,
		provideServiceDispatch,

		provideAcceptanceExpiryTask,
		provideRadarSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceRadar), new(*radarService.Radar)),
		wire.Bind(new(EventSource), new(*fanout.RedisSource)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HistoryProvider), new(*historyRepo.Repository)),
		wire.Bind(new(orderService.ZoneRepository), new(*zoneRepo.Repository)),
		wire.Bind(new(orderService.DriverProvider), new(*driverRepo.Repository)),
		wire.Bind(new(orderService.AvailabilityGate), new(*radarService.Radar)),
		wire.Bind(new(orderService.ZoneCalculator), new(*zoneService.Calculator)),
		wire.Bind(new(orderService.StateMachine), new(*statemachine.Machine)),

		wire.Bind(new(dispatchService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(dispatchService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(dispatchService.OrderProvider), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.VendorProvider), new(*vendorRepo.Repository)),
		wire.Bind(new(dispatchService.StateMachine), new(*statemachine.Machine)),

		wire.Bind(new(radarService.Repository), new(*vendorRepo.Repository)),
		wire.Bind(new(radarService.OrderCounter), new(*orderRepo.Repository)),
		wire.Bind(new(radarService.StatusCache), new(*radarcache.Cache)),

		wire.Bind(new(statemachine.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(statemachine.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(statemachine.Publisher), new(*fanout.Fanout)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statemachine.TxManager), new(*tx.Manager)),

		wire.Bind(new(acceptance_expiry.Service), new(*orderService.Service)),
		wire.Bind(new(radar_sweep.Service), new(*radarService.Radar)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
	Fanout              *fanout.Fanout
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideVendorRepository,
		provideDriverRepository,
		provideAssignmentRepository,
		provideHistoryRepository,

		provideKafkaSink,
		provideRedisSink,
		provideFanout,

		provideStateMachine,
		provideServiceDispatch,

		providePushGateway,
		provideStatusHandlerFactory,
		provideServiceNotification,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(dispatchService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(dispatchService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(dispatchService.OrderProvider), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.VendorProvider), new(*vendorRepo.Repository)),
		wire.Bind(new(dispatchService.StateMachine), new(*statemachine.Machine)),

		wire.Bind(new(statemachine.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(statemachine.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(statemachine.Publisher), new(*fanout.Fanout)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statemachine.TxManager), new(*tx.Manager)),

		wire.Bind(new(notificationService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideVendorRepository(querier *querier.Querier) *vendorRepo.Repository {
	return vendorRepo.New(querier)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideRadarCache(redisClient *redis.Client, cfg *config.Config) *radarcache.Cache {
	return radarcache.New(redisClient, cfg.Redis.StatusTTL)
}

func provideKafkaSink(producer sarama.SyncProducer, cfg *config.Config) *fanout.KafkaSink {
	return fanout.NewKafkaSink(producer, cfg.Kafka.Topic)
}

func provideRedisSink(redisClient *redis.Client) *fanout.RedisSink {
	return fanout.NewRedisSink(redisClient)
}

func provideFanout(
	log logger.Logger,
	cfg *config.Config,
	kafkaSink *fanout.KafkaSink,
	redisSink *fanout.RedisSink,
) *fanout.Fanout {
	return fanout.New(log, cfg.Orders.FanoutQueueSize, cfg.Orders.FanoutWorkers, kafkaSink, redisSink)
}

func provideRedisSource(redisClient *redis.Client) *fanout.RedisSource {
	return fanout.NewRedisSource(redisClient)
}

func provideZoneCalculator() *zoneService.Calculator {
	return zoneService.NewCalculator()
}

func provideStateMachine(
	repository statemachine.Repository,
	history statemachine.HistoryRepository,
	publisher statemachine.Publisher,
	txManager statemachine.TxManager,
) *statemachine.Machine {
	return statemachine.New(repository, history, publisher, txManager)
}

func provideServiceRadar(
	log logger.Logger,
	repository radarService.Repository,
	orders radarService.OrderCounter,
	cache radarService.StatusCache,
) *radarService.Radar {
	return radarService.New(log, repository, orders, cache)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	history orderService.HistoryProvider,
	zones orderService.ZoneRepository,
	drivers orderService.DriverProvider,
	gate orderService.AvailabilityGate,
	calculator orderService.ZoneCalculator,
	machine orderService.StateMachine,
	txManager orderService.TxManager,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(
		log,
		repository,
		history,
		zones,
		drivers,
		gate,
		calculator,
		machine,
		txManager,
		cfg.Orders.AcceptanceWindowDefault,
	)
}

func provideServiceDispatch(
	assignments dispatchService.AssignmentRepository,
	drivers dispatchService.DriverRepository,
	orders dispatchService.OrderProvider,
	vendors dispatchService.VendorProvider,
	machine dispatchService.StateMachine,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(assignments, drivers, orders, vendors, machine, txManager)
}

func providePushGateway(cfg *config.Config) *pushGateway.Gateway {
	httpClient := &http.Client{Timeout: pushRequestTimeout}
	return pushGateway.New(httpClient, cfg.Push.BaseURL, cfg.Push.APIKey)
}

func provideStatusHandlerFactory(
	gateway *pushGateway.Gateway,
	dispatch *dispatchService.Dispatch,
) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(gateway, dispatch)
}

func provideServiceNotification(
	log logger.Logger,
	factory notificationService.HandlerFactory,
) *notificationService.Service {
	return notificationService.New(log, factory)
}

func provideAcceptanceSweepInterval(cfg *config.Config) AcceptanceSweepInterval {
	return AcceptanceSweepInterval(cfg.Tasks.AcceptanceSweepInterval)
}

func provideRadarSweepInterval(cfg *config.Config) RadarSweepInterval {
	return RadarSweepInterval(cfg.Tasks.RadarSweepInterval)
}

func provideAcceptanceExpiryTask(
	log logger.Logger,
	orderService acceptance_expiry.Service,
	interval AcceptanceSweepInterval,
) *acceptance_expiry.AcceptanceExpiry {
	return acceptance_expiry.NewAcceptanceExpiry(log, orderService, time.Duration(interval))
}

func provideRadarSweepTask(
	log logger.Logger,
	radarService radar_sweep.Service,
	interval RadarSweepInterval,
) *radar_sweep.RadarSweep {
	return radar_sweep.NewRadarSweep(log, radarService, time.Duration(interval))
}

func provideTaskList(
	acceptanceExpiryTask *acceptance_expiry.AcceptanceExpiry,
	radarSweepTask *radar_sweep.RadarSweep,
) []background.Task {
	return []background.Task{
		acceptanceExpiryTask,
		radarSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
