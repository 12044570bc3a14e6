package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/handlers/rest/assignment_deliver_post"
	"marketplace/internal/handlers/rest/assignment_depart_post"
	"marketplace/internal/handlers/rest/assignment_pickup_post"
	"marketplace/internal/handlers/rest/delivery_cost_get"
	"marketplace/internal/handlers/rest/driver_location_post"
	"marketplace/internal/handlers/rest/healthcheck_head"
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
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/handlers/rest/radar_mode_post"
	"marketplace/internal/handlers/rest/radar_status_get"
	"marketplace/internal/handlers/rest/vendor_availability_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/internal/pkg/redisconn"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redisconn.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(&cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	businessApp.Fanout.Start(ongoingCtx)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные endpoints: трекинг заказа и витрина вендора работают без токена
	router.Handle("/order/{order_id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/order/{order_id}/track", order_track_get.New(log, app.ServiceOrder)).Methods("GET")
	router.Handle("/order/{order_id}/events", order_events_get.New(log, app.EventSource)).Methods("GET")
	router.Handle("/vendor/{vendor_id}/availability", vendor_availability_get.New(log, app.ServiceRadar)).Methods("GET")
	router.Handle("/vendor/{vendor_id}/delivery-cost", delivery_cost_get.New(log, app.ServiceOrder)).Methods("GET")

	authenticated := router.NewRoute().Subrouter()
	authenticated.Use(auth.Middleware(cfg.Auth.JWTSecret))

	authenticated.Handle("/order", order_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/accept", order_accept_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/reject", order_reject_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/cancel", order_cancel_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/prepare", order_prepare_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/ready", order_ready_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/confirm", order_confirm_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/dispute", order_dispute_post.New(log, app.ServiceOrder)).Methods("POST")
	authenticated.Handle("/order/{order_id}/pickup-code", order_pickup_code_get.New(log, app.ServiceOrder)).Methods("GET")

	authenticated.Handle("/order/{order_id}/assign", order_assign_post.New(log, app.ServiceDispatch)).Methods("POST")
	authenticated.Handle("/assignment/{assignment_id}/pickup", assignment_pickup_post.New(log, app.ServiceDispatch)).Methods("POST")
	authenticated.Handle("/assignment/{assignment_id}/depart", assignment_depart_post.New(log, app.ServiceDispatch)).Methods("POST")
	authenticated.Handle("/assignment/{assignment_id}/deliver", assignment_deliver_post.New(log, app.ServiceDispatch)).Methods("POST")
	authenticated.Handle("/driver/location", driver_location_post.New(log, app.ServiceDispatch)).Methods("POST")

	authenticated.Handle("/vendor/{vendor_id}/orders/pending", orders_pending_get.New(log, app.ServiceOrder)).Methods("GET")
	authenticated.Handle("/vendor/{vendor_id}/radar", radar_mode_post.New(log, app.ServiceRadar)).Methods("POST")
	authenticated.Handle("/vendor/{vendor_id}/radar", radar_status_get.New(log, app.ServiceRadar)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
