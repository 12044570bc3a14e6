package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/entities"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "push-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// statusError — невалидный код ответа, сохраняем его для решения о ретрае.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("push service responded with %d", e.code)
}

type Gateway struct {
	httpClient httpDoer
	retrier    retrier
	baseURL    string
	apiKey     string
}

func New(httpClient httpDoer, baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		httpClient: httpClient,
		retrier:    backoff_adapter.New(retryConfig),
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (g *Gateway) Send(ctx context.Context, notification entities.PushNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("gateway push, marshal notification: %w", err)
	}

	err = g.executeWithMetrics(ctx, "Send", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/notifications", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.apiKey)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		if resp.StatusCode >= http.StatusBadRequest {
			return &statusError{code: resp.StatusCode}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("gateway push, send notification for order %s: %w", notification.OrderID, err)
	}

	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var stErr *statusError
	if errors.As(err, &stErr) {
		return stErr.code == http.StatusTooManyRequests || stErr.code >= http.StatusInternalServerError
	}

	// сетевые ошибки транспорта ретраим всегда
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var stErr *statusError
	if errors.As(err, &stErr) {
		return strconv.Itoa(stErr.code)
	}
	return "transport_error"
}
