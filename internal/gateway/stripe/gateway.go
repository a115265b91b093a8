package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"service/internal/entities"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "stripe"
	intentsPath = "/v1/payment_intents"

	// ответы API небольшие, гигабайтный body — признак проблемы, а не данных
	maxResponseBytes = 1 << 20
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	APIKey      string
	BaseURL     string
	CallTimeout time.Duration
}

type Gateway struct {
	httpClient doer
	apiKey     string
	baseURL    string
	retrier    retrier
}

func New(cfg Config) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		httpClient: &http.Client{Timeout: cfg.CallTimeout},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		retrier:    backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*entities.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	for key, value := range metadata {
		form.Set("metadata["+key+"]", value)
	}

	payload, err := g.call(ctx, "CreateIntent", http.MethodPost, intentsPath, form)
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, create intent: %w", err)
	}

	return toDomain(payload), nil
}

func (g *Gateway) RetrieveIntent(ctx context.Context, reference string) (*entities.PaymentIntent, error) {
	path := intentsPath + "/" + url.PathEscape(reference)

	payload, err := g.call(ctx, "RetrieveIntent", http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, retrieve intent: %s: %w", reference, err)
	}

	return toDomain(payload), nil
}

func (g *Gateway) call(ctx context.Context, method, httpMethod, path string, form url.Values) (*intentPayload, error) {
	var payload *intentPayload

	err := g.executeWithMetrics(ctx, method, func(ctx context.Context) error {
		var err error
		payload, err = g.roundTrip(ctx, httpMethod, path, form)
		return err
	})
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// roundTrip выполняет один запрос к API. Body собирается заново на каждую
// попытку, поэтому форма передается значениями, а не reader'ом.
func (g *Gateway) roundTrip(ctx context.Context, httpMethod, path string, form url.Values) (*intentPayload, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, g.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		var payload intentPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode intent: %w", err)
		}
		return &payload, nil

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)

	default:
		var payload errorPayload
		// тело ошибки может быть и не JSON, тогда отдаем голый статус
		_ = json.Unmarshal(raw, &payload)

		return nil, &Error{
			StatusCode: resp.StatusCode,
			Code:       payload.Error.Code,
			Message:    payload.Error.Message,
		}
	}
}

func isRetryableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
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
		return "OK"
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}

	if errors.Is(err, ErrUnavailable) {
		return "unavailable"
	}

	return "error"
}
