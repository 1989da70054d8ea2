package fhirclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"carelink-service/internal/app/config"
	"carelink-service/internal/observability/metrics"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const breakerName = "fhir-upstream"

type fhirClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Breaker    *gobreaker.CircuitBreaker
	Limiter    *rate.Limiter
	Metrics    *metrics.Metrics
	Log        *zap.Logger
}

func NewFhirClient(internalConfig *config.InternalConfig, m *metrics.Metrics, logger *zap.Logger) Client {
	client := &fhirClient{
		BaseUrl: strings.TrimRight(internalConfig.FHIR.BaseUrl, "/"),
		HttpClient: &http.Client{
			Timeout: time.Duration(internalConfig.App.UpstreamTimeoutInSecond) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(internalConfig.App.UpstreamRequestsPerSecond), internalConfig.App.UpstreamRequestsPerSecond),
		Metrics: m,
		Log:     logger,
	}

	settings := gobreaker.Settings{
		Name:     breakerName,
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("FHIR upstream circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			if m != nil {
				m.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			}
		},
	}
	client.Breaker = gobreaker.NewCircuitBreaker(settings)

	return client
}

func (c *fhirClient) Request(ctx context.Context, path string) (json.RawMessage, error) {
	return c.RequestWithParams(ctx, path, nil)
}

func (c *fhirClient) RequestWithParams(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	requestURL := c.BaseUrl + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		values := url.Values{}
		for key, value := range params {
			values.Set(key, value)
		}
		requestURL += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	if token, ok := ctx.Value(constvars.CONTEXT_FHIR_TOKEN_KEY).(string); ok && token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}

	resourceLabel := resourceFromPath(path)
	if c.Metrics != nil {
		c.Metrics.FhirRequests.WithLabelValues(resourceLabel).Inc()
	}

	result, err := c.Breaker.Execute(func() (interface{}, error) {
		resp, err := c.HttpClient.Do(req)
		if err != nil {
			return nil, exceptions.ErrSendHTTPRequest(err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, resourceLabel)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, exceptions.ErrFhirServerRejected(nil)
		}
		return json.RawMessage(body), nil
	})
	if err != nil {
		if c.Metrics != nil {
			c.Metrics.FhirRequestFailures.WithLabelValues(resourceLabel).Inc()
		}
		c.Log.Error("fhirClient.RequestWithParams upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReferenceKey, path),
			zap.Error(err),
		)
		return nil, err
	}

	return result.(json.RawMessage), nil
}

// DecodeBundle decodes a raw search response into a bundle envelope. Entries
// stay raw; each caller decodes them into the resource type it expects.
func DecodeBundle(raw json.RawMessage, resourceType string) (*fhir_dto.FHIRBundle, error) {
	bundle := new(fhir_dto.FHIRBundle)
	if err := json.Unmarshal(raw, bundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}
	return bundle, nil
}

func resourceFromPath(path string) string {
	path = strings.TrimLeft(path, "/")
	if idx := strings.IndexAny(path, "/?"); idx > 0 {
		return path[:idx]
	}
	return path
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
