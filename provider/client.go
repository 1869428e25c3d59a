package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lizet96/financial-data-backend/metrics"
	"github.com/lizet96/financial-data-backend/models"
)

const (
	// DefaultBaseURL es la URL base de la API de Financial Modeling Prep
	DefaultBaseURL = "https://financialmodelingprep.com/api/v3"

	DefaultTicker    = "AAPL"
	DefaultPeriod    = "annual"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5
)

// Client consulta estados de resultados de un único ticker
type Client struct {
	baseURL    string
	apiKey     string
	ticker     string
	period     string
	httpClient *http.Client
	logger     *zap.Logger
	limiter    *rate.Limiter
}

// ClientOption configura el Client
type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithTicker(ticker string) ClientOption {
	return func(c *Client) {
		c.ticker = ticker
	}
}

func WithPeriod(period string) ClientOption {
	return func(c *Client) {
		c.period = period
	}
}

// WithTimeout acota la duración de cada llamada al proveedor
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit limita las peticiones por segundo hacia el proveedor
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient crea un cliente del proveedor; apiKey viaja como parámetro apikey
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		ticker:     DefaultTicker,
		period:     DefaultPeriod,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint devuelve la ruta consultada, sin credenciales
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s/income-statement/%s", c.baseURL, url.PathEscape(c.ticker))
}

// FetchIncomeStatements hace exactamente un GET al proveedor
func (c *Client) FetchIncomeStatements(ctx context.Context) ([]models.UpstreamRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrUnreachable, err)
	}

	params := url.Values{}
	params.Set("period", c.period)
	params.Set("apikey", c.apiKey)
	reqURL := c.Endpoint() + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("requesting income statements",
		zap.String("endpoint", c.Endpoint()),
		zap.String("period", c.period))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(metrics.OutcomeUnreachable, start)
		// la URL del error incluye la clave
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observe(metrics.OutcomeHTTPError, start)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   c.Endpoint(),
		}
	}

	// Un corte al leer el cuerpo (incluido el timeout) es un fallo de transporte
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(metrics.OutcomeUnreachable, start)
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			return nil, fmt.Errorf("%w: timeout reading response body: %v", ErrUnreachable, err)
		}
		return nil, fmt.Errorf("%w: reading response body: %v", ErrUnreachable, err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		observe(metrics.OutcomeMalformed, start)
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	observe(metrics.OutcomeSuccess, start)
	c.logger.Debug("income statements received", zap.Int("records", len(records)))
	return records, nil
}

// decodeRecords exige una sola lista JSON de objetos; null, elementos null
// o texto después de la lista se rechazan.
func decodeRecords(body []byte) ([]models.UpstreamRecord, error) {
	var raw []*models.UpstreamRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected a list of records, got null")
	}

	records := make([]models.UpstreamRecord, 0, len(raw))
	for i, r := range raw {
		if r == nil {
			return nil, fmt.Errorf("record %d is null", i)
		}
		records = append(records, *r)
	}
	return records, nil
}

func observe(outcome string, start time.Time) {
	metrics.UpstreamRequests.WithLabelValues(outcome).Inc()
	metrics.UpstreamDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}
