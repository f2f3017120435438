// Package maps adapts the Google Maps Platform web services to the quote
// domain's DirectionsProvider and LocationSearcher capabilities.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
)

const (
	// DefaultBaseURL is the Google Maps web service root.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api"
	// DefaultTimeout bounds every provider call.
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 4 << 20

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusTimeout     = "TIMEOUT"
	statusHTTPError   = "HTTP_ERROR"
	statusBadPayload  = "INVALID_RESPONSE"
)

// Config holds the provider credential and transport settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// Region restricts place autocomplete to an ISO 3166-1 country code.
	Region string
}

// Client is a thin Google Maps web service client. It performs exactly one
// request per call and never retries.
type Client struct {
	apiKey     string
	baseURL    string
	region     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Client. The API key is required.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("maps API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		region:     cfg.Region,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}, nil
}

// statusEnvelope is the part every Maps web service response shares.
type statusEnvelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// get issues a GET to path with params plus the API key, decodes the JSON body
// into out and returns the raw body for diagnostics. Transport failures,
// non-2xx responses and undecodable bodies are reported as UpstreamError.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (json.RawMessage, error) {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build maps request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		status := ""
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			status = statusTimeout
		}
		err = redact(err, c.apiKey)
		c.logger.Warn("maps request failed",
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, domain.NewUpstreamError(status, nil, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domain.NewUpstreamError("", nil, fmt.Errorf("failed to read maps response: %w", err))
	}

	c.logger.Debug("maps request completed",
		zap.String("path", path),
		zap.Int("http_status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	raw := asRawJSON(body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, domain.NewUpstreamError(statusHTTPError, raw, fmt.Errorf("maps returned HTTP %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return raw, domain.NewUpstreamError(statusBadPayload, raw, fmt.Errorf("failed to decode maps response: %w", err))
	}
	return raw, nil
}

// asRawJSON returns body as-is when it is valid JSON and as a JSON string
// otherwise, so it can always be embedded in an error response.
func asRawJSON(body []byte) json.RawMessage {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return json.RawMessage(quoted)
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// redact strips the API key from transport errors, which embed the request URL.
func redact(err error, apiKey string) error {
	var urlErr *url.Error
	if apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, apiKey, "REDACTED"),
		Err: urlErr.Err,
	}
}
