package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/repulens/backend/internal/domain"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SerpAPI engines used by the client
const (
	EngineMaps    = "google_maps"
	EngineWeb     = "google"
	EngineReviews = "google_maps_reviews"
)

const (
	defaultBaseURL         = "https://serpapi.com"
	defaultTimeout         = 30 * time.Second
	defaultRequestsPerHour = 1000

	// maxBodyBytes bounds how much of a response body is read into memory
	maxBodyBytes = 4 << 20
)

// ClientConfig holds the settings of a SerpAPI client
type ClientConfig struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	RequestsPerHour int
}

// Client handles communication with SerpAPI
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new SerpAPI client
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerHour <= 0 {
		cfg.RequestsPerHour = defaultRequestsPerHour
	}

	// rate.Limit is requests per second
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerHour)/3600), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// debugLog logs only when debug mode is enabled
func (c *Client) debugLog(msg string, fields ...zap.Field) {
	if c.debug {
		zap.L().Info(msg, fields...)
	}
}

// SearchLocal queries the Google Maps engine. The location, when given, is
// appended to the query text rather than sent as coordinates.
func (c *Client) SearchLocal(ctx context.Context, query, location string) ([]domain.BusinessRecord, error) {
	params := url.Values{}
	params.Set("engine", EngineMaps)
	params.Set("q", withLocation(query, location))
	params.Set("type", "search")

	body, err := c.get(ctx, EngineMaps, params)
	if err != nil {
		return nil, err
	}

	var resp mapsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, decodeError(EngineMaps, err)
	}

	records := make([]domain.BusinessRecord, 0, len(resp.LocalResults))
	for _, place := range resp.LocalResults {
		records = append(records, mapPlace(place))
	}

	zap.L().Info("serpapi: local search",
		zap.String("query", params.Get("q")),
		zap.Int("results", len(records)),
	)
	return records, nil
}

// SearchWeb queries the Google web engine and extracts at most one business
// from its knowledge panel or embedded local results.
func (c *Client) SearchWeb(ctx context.Context, query, location string) ([]domain.BusinessRecord, error) {
	params := url.Values{}
	params.Set("engine", EngineWeb)
	params.Set("q", withLocation(query, location))
	params.Set("google_domain", "google.com")

	body, err := c.get(ctx, EngineWeb, params)
	if err != nil {
		return nil, err
	}

	var resp webResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, decodeError(EngineWeb, err)
	}

	business, ok := extractBusinessFromWebSearch(&resp)
	zap.L().Info("serpapi: web search",
		zap.String("query", params.Get("q")),
		zap.Bool("extracted", ok),
	)
	if !ok {
		return nil, nil
	}
	return []domain.BusinessRecord{business}, nil
}

// GetReviews retrieves review details for a business by its data_id
func (c *Client) GetReviews(ctx context.Context, providerID string) (*domain.ReviewsPage, error) {
	params := url.Values{}
	params.Set("engine", EngineReviews)
	params.Set("data_id", providerID)

	body, err := c.get(ctx, EngineReviews, params)
	if err != nil {
		return nil, err
	}

	var resp reviewsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, decodeError(EngineReviews, err)
	}

	page := mapReviewsPage(&resp)
	zap.L().Info("serpapi: reviews",
		zap.String("data_id", providerID),
		zap.Int("reviews", len(page.Reviews)),
	)
	return page, nil
}

// get executes a search request for the given engine and returns the raw body
func (c *Client) get(ctx context.Context, engine string, params url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, domain.ErrProviderUnavailable
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, &domain.ProviderError{Engine: engine, Body: fmt.Sprintf("rate limiter: %v", err)}
	}

	c.debugLog("serpapi: request", zap.String("engine", engine), zap.String("params", params.Encode()))

	params.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		zap.L().Warn("serpapi: request failed", zap.String("engine", engine), zap.Error(err))
		return nil, &domain.ProviderError{Engine: engine, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxBodyBytes)
	if err != nil {
		return nil, &domain.ProviderError{Engine: engine, StatusCode: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zap.L().Warn("serpapi: non-success response",
			zap.String("engine", engine),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, &domain.ProviderError{Engine: engine, StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.debugLog("serpapi: response", zap.String("engine", engine), zap.Int("bytes", len(body)))
	return body, nil
}

// doRequest executes an HTTP GET request with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(stripURL(err), "failed to create request")
	}
	req.Header.Set("User-Agent", "RepuLens/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(stripURL(err), "request failed")
	}
	return resp, nil
}

// stripURL drops the request URL, api_key included, from a *url.Error
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

func decodeError(engine string, err error) error {
	return &domain.ProviderError{Engine: engine, StatusCode: http.StatusOK, Body: "failed to decode response: " + err.Error()}
}

func withLocation(query, location string) string {
	if location == "" {
		return query
	}
	return query + " " + location
}
