package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"alpaca_dashboard/config"
	"alpaca_dashboard/logger"
	"alpaca_dashboard/models"

	"golang.org/x/time/rate"
)

// Alpaca allows 200 requests per minute per account.
const requestsPerMinute = 200

// AlpacaClient is a thin read-only client for the four account endpoints the
// dashboard renders from. It never places orders.
type AlpacaClient struct {
	baseURL   string
	apiKey    string
	apiSecret string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewAlpacaClient creates a client from the deployment config.
func NewAlpacaClient(cfg *config.Config) *AlpacaClient {
	return &AlpacaClient{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		http:      &http.Client{Timeout: cfg.RequestTimeout},
		limiter:   rate.NewLimiter(rate.Limit(requestsPerMinute)/60, 10),
	}
}

// GetAccount fetches the account snapshot.
func (c *AlpacaClient) GetAccount(ctx context.Context) (models.RawAccount, error) {
	var account models.RawAccount
	err := c.getJSON(ctx, "/v2/account", &account)
	return account, err
}

// GetPositions fetches all open positions. An empty slice means the account
// holds nothing, which is a valid result.
func (c *AlpacaClient) GetPositions(ctx context.Context) ([]models.RawPosition, error) {
	var positions []models.RawPosition
	err := c.getJSON(ctx, "/v2/positions", &positions)
	return positions, err
}

// GetPortfolioHistory fetches the equity/P&L series for the given window,
// e.g. period "1D" with timeframe "5Min", or "1M" with "1D". A response with
// no timestamps means no history has accrued yet; callers must not treat that
// as a failure.
func (c *AlpacaClient) GetPortfolioHistory(ctx context.Context, period, timeframe string) (models.RawHistory, error) {
	var history models.RawHistory
	path := fmt.Sprintf("/v2/account/portfolio/history?period=%s&timeframe=%s&pnl_reset=continuous",
		url.QueryEscape(period), url.QueryEscape(timeframe))
	err := c.getJSON(ctx, path, &history)
	return history, err
}

// GetActivities fetches the most recent ledger events, newest first, capped
// at one server page.
func (c *AlpacaClient) GetActivities(ctx context.Context) ([]models.RawActivity, error) {
	var activities []models.RawActivity
	err := c.getJSON(ctx, "/v2/account/activities?direction=desc&page_size=100", &activities)
	return activities, err
}

// getJSON issues one authenticated GET and decodes the body into out,
// classifying failures into the transport/malformed taxonomy.
func (c *AlpacaClient) getJSON(ctx context.Context, path string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("APCA-API-KEY-ID", c.apiKey)
	req.Header.Set("APCA-API-SECRET-KEY", c.apiSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warnf("gateway %s returned %d", path, resp.StatusCode)
		return &TransportError{Endpoint: path, Status: resp.StatusCode}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &MalformedError{Endpoint: path, Excerpt: excerpt(body), Err: err}
	}
	return nil
}
