package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alpaca_dashboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *AlpacaClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAlpacaClient(&config.Config{
		BaseURL:        srv.URL,
		APIKey:         "key-id",
		APISecret:      "secret-key",
		RequestTimeout: 5 * time.Second,
	})
}

func TestGetAccountSendsAuthHeaders(t *testing.T) {
	var gotKey, gotSecret, gotAccept string
	cl := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("APCA-API-KEY-ID")
		gotSecret = r.Header.Get("APCA-API-SECRET-KEY")
		gotAccept = r.Header.Get("accept")
		w.Write([]byte(`{"portfolio_value":"2500.00","equity":"2500.00"}`))
	}))

	account, err := cl.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key-id", gotKey)
	assert.Equal(t, "secret-key", gotSecret)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "2500.00", account.PortfolioValue)
}

func TestGetPositionsEmptyIsValid(t *testing.T) {
	cl := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	positions, err := cl.GetPositions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, positions)
}

func TestServerErrorIsTransport(t *testing.T) {
	cl := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := cl.GetPositions(context.Background())
	require.Error(t, err)

	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, http.StatusInternalServerError, transport.Status)
	assert.Contains(t, transport.Endpoint, "/v2/positions")
}

func TestUnreachableGatewayIsTransport(t *testing.T) {
	cl := NewAlpacaClient(&config.Config{
		BaseURL:        "http://127.0.0.1:1",
		APIKey:         "k",
		APISecret:      "s",
		RequestTimeout: time.Second,
	})

	_, err := cl.GetAccount(context.Background())
	require.Error(t, err)

	var transport *TransportError
	assert.True(t, errors.As(err, &transport))
	assert.Zero(t, transport.Status)
}

func TestNonJSONBodyIsMalformed(t *testing.T) {
	cl := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance page</html>`))
	}))

	_, err := cl.GetAccount(context.Background())
	require.Error(t, err)

	var malformed *MalformedError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Excerpt, "maintenance page")
	assert.Contains(t, malformed.Endpoint, "/v2/account")
}

func TestGetPortfolioHistoryParams(t *testing.T) {
	var gotQuery string
	cl := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"timestamp":[1714744800],"profit_loss":[1.0],"profit_loss_pct":[0.0005],"equity":[2001.0]}`))
	}))

	history, err := cl.GetPortfolioHistory(context.Background(), "1D", "5Min")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "period=1D")
	assert.Contains(t, gotQuery, "timeframe=5Min")
	assert.Contains(t, gotQuery, "pnl_reset=continuous")
	require.Len(t, history.Timestamp, 1)
	assert.Equal(t, int64(1714744800), history.Timestamp[0])
}

func TestGetActivitiesPaging(t *testing.T) {
	var gotQuery string
	cl := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"x","activity_type":"FILL","symbol":"AAPL","qty":"1","price":"10","side":"buy","transaction_time":"2025-06-02T14:30:00Z"}]`))
	}))

	activities, err := cl.GetActivities(context.Background())
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "direction=desc")
	assert.Contains(t, gotQuery, "page_size=100")
	require.Len(t, activities, 1)
	assert.Equal(t, "FILL", activities[0].ActivityType)
}
