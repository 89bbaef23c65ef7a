package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alpaca_dashboard/client"
	"alpaca_dashboard/config"
	"alpaca_dashboard/dashboard"
	"alpaca_dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAlpaca is a canned brokerage API. positionsStatus lets a test break
// only the positions endpoint.
func stubAlpaca(t *testing.T, positionsStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/account", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"portfolio_value":"2500.00","buying_power":"5000.00","initial_margin":"100.00","maintenance_margin":"50.00","equity":"2500.00"}`))
	})
	mux.HandleFunc("/v2/positions", func(w http.ResponseWriter, r *http.Request) {
		if positionsStatus != http.StatusOK {
			http.Error(w, "unavailable", positionsStatus)
			return
		}
		w.Write([]byte(`[{"symbol":"AAPL","qty":"10","side":"long","avg_entry_price":"50","current_price":"55","market_value":"550","cost_basis":"500","unrealized_pl":"50","unrealized_plpc":"0.10","unrealized_intraday_pl":"5","unrealized_intraday_plpc":"0.009","lastday_price":"54.5","change_today":"0.009"}]`))
	})
	mux.HandleFunc("/v2/account/portfolio/history", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"timestamp":[1714744800,1714745100],"profit_loss":[1,2],"profit_loss_pct":[0.0005,0.001],"equity":[2001,2002]}`))
	})
	mux.HandleFunc("/v2/account/activities", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","activity_type":"FILL","symbol":"AAPL","qty":"10","price":"50","side":"buy","transaction_time":"2025-06-02T14:30:00Z"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testServer(t *testing.T, positionsStatus int) *httptest.Server {
	t.Helper()
	gateway := stubAlpaca(t, positionsStatus)

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cfg := &config.Config{
		BaseURL:        gateway.URL,
		APIKey:         "k",
		APISecret:      "s",
		StartingValue:  2000,
		StartDate:      time.Now().In(loc).AddDate(0, 0, -10),
		Location:       loc,
		ChartPeriod:    "1D",
		ChartTimeframe: "5Min",
		RequestTimeout: 5 * time.Second,
	}

	srv := httptest.NewServer(New(cfg, client.NewAlpacaClient(cfg), nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getViewModel(t *testing.T, url string) *dashboard.ViewModel {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var vm dashboard.ViewModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vm))
	return &vm
}

func TestDashboardAPI(t *testing.T) {
	srv := testServer(t, http.StatusOK)

	vm := getViewModel(t, srv.URL+"/api/dashboard")
	assert.Empty(t, vm.Warnings)
	assert.Len(t, vm.Positions.Rows, 1)
	assert.Len(t, vm.Activities.Rows, 1)
	assert.Len(t, vm.Charts, 3)
}

func TestDashboardAPIPositionsDown(t *testing.T) {
	srv := testServer(t, http.StatusInternalServerError)

	vm := getViewModel(t, srv.URL+"/api/dashboard")

	// Only the positions section degrades; the rest renders from its own
	// successful calls.
	require.Len(t, vm.Warnings, 1)
	assert.Contains(t, vm.Warnings[0], "positions unavailable")
	assert.Empty(t, vm.Positions.Rows)
	assert.Len(t, vm.Activities.Rows, 1)
	assert.Len(t, vm.Charts, 3)
}

func TestDashboardAPIFilterParams(t *testing.T) {
	srv := testServer(t, http.StatusOK)

	vm := getViewModel(t, srv.URL+"/api/dashboard?activity_type=DIV&symbol=All")
	assert.Equal(t, "DIV", vm.Filter.Type)
	assert.Empty(t, vm.Filter.Symbol)
	assert.Empty(t, vm.Activities.Rows)
}

func TestPageRenders(t *testing.T) {
	srv := testServer(t, http.StatusOK)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, "Open Positions")
	assert.Contains(t, body, "$2,500.00")
	assert.Contains(t, body, "AAPL")
}

func TestSnapshotsWithoutStore(t *testing.T) {
	srv := testServer(t, http.StatusOK)

	resp, err := http.Get(srv.URL + "/api/snapshots")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snaps []models.MetricsSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snaps))
	assert.Empty(t, snaps)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, http.StatusOK)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
