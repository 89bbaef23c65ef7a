package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

// MarketTimezone is the exchange-local time zone used for history timestamps
// and calendar-day arithmetic.
const MarketTimezone = "America/New_York"

// Config carries every deployment-time setting. It is built once in main and
// passed by reference; nothing in this codebase reads the environment after
// startup.
type Config struct {
	// Alpaca credentials.
	APIKey    string
	APISecret string
	BaseURL   string

	// StartingValue is the fixed baseline portfolio value all-time P/L is
	// measured against. Must be positive.
	StartingValue float64
	// StartDate is the calendar day the strategy went live, in the market
	// time zone.
	StartDate time.Time

	// ListenAddr is the dashboard HTTP listen address.
	ListenAddr string

	// SnapshotDBPath and SnapshotCSVPath locate the metrics archive. Empty
	// SnapshotDBPath disables the recorder.
	SnapshotDBPath  string
	SnapshotCSVPath string
	// SnapshotInterval is how often the recorder samples the account.
	SnapshotInterval time.Duration

	// ChartPeriod and ChartTimeframe select the intraday history window
	// plotted on the dashboard (e.g. "1D" / "5Min").
	ChartPeriod    string
	ChartTimeframe string

	// RequestTimeout bounds each gateway call.
	RequestTimeout time.Duration

	// Location resolved from MarketTimezone.
	Location *time.Location
}

// FromEnv builds a Config from the process environment. Secrets are required;
// everything else has a default. A missing secret, a non-positive baseline or
// an unparseable start date is a configuration error and should be fatal.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:           os.Getenv("APCA_API_KEY_ID"),
		APISecret:        os.Getenv("APCA_API_SECRET_KEY"),
		BaseURL:          os.Getenv("APCA_API_BASE_URL"),
		ListenAddr:       envOr("DASH_LISTEN_ADDR", ":8090"),
		SnapshotDBPath:   envOr("DASH_SNAPSHOT_DB", "data/snapshots.db"),
		SnapshotCSVPath:  envOr("DASH_SNAPSHOT_CSV", "data/snapshots.csv"),
		SnapshotInterval: time.Hour,
		ChartPeriod:      envOr("DASH_CHART_PERIOD", "1D"),
		ChartTimeframe:   envOr("DASH_CHART_TIMEFRAME", "5Min"),
		RequestTimeout:   10 * time.Second,
	}

	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("APCA_API_KEY_ID or APCA_API_SECRET_KEY not set")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("APCA_API_BASE_URL not set")
	}

	loc, err := time.LoadLocation(MarketTimezone)
	if err != nil {
		return nil, fmt.Errorf("load market timezone: %v", err)
	}
	cfg.Location = loc

	startingValue := envOr("DASH_STARTING_VALUE", "2000.00")
	cfg.StartingValue, err = strconv.ParseFloat(startingValue, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DASH_STARTING_VALUE %q: %v", startingValue, err)
	}
	if cfg.StartingValue <= 0 {
		// A zero baseline would make pl_percent divide by zero; reject it
		// here instead of guarding every computation.
		return nil, fmt.Errorf("DASH_STARTING_VALUE must be positive, got %s", startingValue)
	}

	startDate := envOr("DASH_START_DATE", "2025-04-22")
	cfg.StartDate, err = time.ParseInLocation("2006-01-02", startDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid DASH_START_DATE %q: %v", startDate, err)
	}

	if iv := os.Getenv("DASH_SNAPSHOT_INTERVAL"); iv != "" {
		cfg.SnapshotInterval, err = time.ParseDuration(iv)
		if err != nil {
			return nil, fmt.Errorf("invalid DASH_SNAPSHOT_INTERVAL %q: %v", iv, err)
		}
	}

	return cfg, nil
}

// ElapsedDays returns the number of whole calendar days between the start date
// and now, in the market time zone. Zero on launch day.
func (c *Config) ElapsedDays(now time.Time) int {
	today := now.In(c.Location)
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, c.Location)
	// Rounding absorbs the 23/25-hour days around DST transitions.
	days := int(math.Round(midnight.Sub(c.StartDate).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
