package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APCA_API_KEY_ID", "key")
	t.Setenv("APCA_API_SECRET_KEY", "secret")
	t.Setenv("APCA_API_BASE_URL", "https://paper-api.example.com")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8090", cfg.ListenAddr)
	assert.Equal(t, 2000.00, cfg.StartingValue)
	assert.Equal(t, "1D", cfg.ChartPeriod)
	assert.Equal(t, "5Min", cfg.ChartTimeframe)
	assert.Equal(t, time.Hour, cfg.SnapshotInterval)
	assert.Equal(t, MarketTimezone, cfg.Location.String())
	assert.Equal(t, 2025, cfg.StartDate.Year())
}

func TestFromEnvMissingSecrets(t *testing.T) {
	t.Setenv("APCA_API_KEY_ID", "")
	t.Setenv("APCA_API_SECRET_KEY", "")
	t.Setenv("APCA_API_BASE_URL", "")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnvRejectsZeroBaseline(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DASH_STARTING_VALUE", "0")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASH_STARTING_VALUE")

	t.Setenv("DASH_STARTING_VALUE", "-50")
	_, err = FromEnv()
	require.Error(t, err)
}

func TestFromEnvRejectsBadStartDate(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DASH_START_DATE", "April 22, 2025")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DASH_START_DATE")
}

func TestElapsedDays(t *testing.T) {
	loc, err := time.LoadLocation(MarketTimezone)
	require.NoError(t, err)

	cfg := &Config{
		StartDate: time.Date(2025, 4, 22, 0, 0, 0, 0, loc),
		Location:  loc,
	}

	// Same calendar day counts as zero elapsed days.
	assert.Equal(t, 0, cfg.ElapsedDays(time.Date(2025, 4, 22, 15, 30, 0, 0, loc)))
	assert.Equal(t, 1, cfg.ElapsedDays(time.Date(2025, 4, 23, 0, 5, 0, 0, loc)))
	assert.Equal(t, 10, cfg.ElapsedDays(time.Date(2025, 5, 2, 9, 0, 0, 0, loc)))
	// A clock set before the start date never goes negative.
	assert.Equal(t, 0, cfg.ElapsedDays(time.Date(2025, 4, 20, 9, 0, 0, 0, loc)))
}
