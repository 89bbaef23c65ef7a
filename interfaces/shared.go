package interfaces

import (
	"context"

	"alpaca_dashboard/models"
)

// Gateway defines the four read endpoints the dashboard and the snapshot
// recorder need from the brokerage. AlpacaClient implements it; tests use
// fakes.
type Gateway interface {
	GetAccount(ctx context.Context) (models.RawAccount, error)
	GetPositions(ctx context.Context) ([]models.RawPosition, error)
	GetPortfolioHistory(ctx context.Context, period, timeframe string) (models.RawHistory, error)
	GetActivities(ctx context.Context) ([]models.RawActivity, error)
}

// SnapshotStore persists recorder samples and serves them back for the
// long-horizon chart.
type SnapshotStore interface {
	InsertSnapshot(s models.MetricsSnapshot) error
	RecentSnapshots(limit int) ([]models.MetricsSnapshot, error)
}
