package metrics

import (
	"context"
	"fmt"
	"time"

	"alpaca_dashboard/config"
	"alpaca_dashboard/interfaces"
	"alpaca_dashboard/logger"
	"alpaca_dashboard/models"
	"alpaca_dashboard/utils"
)

// MonitorPerformance periodically samples the account through the gateway,
// derives the summary metrics and archives them to the snapshot store and a
// CSV file. It runs off the render path; a failed sample is logged and
// skipped, never fatal. Returns when ctx is cancelled.
func MonitorPerformance(ctx context.Context, gw interfaces.Gateway, store interfaces.SnapshotStore, cfg *config.Config) {
	ticker := time.NewTicker(cfg.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			snap, err := sampleMetrics(ctx, gw, cfg)
			if err != nil {
				logger.Errorf("Failed to sample metrics: %v", err)
				continue
			}

			if store != nil {
				if err := store.InsertSnapshot(snap); err != nil {
					logger.Errorf("Failed to archive snapshot: %v", err)
				}
			}

			if cfg.SnapshotCSVPath != "" {
				if err := utils.AppendSnapshotToCSV(cfg.SnapshotCSVPath, snap); err != nil {
					logger.Errorf("Failed to append snapshot to CSV: %v", err)
				}
			}

			logger.Infof("Snapshot: value=%.2f P/L=%.2f (%.2f%%) risk=%.3f",
				snap.PortfolioValue, snap.PLDollar, snap.PLPercent, snap.RiskRatio)

		case <-ctx.Done():
			return
		}
	}
}

// sampleMetrics takes one measurement: account value against the baseline
// plus the trailing-month risk ratio.
func sampleMetrics(ctx context.Context, gw interfaces.Gateway, cfg *config.Config) (models.MetricsSnapshot, error) {
	raw, err := gw.GetAccount(ctx)
	if err != nil {
		return models.MetricsSnapshot{}, fmt.Errorf("fetch account: %w", err)
	}
	account, err := ShapeAccount(raw)
	if err != nil {
		return models.MetricsSnapshot{}, fmt.Errorf("shape account: %w", err)
	}

	now := time.Now()
	summary := Summarize(account.PortfolioValue, cfg.StartingValue, cfg.ElapsedDays(now))

	riskRatio := 0.0
	history, err := gw.GetPortfolioHistory(ctx, "1M", "1D")
	if err != nil {
		// The snapshot is still worth keeping without the ratio.
		logger.Warnf("Risk ratio unavailable for snapshot: %v", err)
	} else {
		var dailyPct []float64
		for _, v := range history.ProfitLossPct {
			dailyPct = append(dailyPct, v*100)
		}
		riskRatio = RiskRatio(dailyPct)
	}

	return models.MetricsSnapshot{
		Timestamp:      now,
		PortfolioValue: account.PortfolioValue,
		PLDollar:       summary.PLDollar,
		PLPercent:      summary.PLPercent,
		RiskRatio:      riskRatio,
	}, nil
}
