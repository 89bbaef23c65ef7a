package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alpaca_dashboard/client"
	"alpaca_dashboard/config"
	"alpaca_dashboard/interfaces"
	"alpaca_dashboard/logger"
	"alpaca_dashboard/metrics"
	"alpaca_dashboard/models"
)

// positionColumns is the fixed display order of the positions table.
var positionColumns = []string{
	"Symbol", "Qty", "Side", "Entry $", "Cur $", "Market Val", "Cost Basis",
	"PL $", "PL %", "Intraday $", "Intraday %", "LastDay $", "Chg Today %",
}

// activityColumns is the fixed display order of the activities table.
var activityColumns = []string{"Type", "Symbol", "Qty", "Price", "Side", "Time"}

// riskPeriod selects the daily series the risk ratio is computed over:
// trailing month, one bucket per day.
const (
	riskPeriod    = "1M"
	riskTimeframe = "1D"
)

// Build fetches the latest account state through the gateway and derives the
// complete view-model for one render. The gateway calls are issued
// sequentially and independently: a failure in one section is reported as a
// warning and leaves that section in its empty state while the others render
// from their own successful calls.
func Build(ctx context.Context, gw interfaces.Gateway, cfg *config.Config, filter Filter) *ViewModel {
	now := time.Now()
	vm := &ViewModel{
		GeneratedAt: now,
		Filter:      filter,
		Positions:   Table{Columns: positionColumns, Empty: "No positions found."},
		Activities:  Table{Columns: activityColumns, Empty: "No recent account activity found."},
	}

	summary, account := buildSummary(ctx, gw, cfg, now, vm)
	riskRatio, haveRisk := buildRiskRatio(ctx, gw, vm)
	vm.Tiles = summaryTiles(cfg, account, summary, riskRatio, haveRisk)

	buildCharts(ctx, gw, cfg, vm)
	buildPositions(ctx, gw, vm)
	buildActivities(ctx, gw, cfg, filter, vm)

	return vm
}

// buildSummary fetches the account snapshot and derives the all-time P/L
// summary against the configured baseline.
func buildSummary(ctx context.Context, gw interfaces.Gateway, cfg *config.Config, now time.Time, vm *ViewModel) (*models.DerivedMetrics, *models.AccountSnapshot) {
	raw, err := gw.GetAccount(ctx)
	if err != nil {
		vm.warn("account", err)
		return nil, nil
	}
	account, err := metrics.ShapeAccount(raw)
	if err != nil {
		vm.warn("account", err)
		return nil, nil
	}
	summary := metrics.Summarize(account.PortfolioValue, cfg.StartingValue, cfg.ElapsedDays(now))
	return &summary, &account
}

// buildRiskRatio fetches the trailing-month daily series and computes the
// risk-adjusted ratio from it.
func buildRiskRatio(ctx context.Context, gw interfaces.Gateway, vm *ViewModel) (float64, bool) {
	raw, err := gw.GetPortfolioHistory(ctx, riskPeriod, riskTimeframe)
	if err != nil {
		vm.warn("risk ratio", err)
		return 0, false
	}
	var dailyPct []float64
	for _, v := range raw.ProfitLossPct {
		dailyPct = append(dailyPct, v*100)
	}
	return metrics.RiskRatio(dailyPct), true
}

// summaryTiles lays the derived numbers out in the summary tile order.
// Tiles that depend on a failed account fetch are rendered as placeholders.
func summaryTiles(cfg *config.Config, account *models.AccountSnapshot, summary *models.DerivedMetrics, riskRatio float64, haveRisk bool) []Tile {
	tiles := []Tile{
		{Label: "Starting Value", Value: money(cfg.StartingValue)},
	}

	if account == nil || summary == nil {
		tiles = append(tiles, Tile{Label: "Current Value", Value: "—"})
	} else {
		tiles = append(tiles,
			Tile{Label: "Current Value", Value: money(account.PortfolioValue), Direction: metrics.Classify(summary.PLDollar)},
			Tile{Label: "P/L $", Value: money(summary.PLDollar), Direction: metrics.Classify(summary.PLDollar)},
			Tile{Label: "P/L %", Value: percent(summary.PLPercent), Direction: metrics.Classify(summary.PLDollar)},
			Tile{Label: "Avg Daily $", Value: money(summary.AvgPLDollar), Direction: metrics.Classify(summary.AvgPLDollar)},
			Tile{Label: "Avg Daily %", Value: percent(summary.AvgPLPercent), Direction: metrics.Classify(summary.AvgPLDollar)},
			Tile{Label: "Buying Power", Value: money(account.BuyingPower)},
			Tile{Label: "Margin Used", Value: money(account.InitialMargin)},
			Tile{Label: "Margin Requirement", Value: money(account.MaintenanceMargin)},
		)
	}

	if haveRisk {
		tiles = append(tiles, Tile{Label: "Risk Ratio (1M)", Value: ratio(riskRatio), Direction: metrics.Classify(riskRatio)})
	}

	days := 0
	if summary != nil {
		days = summary.DaysRunning
	} else {
		days = cfg.ElapsedDays(time.Now())
	}
	tiles = append(tiles, Tile{
		Label: "Started",
		Value: fmt.Sprintf("%s | Days Running: %d", cfg.StartDate.Format("January 02, 2006"), days),
	})
	return tiles
}

// buildCharts fetches the intraday history window and shapes it into the
// three chart series. An empty series is "no data yet", not a failure.
func buildCharts(ctx context.Context, gw interfaces.Gateway, cfg *config.Config, vm *ViewModel) {
	raw, err := gw.GetPortfolioHistory(ctx, cfg.ChartPeriod, cfg.ChartTimeframe)
	if err != nil {
		vm.warn("portfolio history", err)
		return
	}
	points := metrics.ShapeHistory(raw, cfg.Location)
	if len(points) == 0 {
		logger.Debug("no portfolio history data returned")
		return
	}

	equity := Series{Name: "Equity"}
	plDollar := Series{Name: "P/L $"}
	plPercent := Series{Name: "P/L %"}
	for _, p := range points {
		equity.Points = append(equity.Points, SeriesPoint{Time: p.Time, Value: p.Equity})
		plDollar.Points = append(plDollar.Points, SeriesPoint{Time: p.Time, Value: p.ProfitLoss})
		plPercent.Points = append(plPercent.Points, SeriesPoint{Time: p.Time, Value: p.ProfitLossPct})
	}
	vm.Charts = []Series{equity, plDollar, plPercent}
}

// buildPositions fetches and shapes the open positions table, preserving the
// gateway's row order.
func buildPositions(ctx context.Context, gw interfaces.Gateway, vm *ViewModel) {
	raw, err := gw.GetPositions(ctx)
	if err != nil {
		vm.warn("positions", err)
		return
	}
	positions, err := metrics.ShapePositions(raw)
	if err != nil {
		vm.warn("positions", err)
		return
	}
	for _, p := range positions {
		vm.Positions.Rows = append(vm.Positions.Rows, []Cell{
			{Text: p.Symbol},
			{Text: quantity(p.Qty)},
			{Text: p.Side},
			{Text: money(p.AvgEntryPrice)},
			{Text: money(p.CurrentPrice)},
			{Text: money(p.MarketValue)},
			{Text: money(p.CostBasis)},
			{Text: money(p.UnrealizedPL), Direction: metrics.Classify(p.UnrealizedPL)},
			{Text: percent(p.UnrealizedPLPC), Direction: metrics.Classify(p.UnrealizedPLPC)},
			{Text: money(p.UnrealizedIntradayPL), Direction: metrics.Classify(p.UnrealizedIntradayPL)},
			{Text: percent(p.UnrealizedIntradayPLPC), Direction: metrics.Classify(p.UnrealizedIntradayPLPC)},
			{Text: money(p.LastdayPrice)},
			{Text: percent(p.ChangeToday), Direction: metrics.Classify(p.ChangeToday)},
		})
	}
}

// buildActivities fetches the recent ledger, derives the filter dropdown
// options from the full set, then applies the active filters.
func buildActivities(ctx context.Context, gw interfaces.Gateway, cfg *config.Config, filter Filter, vm *ViewModel) {
	raw, err := gw.GetActivities(ctx)
	if err != nil {
		vm.warn("activities", err)
		return
	}
	records, err := metrics.ShapeActivities(raw, cfg.Location)
	if err != nil {
		vm.warn("activities", err)
		return
	}
	vm.ActivityOptions = ActivityFilterOptions(records)

	for _, r := range FilterActivities(records, filter) {
		vm.Activities.Rows = append(vm.Activities.Rows, []Cell{
			{Text: r.ActivityType},
			{Text: r.Symbol},
			{Text: quantity(r.Qty), Direction: metrics.Classify(r.Qty)},
			{Text: money(r.Price), Direction: metrics.Classify(r.Price)},
			{Text: r.Side},
			{Text: r.Time.Format("2006-01-02 15:04:05")},
		})
	}
}

// warn records a section failure, distinguishing an unreachable gateway from
// a malformed response.
func (vm *ViewModel) warn(section string, err error) {
	var transport *client.TransportError
	var malformed *client.MalformedError
	switch {
	case errors.As(err, &transport):
		vm.Warnings = append(vm.Warnings, fmt.Sprintf("%s unavailable: %v", section, transport))
	case errors.As(err, &malformed):
		vm.Warnings = append(vm.Warnings, fmt.Sprintf("%s malformed: %v", section, malformed))
	default:
		vm.Warnings = append(vm.Warnings, fmt.Sprintf("%s malformed: %v", section, err))
	}
	logger.Warnf("section %s degraded: %v", section, err)
}
