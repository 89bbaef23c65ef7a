package metrics

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"alpaca_dashboard/models"
)

// ShapeHistory zips the four parallel arrays of a portfolio history response
// into one ordered series. Timestamps are epoch seconds converted to the
// given location; profit_loss_pct arrives as a fraction and is scaled to a
// percentage. An absent or empty timestamp array means the account has no
// history yet and yields an empty series, not an error.
func ShapeHistory(raw models.RawHistory, loc *time.Location) []models.HistoryPoint {
	if len(raw.Timestamp) == 0 {
		return nil
	}

	// The gateway promises equal-length arrays; truncate to the shortest in
	// case a partial bucket slips through.
	n := min(len(raw.Timestamp), len(raw.ProfitLoss), len(raw.ProfitLossPct), len(raw.Equity))

	points := make([]models.HistoryPoint, n)
	for i := 0; i < n; i++ {
		points[i] = models.HistoryPoint{
			Time:          time.Unix(raw.Timestamp[i], 0).In(loc),
			Equity:        raw.Equity[i],
			ProfitLoss:    raw.ProfitLoss[i],
			ProfitLossPct: raw.ProfitLossPct[i] * 100,
		}
	}
	return points
}

// ShapePositions coerces every numeric-as-string field of each position and
// scales the three ratio fields to percentages. Input order is preserved and
// an empty input is a valid "no open positions" result.
func ShapePositions(raws []models.RawPosition) ([]models.Position, error) {
	positions := make([]models.Position, 0, len(raws))
	for _, raw := range raws {
		c := coercer{}
		p := models.Position{
			Symbol:                 raw.Symbol,
			Side:                   raw.Side,
			Qty:                    c.float("qty", raw.Qty),
			AvgEntryPrice:          c.float("avg_entry_price", raw.AvgEntryPrice),
			CurrentPrice:           c.float("current_price", raw.CurrentPrice),
			MarketValue:            c.float("market_value", raw.MarketValue),
			CostBasis:              c.float("cost_basis", raw.CostBasis),
			UnrealizedPL:           c.float("unrealized_pl", raw.UnrealizedPL),
			UnrealizedPLPC:         c.float("unrealized_plpc", raw.UnrealizedPLPC) * 100,
			UnrealizedIntradayPL:   c.float("unrealized_intraday_pl", raw.UnrealizedIntradayPL),
			UnrealizedIntradayPLPC: c.float("unrealized_intraday_plpc", raw.UnrealizedIntradayPLPC) * 100,
			LastdayPrice:           c.float("lastday_price", raw.LastdayPrice),
			ChangeToday:            c.float("change_today", raw.ChangeToday) * 100,
		}
		if c.err != nil {
			return nil, fmt.Errorf("position %s: %v", raw.Symbol, c.err)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// ShapeAccount coerces the account scalar fields.
func ShapeAccount(raw models.RawAccount) (models.AccountSnapshot, error) {
	c := coercer{}
	snapshot := models.AccountSnapshot{
		PortfolioValue:    c.float("portfolio_value", raw.PortfolioValue),
		BuyingPower:       c.float("buying_power", raw.BuyingPower),
		InitialMargin:     c.float("initial_margin", raw.InitialMargin),
		MaintenanceMargin: c.float("maintenance_margin", raw.MaintenanceMargin),
		Equity:            c.float("equity", raw.Equity),
	}
	if c.err != nil {
		return models.AccountSnapshot{}, c.err
	}
	return snapshot, nil
}

// ShapeActivities coerces each ledger event. Qty and price are absent for
// non-trade events (dividends, fees) and coerce to zero; a present but
// non-numeric value is a malformed response.
func ShapeActivities(raws []models.RawActivity, loc *time.Location) ([]models.ActivityRecord, error) {
	records := make([]models.ActivityRecord, 0, len(raws))
	for _, raw := range raws {
		c := coercer{}
		rec := models.ActivityRecord{
			ID:           raw.ID,
			ActivityType: raw.ActivityType,
			Symbol:       raw.Symbol,
			Side:         raw.Side,
			Qty:          c.optFloat("qty", raw.Qty),
			Price:        c.optFloat("price", raw.Price),
		}
		if c.err != nil {
			return nil, fmt.Errorf("activity %s: %v", raw.ID, c.err)
		}
		ts, err := time.Parse(time.RFC3339, raw.TransactionTime)
		if err != nil {
			return nil, fmt.Errorf("activity %s: invalid transaction_time %q", raw.ID, raw.TransactionTime)
		}
		rec.Time = ts.In(loc)
		records = append(records, rec)
	}
	return records, nil
}

// Summarize computes the all-time P/L summary against the fixed baseline.
// The baseline is validated positive at config load; elapsedDays of zero
// (launch day) yields defined zero averages rather than a division fault.
func Summarize(portfolioValue, baseline float64, elapsedDays int) models.DerivedMetrics {
	m := models.DerivedMetrics{
		PLDollar:    portfolioValue - baseline,
		PLPercent:   (portfolioValue - baseline) / baseline * 100,
		DaysRunning: elapsedDays,
	}
	if elapsedDays > 0 {
		m.AvgPLDollar = m.PLDollar / float64(elapsedDays)
		m.AvgPLPercent = m.PLPercent / float64(elapsedDays)
	}
	return m
}

// RiskRatio computes the unannualized mean/stddev ratio over the daily
// percent P/L series. Exact-zero entries are market-closed days, not true
// zero returns, and are excluded. Returns 0 when nothing remains after
// filtering or when the deviation is exactly zero. Deliberately crude: no
// risk-free rate, no annualization.
func RiskRatio(dailyPct []float64) float64 {
	var filtered []float64
	for _, v := range dailyPct {
		if v != 0 {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == 0 {
		return 0
	}

	var sum float64
	for _, v := range filtered {
		sum += v
	}
	mean := sum / float64(len(filtered))

	var sqSum float64
	for _, v := range filtered {
		d := v - mean
		sqSum += d * d
	}
	stddev := math.Sqrt(sqSum / float64(len(filtered)))
	if stddev == 0 {
		return 0
	}
	return mean / stddev
}

// coercer parses numeric-as-string fields, remembering the first failure so
// call sites stay flat.
type coercer struct {
	err error
}

func (c *coercer) float(field, s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("invalid numeric field %s=%q", field, s)
	}
	return v
}

// optFloat treats an empty string as zero, for fields the gateway omits.
func (c *coercer) optFloat(field, s string) float64 {
	if s == "" {
		return 0
	}
	return c.float(field, s)
}
