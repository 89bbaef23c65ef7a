package models

import "time"

// RawHistory is the /v2/account/portfolio/history response: four parallel
// arrays indexed by sample. A missing or empty Timestamp array means the
// account has no history yet, which is not an error.
type RawHistory struct {
	Timestamp     []int64   `json:"timestamp"`
	ProfitLoss    []float64 `json:"profit_loss"`
	ProfitLossPct []float64 `json:"profit_loss_pct"`
	Equity        []float64 `json:"equity"`
}

// HistoryPoint is one shaped time bucket. Time is exchange-local and
// ProfitLossPct is a percentage (wire ratio times 100).
type HistoryPoint struct {
	Time          time.Time `json:"time"`
	Equity        float64   `json:"equity"`
	ProfitLoss    float64   `json:"profit_loss"`
	ProfitLossPct float64   `json:"profit_loss_pct"`
}
