package models

import "time"

// DerivedMetrics is the all-time summary computed against the fixed starting
// baseline. Recomputed on every render, never persisted as-is.
type DerivedMetrics struct {
	PLDollar     float64 `json:"pl_dollar"`
	PLPercent    float64 `json:"pl_percent"`
	AvgPLDollar  float64 `json:"avg_pl_dollar"`
	AvgPLPercent float64 `json:"avg_pl_percent"`
	DaysRunning  int     `json:"days_running"`
	RiskRatio    float64 `json:"risk_ratio"`
}

// MetricsSnapshot is one archived sample written by the snapshot recorder.
type MetricsSnapshot struct {
	Timestamp      time.Time `json:"timestamp"`
	PortfolioValue float64   `json:"portfolio_value"`
	PLDollar       float64   `json:"pl_dollar"`
	PLPercent      float64   `json:"pl_percent"`
	RiskRatio      float64   `json:"risk_ratio"`
}
