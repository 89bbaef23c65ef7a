package models

// RawAccount is the /v2/account response. Alpaca sends every numeric field as
// a JSON string.
type RawAccount struct {
	PortfolioValue    string `json:"portfolio_value"`
	BuyingPower       string `json:"buying_power"`
	InitialMargin     string `json:"initial_margin"`
	MaintenanceMargin string `json:"maintenance_margin"`
	Equity            string `json:"equity"`
}

// AccountSnapshot is the shaped account state for one render.
type AccountSnapshot struct {
	PortfolioValue    float64 `json:"portfolio_value"`
	BuyingPower       float64 `json:"buying_power"`
	InitialMargin     float64 `json:"initial_margin"`
	MaintenanceMargin float64 `json:"maintenance_margin"`
	Equity            float64 `json:"equity"`
}
