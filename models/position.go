package models

// RawPosition is one element of the /v2/positions response. Numeric fields
// arrive as strings.
type RawPosition struct {
	Symbol                 string `json:"symbol"`
	Qty                    string `json:"qty"`
	Side                   string `json:"side"`
	AvgEntryPrice          string `json:"avg_entry_price"`
	CurrentPrice           string `json:"current_price"`
	MarketValue            string `json:"market_value"`
	CostBasis              string `json:"cost_basis"`
	UnrealizedPL           string `json:"unrealized_pl"`
	UnrealizedPLPC         string `json:"unrealized_plpc"`
	UnrealizedIntradayPL   string `json:"unrealized_intraday_pl"`
	UnrealizedIntradayPLPC string `json:"unrealized_intraday_plpc"`
	LastdayPrice           string `json:"lastday_price"`
	ChangeToday            string `json:"change_today"`
}

// Position is a shaped open position. The three ratio fields
// (UnrealizedPLPC, UnrealizedIntradayPLPC, ChangeToday) are percentages,
// already scaled by 100 from the wire ratios; dollar fields are unscaled.
type Position struct {
	Symbol                 string  `json:"symbol"`
	Qty                    float64 `json:"qty"`
	Side                   string  `json:"side"`
	AvgEntryPrice          float64 `json:"avg_entry_price"`
	CurrentPrice           float64 `json:"current_price"`
	MarketValue            float64 `json:"market_value"`
	CostBasis              float64 `json:"cost_basis"`
	UnrealizedPL           float64 `json:"unrealized_pl"`
	UnrealizedPLPC         float64 `json:"unrealized_plpc"`
	UnrealizedIntradayPL   float64 `json:"unrealized_intraday_pl"`
	UnrealizedIntradayPLPC float64 `json:"unrealized_intraday_plpc"`
	LastdayPrice           float64 `json:"lastday_price"`
	ChangeToday            float64 `json:"change_today"`
}
