package models

import "time"

// RawActivity is one element of the /v2/account/activities response. Qty and
// Price are numeric-as-string and absent for non-trade events like dividends.
type RawActivity struct {
	ID              string `json:"id"`
	ActivityType    string `json:"activity_type"`
	Symbol          string `json:"symbol"`
	Qty             string `json:"qty"`
	Price           string `json:"price"`
	Side            string `json:"side"`
	TransactionTime string `json:"transaction_time"`
}

// ActivityRecord is a shaped ledger event.
type ActivityRecord struct {
	ID           string    `json:"id"`
	ActivityType string    `json:"activity_type"`
	Symbol       string    `json:"symbol"`
	Qty          float64   `json:"qty"`
	Price        float64   `json:"price"`
	Side         string    `json:"side"`
	Time         time.Time `json:"time"`
}

// Date returns the exchange-local calendar day of the event, the value the
// activity date filter matches against.
func (a ActivityRecord) Date() string {
	return a.Time.Format("2006-01-02")
}
