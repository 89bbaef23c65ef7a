package dashboard

import (
	"time"

	"alpaca_dashboard/metrics"
)

// Tile is one summary box: a label and a pre-formatted value, plus the
// three-way direction that drives its color.
type Tile struct {
	Label     string            `json:"label"`
	Value     string            `json:"value"`
	Direction metrics.Direction `json:"direction"`
}

// Cell is one formatted table cell. Direction is Flat for non-signed columns.
type Cell struct {
	Text      string            `json:"text"`
	Direction metrics.Direction `json:"direction"`
}

// Table is one tabular view with a fixed column order. Empty carries the
// "no data" message shown when there are no rows, so the UI can distinguish
// an empty-but-valid result from a failed fetch (which lands in Warnings).
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
	Empty   string   `json:"empty,omitempty"`
}

// SeriesPoint is one (x, y) sample of a chart series.
type SeriesPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Series is one ordered time series handed to the charting layer.
type Series struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// Filter holds the four independent activity filter selections. An empty
// string means "All" for that dimension.
type Filter struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
	Side   string `json:"side"`
	Date   string `json:"date"`
}

// FilterOptions are the distinct values offered by each activity filter
// dropdown, derived from the full (unfiltered) activity set.
type FilterOptions struct {
	Types   []string `json:"types"`
	Symbols []string `json:"symbols"`
	Sides   []string `json:"sides"`
	Dates   []string `json:"dates"`
}

// ViewModel is everything one page render needs. It is recomputed from fresh
// gateway calls on every request and holds no reference to prior state.
type ViewModel struct {
	GeneratedAt     time.Time     `json:"generated_at"`
	Tiles           []Tile        `json:"tiles"`
	Positions       Table         `json:"positions"`
	Activities      Table         `json:"activities"`
	ActivityOptions FilterOptions `json:"activity_options"`
	Filter          Filter        `json:"filter"`
	Charts          []Series      `json:"charts"`
	Warnings        []string      `json:"warnings,omitempty"`
}
