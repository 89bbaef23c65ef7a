package dashboard

import (
	"sort"

	"alpaca_dashboard/models"
)

// FilterActivities returns the subsequence of records matching every active
// filter dimension (logical AND; empty selection means "All"), sorted by
// timestamp descending. The input is never mutated.
func FilterActivities(records []models.ActivityRecord, f Filter) []models.ActivityRecord {
	var out []models.ActivityRecord
	for _, r := range records {
		if f.Type != "" && r.ActivityType != f.Type {
			continue
		}
		if f.Symbol != "" && r.Symbol != f.Symbol {
			continue
		}
		if f.Side != "" && r.Side != f.Side {
			continue
		}
		if f.Date != "" && r.Date() != f.Date {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time)
	})
	return out
}

// ActivityFilterOptions derives the sorted distinct values for each filter
// dropdown from the full activity set, so selections always reflect the data
// actually present.
func ActivityFilterOptions(records []models.ActivityRecord) FilterOptions {
	types := map[string]bool{}
	symbols := map[string]bool{}
	sides := map[string]bool{}
	dates := map[string]bool{}
	for _, r := range records {
		if r.ActivityType != "" {
			types[r.ActivityType] = true
		}
		if r.Symbol != "" {
			symbols[r.Symbol] = true
		}
		if r.Side != "" {
			sides[r.Side] = true
		}
		dates[r.Date()] = true
	}
	return FilterOptions{
		Types:   sortedKeys(types),
		Symbols: sortedKeys(symbols),
		Sides:   sortedKeys(sides),
		Dates:   sortedKeys(dates),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
