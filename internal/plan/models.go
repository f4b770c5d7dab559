package plan

import "sort"

// Entry is one timeline item of a team's ascent plan.
type Entry struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Order    *int   `json:"order,omitempty"`
}

// Plan is the per-team ascent plan: selected date/hut/route plus the
// ordered timeline entries.
type Plan struct {
	TeamID  string  `json:"team_id"`
	Date    string  `json:"date,omitempty"`
	Hut     string  `json:"hut,omitempty"`
	Route   string  `json:"route,omitempty"`
	Entries []Entry `json:"entries"`
}

// Meta is the plan header without entries.
type Meta struct {
	Date  string `json:"date"`
	Hut   string `json:"hut"`
	Route string `json:"route"`
}

// SortEntries returns the entries in display order. When every entry
// carries an order number that is canonical; otherwise entries fall back
// to lexicographic time order, which is only chronological within a
// single day.
func SortEntries(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	allOrdered := true
	for _, e := range sorted {
		if e.Order == nil {
			allOrdered = false
			break
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if allOrdered {
			return *sorted[i].Order < *sorted[j].Order
		}
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}
