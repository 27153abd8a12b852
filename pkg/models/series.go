package models

import "sort"

// SignalSeries is an ordered sequence of sentiment records, ascending by
// timestamp. Derivations always produce a new series; the input is never
// mutated in place.
type SignalSeries []SentimentRecord

// Sorted returns a copy of the series sorted ascending by timestamp.
// The sort is stable so records sharing a timestamp keep arrival order.
func (s SignalSeries) Sorted() SignalSeries {
	out := make(SignalSeries, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Sanitize returns a copy with malformed records removed and the count
// of excluded records for diagnostics.
func (s SignalSeries) Sanitize() (SignalSeries, int) {
	out := make(SignalSeries, 0, len(s))
	excluded := 0
	for _, rec := range s {
		if !rec.Valid() {
			excluded++
			continue
		}
		out = append(out, rec)
	}
	return out, excluded
}

// BySource splits the series into per-source sub-series. Relative order
// within each sub-series is preserved.
func (s SignalSeries) BySource() map[string]SignalSeries {
	out := make(map[string]SignalSeries)
	for _, rec := range s {
		out[rec.Source] = append(out[rec.Source], rec)
	}
	return out
}

// Spins extracts the spin values in series order.
func (s SignalSeries) Spins() []float64 {
	out := make([]float64, len(s))
	for i, rec := range s {
		out[i] = rec.Spin
	}
	return out
}
