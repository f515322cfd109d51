// core/conservation/filter.go
package conservation

// Filter selects positions by rate, preserving ascending position order.
// wantConserved keeps rate >= threshold; otherwise rate <= threshold.
// Threshold range checks belong to the caller's boundary layer, not here.
func Filter(rates []PositionRate, threshold float64, wantConserved bool) []PositionRate {
	out := make([]PositionRate, 0, len(rates))
	for _, pr := range rates {
		if wantConserved && pr.Rate >= threshold || !wantConserved && pr.Rate <= threshold {
			out = append(out, pr)
		}
	}
	return out
}
