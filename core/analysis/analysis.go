// core/analysis/analysis.go
package analysis

import (
	"conserv-core/alignment"
	"conserv-core/conservation"
	"conserv-core/stats"
)

// ClassifiedPosition is a position that passed one of the two thresholds,
// annotated with the residue to report for it.
type ClassifiedPosition struct {
	Position int     `json:"position"`
	Rate     float64 `json:"rate"`
	Residue  string  `json:"residue"`
}

// Result is one complete analysis run. It is assembled in full before being
// returned; callers never observe a partial Result.
type Result struct {
	OverallRate     float64                     `json:"overall_rate"`
	PositionRates   []conservation.PositionRate `json:"position_rates"`
	Conserved       []ClassifiedPosition        `json:"conserved"`
	Mutated         []ClassifiedPosition        `json:"mutated"`
	PValueConserved float64                     `json:"p_value_conserved"`
	PValueMutated   float64                     `json:"p_value_mutated"`
}

// Config carries the validated analysis parameters. Threshold range checks
// happen at the CLI boundary before a Config is built.
type Config struct {
	ConservationThreshold float64
	MutationThreshold     float64
	ReferenceID           string
}

// Run computes the full analysis for an aligned set. An empty set yields the
// degenerate Result (overall 0, empty lists, p-values 1).
func Run(set alignment.Set, cfg Config) Result {
	overall, rates := conservation.Calculate(set, set.ReferenceIndex(cfg.ReferenceID))

	conserved := classify(set, conservation.Filter(rates, cfg.ConservationThreshold, true), cfg.ReferenceID)
	mutated := classify(set, conservation.Filter(rates, cfg.MutationThreshold, false), cfg.ReferenceID)

	numSites := len(rates)
	return Result{
		OverallRate:     overall,
		PositionRates:   rates,
		Conserved:       conserved,
		Mutated:         mutated,
		PValueConserved: stats.PValue(numSites, len(conserved), len(mutated)),
		PValueMutated:   stats.PValue(numSites, len(mutated), len(conserved)),
	}
}

func classify(set alignment.Set, rates []conservation.PositionRate, referenceID string) []ClassifiedPosition {
	out := make([]ClassifiedPosition, 0, len(rates))
	for _, pr := range rates {
		out = append(out, ClassifiedPosition{
			Position: pr.Position,
			Rate:     pr.Rate,
			Residue:  conservation.ResidueAt(set, pr.Position, referenceID),
		})
	}
	return out
}
