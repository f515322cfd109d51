// core/stats/hypergeom.go
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// PValue returns the upper-tail hypergeometric probability
// P(X >= numSuccesses) for X drawn as numFailures draws from a population of
// numSites containing numSuccesses marked items. The success count doubles
// as the number of marked items, mirroring the survival-function call
// sf(numSuccesses-1, numSites, numSuccesses, numFailures) this test was
// built around; do not "fix" the parameterization without re-deriving the
// intended semantics.
func PValue(numSites, numSuccesses, numFailures int) float64 {
	return SurvivalAtLeast(numSuccesses, numSites, numSuccesses, numFailures)
}

// SurvivalAtLeast returns P(X >= k) under Hypergeometric(population, marked,
// draws). marked and draws are clamped into [0, population], so degenerate
// inputs yield a defined probability instead of an error: 1 at or below the
// support minimum, 0 above the support maximum.
func SurvivalAtLeast(k, population, marked, draws int) float64 {
	if population < 0 {
		population = 0
	}
	if marked < 0 {
		marked = 0
	} else if marked > population {
		marked = population
	}
	if draws < 0 {
		draws = 0
	} else if draws > population {
		draws = population
	}

	lo := draws + marked - population
	if lo < 0 {
		lo = 0
	}
	hi := draws
	if marked < hi {
		hi = marked
	}
	if k <= lo {
		return 1
	}
	if k > hi {
		return 0
	}

	// Sum the PMF over [k, hi] in log space to stay stable for wide
	// alignments.
	logDenom := combin.LogGeneralizedBinomial(float64(population), float64(draws))
	p := 0.0
	for x := k; x <= hi; x++ {
		logNum := combin.LogGeneralizedBinomial(float64(marked), float64(x)) +
			combin.LogGeneralizedBinomial(float64(population-marked), float64(draws-x))
		p += math.Exp(logNum - logDenom)
	}
	if p > 1 {
		p = 1
	}
	return p
}
