// core/conservation/rates.go
package conservation

import (
	"math"

	"conserv-core/alignment"
)

// PositionRate is the conservation rate of one alignment column.
type PositionRate struct {
	Position int     `json:"position"` // 1-based
	Rate     float64 `json:"rate"`     // in [0,1], rounded to 4 decimals
}

// Round4 rounds to 4 decimal places, the precision carried by all reported
// rates and p-values.
func Round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}

// Calculate computes per-column and overall conservation rates for an
// aligned set. refIndex selects the record whose residues act as the
// reference per column; refIndex < 0 uses the column consensus instead
// (gaps included, same tie break as ResidueAt). Returns (0, nil) for an
// empty or zero-length alignment.
//
// The caller must hand in a column-aligned set; behavior on ragged input is
// undefined.
func Calculate(set alignment.Set, refIndex int) (overall float64, rates []PositionRate) {
	n := len(set)
	length := set.Length()
	if n == 0 || length == 0 {
		return 0, nil
	}

	rates = make([]PositionRate, 0, length)
	column := make([]byte, n)
	sum := 0.0
	for i := 0; i < length; i++ {
		for j := range set {
			column[j] = set[j].Seq[i]
		}
		var ref byte
		if refIndex >= 0 {
			ref = set[refIndex].Seq[i]
		} else {
			ref, _ = Consensus(column, false)
		}
		count := 0
		for _, r := range column {
			if r == ref {
				count++
			}
		}
		rate := Round4(float64(count) / float64(n))
		sum += rate
		rates = append(rates, PositionRate{Position: i + 1, Rate: rate})
	}
	return Round4(sum / float64(length)), rates
}
