// core/conservation/residue.go
package conservation

import "conserv-core/alignment"

// NotAvailable is reported when no residue can be resolved for a position.
const NotAvailable = "N/A"

// ResidueAt resolves the residue to report for a 1-based alignment
// position. With a matching referenceID the reference record's residue is
// returned, provided that record reaches the position. Otherwise the column
// consensus is used, excluding gaps; an out-of-range position or an all-gap
// column yields NotAvailable.
func ResidueAt(set alignment.Set, position int, referenceID string) string {
	if position <= 0 || position > set.Length() {
		return NotAvailable
	}

	if idx := set.ReferenceIndex(referenceID); idx >= 0 {
		if len(set[idx].Seq) >= position {
			return string(set[idx].Seq[position-1])
		}
		return NotAvailable
	}

	column := make([]byte, 0, len(set))
	for _, rec := range set {
		if len(rec.Seq) >= position {
			column = append(column, rec.Seq[position-1])
		}
	}
	if r, ok := Consensus(column, true); ok {
		return string(r)
	}
	return NotAvailable
}
