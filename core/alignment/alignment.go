// core/alignment/alignment.go
package alignment

import "conserv-core/fasta"

// Set is an ordered multiple sequence alignment. Order is insertion order
// from the source; it only matters for deterministic reference lookup.
type Set []fasta.Record

// Length returns the alignment length: the first record's sequence length,
// or 0 for the empty set.
func (s Set) Length() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0].Seq)
}

// IsAligned reports whether every record's sequence length equals the first
// record's. The empty set counts as aligned.
func (s Set) IsAligned() bool {
	if len(s) == 0 {
		return true
	}
	first := len(s[0].Seq)
	for _, r := range s[1:] {
		if len(r.Seq) != first {
			return false
		}
	}
	return true
}

// ReferenceIndex returns the index of the first record whose ID equals id,
// or -1 when id is empty or matches nothing.
func (s Set) ReferenceIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range s {
		if r.ID == id {
			return i
		}
	}
	return -1
}
