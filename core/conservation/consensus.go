// core/conservation/consensus.go
package conservation

// Gap is the alignment gap character.
const Gap = '-'

// Consensus returns the most frequent residue in column. Ties resolve to the
// residue that reached the winning count first, which keeps the result
// stable across calls and callers. With excludeGap, Gap characters are
// ignored; ok is false when nothing remains to vote on.
func Consensus(column []byte, excludeGap bool) (residue byte, ok bool) {
	counts := make(map[byte]int, 8)
	var best byte
	most := 0
	for _, r := range column {
		if excludeGap && r == Gap {
			continue
		}
		counts[r]++
		if counts[r] > most {
			most = counts[r]
			best = r
		}
	}
	return best, most > 0
}
