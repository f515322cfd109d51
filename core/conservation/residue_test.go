package conservation

import "testing"

func TestResidueAtOutOfRange(t *testing.T) {
	set := mkSet([2]string{"A", "MKV"}, [2]string{"B", "MKV"})
	for _, pos := range []int{0, -1, 4} {
		if got := ResidueAt(set, pos, ""); got != NotAvailable {
			t.Errorf("position %d: got %q, want %q", pos, got, NotAvailable)
		}
	}
}

func TestResidueAtConsensusExcludesGaps(t *testing.T) {
	set := mkSet([2]string{"A", "M-V"}, [2]string{"B", "M-V"}, [2]string{"C", "MKL"})
	if got := ResidueAt(set, 2, ""); got != "K" {
		t.Errorf("gap-majority column: got %q, want K", got)
	}
}

func TestResidueAtAllGapColumn(t *testing.T) {
	set := mkSet([2]string{"A", "M-V"}, [2]string{"B", "M-V"})
	if got := ResidueAt(set, 2, ""); got != NotAvailable {
		t.Errorf("all-gap column: got %q, want %q", got, NotAvailable)
	}
}

func TestResidueAtReference(t *testing.T) {
	set := mkSet([2]string{"A", "MKV"}, [2]string{"B", "MKL"})
	if got := ResidueAt(set, 3, "B"); got != "L" {
		t.Errorf("reference residue: got %q, want L", got)
	}
	// Unmatched reference falls back to the consensus.
	if got := ResidueAt(set, 1, "nope"); got != "M" {
		t.Errorf("fallback consensus: got %q, want M", got)
	}
}

func TestResidueAtReferenceTooShort(t *testing.T) {
	// Ragged input: the reference record does not reach the position.
	set := mkSet([2]string{"A", "MKVL"}, [2]string{"B", "MK"})
	if got := ResidueAt(set, 3, "B"); got != NotAvailable {
		t.Errorf("short reference: got %q, want %q", got, NotAvailable)
	}
}
