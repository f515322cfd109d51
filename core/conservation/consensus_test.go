package conservation

import "testing"

func TestConsensusMajority(t *testing.T) {
	r, ok := Consensus([]byte("VVL"), false)
	if !ok || r != 'V' {
		t.Fatalf("consensus = %c/%v, want V", r, ok)
	}
}

func TestConsensusTieFirstEncountered(t *testing.T) {
	// A and B both occur twice; A reached the winning count first.
	r, ok := Consensus([]byte("ABAB"), false)
	if !ok || r != 'A' {
		t.Fatalf("tie consensus = %c/%v, want A", r, ok)
	}
	// B overtakes with a third occurrence.
	r, _ = Consensus([]byte("ABABB"), false)
	if r != 'B' {
		t.Fatalf("consensus = %c, want B", r)
	}
}

func TestConsensusGapHandling(t *testing.T) {
	r, ok := Consensus([]byte("--V"), false)
	if !ok || r != Gap {
		t.Fatalf("gap-inclusive consensus = %c/%v, want -", r, ok)
	}
	r, ok = Consensus([]byte("--V"), true)
	if !ok || r != 'V' {
		t.Fatalf("gap-exclusive consensus = %c/%v, want V", r, ok)
	}
	if _, ok := Consensus([]byte("---"), true); ok {
		t.Fatalf("all-gap column should have no consensus")
	}
}

func TestConsensusEmptyColumn(t *testing.T) {
	if _, ok := Consensus(nil, false); ok {
		t.Fatalf("empty column should have no consensus")
	}
}
