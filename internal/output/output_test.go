package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"conserv-core/analysis"
)

func sampleResult() analysis.Result {
	return analysis.Result{
		OverallRate: 0.8889,
		Conserved: []analysis.ClassifiedPosition{
			{Position: 1, Rate: 1.0, Residue: "M"},
			{Position: 2, Rate: 1.0, Residue: "K"},
		},
		Mutated:         []analysis.ClassifiedPosition{},
		PValueConserved: 0,
		PValueMutated:   1,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("text", &buf, sampleResult(), Options{Header: true}); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# conserved positions",
		"position\tresidue\trate",
		"1\tM\t1.0000",
		"2\tK\t1.0000",
		"# highly mutated positions",
		"overall conservation rate: 0.8889",
		"(p-value: 0.0000)",
		"(p-value: 1.0000)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("text", &buf, sampleResult(), Options{Header: false}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(buf.String(), "position\tresidue\trate") {
		t.Errorf("--no-header output still contains header:\n%s", buf.String())
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("json", &buf, sampleResult(), Options{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got analysis.Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.OverallRate != 0.8889 || len(got.Conserved) != 2 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("tsv", &buf, sampleResult(), Options{Header: true}); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "class\tposition\tresidue\trate" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "conserved\t1\tM\t1.0000" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write("xml", &bytes.Buffer{}, sampleResult(), Options{}); err == nil {
		t.Fatalf("expected error for unregistered format")
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "json,text,tsv" {
		t.Errorf("Formats() = %q, want json,text,tsv", got)
	}
}
