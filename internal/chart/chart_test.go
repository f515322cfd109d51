package chart

import (
	"strings"
	"testing"

	"conserv-core/conservation"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, 0.8, 0.2, 0); got != "" {
		t.Errorf("empty rates should render nothing, got %q", got)
	}
}

func TestRenderProducesBars(t *testing.T) {
	rates := []conservation.PositionRate{
		{Position: 1, Rate: 1.0},
		{Position: 2, Rate: 0.1},
		{Position: 3, Rate: 0.5},
	}
	got := Render(rates, 0.8, 0.2, 30)
	if got == "" {
		t.Fatalf("expected chart output")
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("chart should end with a newline")
	}
}

func TestRenderDeterministic(t *testing.T) {
	rates := []conservation.PositionRate{{Position: 1, Rate: 0.7}, {Position: 2, Rate: 0.3}}
	if Render(rates, 0.8, 0.2, 20) != Render(rates, 0.8, 0.2, 20) {
		t.Errorf("same input should render the same chart")
	}
}
