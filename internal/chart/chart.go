// internal/chart/chart.go
package chart

import (
	"strconv"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"conserv-core/conservation"
)

const defaultHeight = 12

var (
	conservedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	mutatedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	neutralStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// Render draws per-position conservation rates as a terminal bar chart, one
// bar per column with a fixed 0..1 scale. Bars at or above the conservation
// threshold and at or below the mutation threshold pick up distinct colors,
// standing in for the two threshold reference lines of a plotted chart.
func Render(rates []conservation.PositionRate, conservationThr, mutationThr float64, width int) string {
	if len(rates) == 0 {
		return ""
	}
	if width <= 0 {
		width = 2 * len(rates)
	}

	bc := barchart.New(width, defaultHeight, barchart.WithMaxValue(1.0))
	for _, pr := range rates {
		sty := neutralStyle
		switch {
		case pr.Rate >= conservationThr:
			sty = conservedStyle
		case pr.Rate <= mutationThr:
			sty = mutatedStyle
		}
		bc.Push(barchart.BarData{
			Label: strconv.Itoa(pr.Position),
			Values: []barchart.BarValue{
				{Name: "rate", Value: pr.Rate, Style: sty},
			},
		})
	}
	bc.Draw()
	return bc.View() + "\n"
}
