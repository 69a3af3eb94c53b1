// Package render draws dashboard figures as PNG images.
package render

import (
	"errors"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"povdash/internal/models"
)

// ErrEmptyFigure is returned for figures without any bar to draw.
var ErrEmptyFigure = errors.New("render: figure has no data")

const (
	minWidth = 1024
	height   = 512
	barWidth = 30
	barSlot  = 48
)

// PNG draws the first trace of fig as a bar chart. Horizontal traces are
// drawn upright; the PNG is a static fallback, not a replica.
func PNG(w io.Writer, fig models.Figure) error {
	if len(fig.Data) == 0 || len(fig.Data[0].Values) == 0 {
		return ErrEmptyFigure
	}
	tr := fig.Data[0]

	bars := make([]chart.Value, len(tr.Values))
	maxValue := 0.0
	for i, v := range tr.Values {
		label := ""
		if i < len(tr.Categories) {
			label = tr.Categories[i]
		}
		bars[i] = chart.Value{Label: label, Value: v}
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	width := len(bars)*barSlot + 200
	if width < minWidth {
		width = minWidth
	}

	bc := chart.BarChart{
		Title:      fig.Layout.Title.Text,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}
