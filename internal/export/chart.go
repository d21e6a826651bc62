package export

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"patrimonio/internal/views"
)

// ErrNoChartData means every state bucket is zero, so there is nothing to
// draw.
var ErrNoChartData = errors.New("no quantities to chart")

var stateColors = map[string]drawing.Color{
	"Novo":     {R: 34, G: 197, B: 94, A: 255},
	"Bom":      {R: 59, G: 130, B: 246, A: 255},
	"Regular":  {R: 251, G: 191, B: 36, A: 255},
	"Avariado": {R: 239, G: 68, B: 68, A: 255},
}

// WriteSummaryChartPNG renders the state-distribution donut as a PNG.
func WriteSummaryChartPNG(w io.Writer, summary views.Summary) error {
	buckets := []struct {
		label string
		value int
	}{
		{"Novo", summary.New},
		{"Bom", summary.Good},
		{"Regular", summary.Regular},
		{"Avariado", summary.Damaged},
	}

	var slices []chart.Value
	for _, bucket := range buckets {
		if bucket.value <= 0 {
			continue
		}
		slices = append(slices, chart.Value{
			Label: bucket.label,
			Value: float64(bucket.value),
			Style: chart.Style{FillColor: stateColors[bucket.label]},
		})
	}
	if len(slices) == 0 {
		return ErrNoChartData
	}

	donut := chart.DonutChart{
		Title:  "Distribuição por Estado de Conservação",
		Width:  640,
		Height: 480,
		Values: slices,
	}
	return donut.Render(chart.PNG, w)
}
