package charts

import (
	"fmt"
	"io"
	"iter"
	"math"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fortuna/services/player-stats/pkg/models"
)

const (
	dateLayout = "2006-01-02"

	// echarts draws "-" as a missing data point
	missingValue = "-"

	undefinedLabel = "N/A"
)

// EChartsRenderer renders game log series as standalone HTML pages
type EChartsRenderer struct {
	width  string
	height string
}

// NewEChartsRenderer creates a renderer with the default page size
func NewEChartsRenderer() *EChartsRenderer {
	return &EChartsRenderer{
		width:  "1200px",
		height: "600px",
	}
}

// RenderScoringTrend draws points per game over time
func (r *EChartsRenderer) RenderScoringTrend(w io.Writer, series iter.Seq2[time.Time, int]) error {
	var dates []string
	var points []opts.LineData
	for d, pts := range series {
		dates = append(dates, d.Format(dateLayout))
		points = append(points, opts.LineData{Value: pts})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Scoring Trend",
			Width:     r.width,
			Height:    r.height,
		}),
		charts.WithTitleOpts(opts.Title{Title: "Scoring Trend Over Time"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Date",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Points",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)
	line.SetXAxis(dates).AddSeries("Points", points,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("rendering scoring trend: %w", err)
	}
	return nil
}

// RenderShootingBars draws season shooting averages on a 0-100 scale.
// Undefined averages render as a missing bar.
func (r *EChartsRenderer) RenderShootingBars(w io.Writer, bars []models.Bar) error {
	labels := make([]string, 0, len(bars))
	data := make([]opts.BarData, 0, len(bars))
	for _, b := range bars {
		labels = append(labels, b.Label)
		data = append(data, barData(b))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Shooting Percentages",
			Width:     r.width,
			Height:    r.height,
		}),
		charts.WithTitleOpts(opts.Title{Title: "Average Shooting Percentages"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Percentage",
			Min:  0,
			Max:  100,
		}),
	)
	bar.SetXAxis(labels).AddSeries("Average", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("rendering shooting percentages: %w", err)
	}
	return nil
}

// barData rounds the bar to match its annotation, which is drawn above it
func barData(b models.Bar) opts.BarData {
	label := &opts.Label{
		Show:      opts.Bool(true),
		Position:  "top",
		Formatter: b.Annotation,
	}
	if math.IsNaN(b.Value) || b.Annotation == "" {
		label.Formatter = undefinedLabel
	}
	if math.IsNaN(b.Value) {
		return opts.BarData{Name: b.Label, Value: missingValue, Label: label}
	}
	return opts.BarData{Name: b.Label, Value: models.RoundTenth(b.Value), Label: label}
}
