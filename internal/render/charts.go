// Package render turns report views into artifacts: PNG charts, export
// documents and console tables.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/GregMSThompson/expense-dashboard/internal/dto"
	"github.com/GregMSThompson/expense-dashboard/internal/errs"
)

const trendLineColor = "727cf5"

type ChartGenerator struct {
	Width    int
	Height   int
	Currency string
}

func NewChartGenerator(currency string) *ChartGenerator {
	if currency == "" {
		currency = "$"
	}
	return &ChartGenerator{Width: 800, Height: 500, Currency: currency}
}

// CategoryDonut draws the category breakdown. Categories with no positive
// spend are skipped; nothing left to draw is a validation error.
func (g *ChartGenerator) CategoryDonut(items []dto.CategoryBreakdown) ([]byte, error) {
	values := make([]chart.Value, 0, len(items))
	for _, item := range items {
		if item.Amount <= 0 {
			continue
		}
		fill := hexColor(item.Color)
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s%.2f (%.1f%%)", item.Name, g.Currency, item.Amount, item.Percentage),
			Value: item.Amount,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: chart.ColorWhite,
				FontSize:    10,
				FontColor:   chart.ColorBlack,
			},
		})
	}
	if len(values) == 0 {
		return nil, errs.NewValidationError("no category spending to chart")
	}

	donut := chart.DonutChart{
		Title:  "Spending by Category",
		Width:  g.Width,
		Height: g.Height,
		Values: values,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := donut.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// MonthlyTrend draws one point per month. go-chart derives the x range from
// the ticks, so unlabeled ticks pin both edges; a single month is drawn as a
// short flat segment.
func (g *ChartGenerator) MonthlyTrend(points []dto.MonthlyPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, errs.NewValidationError("no monthly spending to chart")
	}

	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	lastX := float64(len(points)) - 0.5
	ticks := []chart.Tick{{Value: -0.5}}
	maxY := 0.0
	for i, p := range points {
		xs = append(xs, float64(i))
		ys = append(ys, p.Amount)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Label})
		maxY = max(maxY, p.Amount)
	}
	ticks = append(ticks, chart.Tick{Value: lastX})
	if len(points) == 1 {
		xs = []float64{-0.25, 0.25}
		ys = []float64{points[0].Amount, points[0].Amount}
	}
	if maxY <= 0 {
		maxY = 1
	}

	line := hexColor(trendLineColor)
	graph := chart.Chart{
		Title:  "Monthly Spending",
		Width:  g.Width,
		Height: g.Height,
		Background: chart.Style{
			Padding:   chart.Box{Top: 50, Left: 20, Right: 30, Bottom: 20},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: -0.5, Max: lastX},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%s%.0f", g.Currency, f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Spending",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: line,
					StrokeWidth: 3,
					FillColor:   line.WithAlpha(40),
					DotColor:    line,
					DotWidth:    4,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func hexColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return drawing.ColorFromHex("6c757d")
	}
	return drawing.ColorFromHex(hex)
}
