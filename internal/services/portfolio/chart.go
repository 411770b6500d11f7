package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/StGrozdanov/finance-web/internal/models"
)

// RenderHistoryChart renders the value history as a PNG line chart.
func (s *Service) RenderHistoryChart(ctx context.Context, portfolioID string, timeframe models.TimeFrame, includeCash bool) ([]byte, error) {
	points, err := s.ValueHistory(ctx, portfolioID, timeframe, includeCash)
	if err != nil {
		return nil, err
	}
	return renderValueChart(points, timeframe)
}

// renderValueChart renders a PNG line chart from value points.
// Single series: portfolio value (blue solid). Returns raw PNG bytes.
func renderValueChart(points []models.ValuePoint, timeframe models.TimeFrame) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Date
		yValues[i] = p.Value
	}

	valueSeries := chart.TimeSeries{
		Name: "Portfolio Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Portfolio Value (%s)", timeframe),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format(timeTickFormat(timeframe))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{valueSeries},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// timeTickFormat picks an axis label format matching the series spacing.
func timeTickFormat(tf models.TimeFrame) string {
	switch tf {
	case models.TimeFrame1H, models.TimeFrame1D:
		return "15:04"
	case models.TimeFrame1W, models.TimeFrame1M:
		return "Jan 2"
	default:
		return "Jan 06"
	}
}
