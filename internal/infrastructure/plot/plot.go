// Package plot renders the lead summary series as PNG charts.
package plot

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"
	chart "github.com/wcharczuk/go-chart/v2"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/pkg/errcodes"
)

const ContentType = "image/png"

const (
	width    = 1200
	height   = 600
	barWidth = 40
)

type Kind string

const (
	KindQualification Kind = "qualification"
	KindLocation      Kind = "location"
	KindTimeline      Kind = "timeline"
	KindDate          Kind = "date"
	KindScore         Kind = "score"
	KindBudget        Kind = "budget"
)

func Kinds() []Kind {
	return []Kind{KindQualification, KindLocation, KindTimeline, KindDate, KindScore, KindBudget}
}

func (k Kind) String() string {
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	if k := Kind(s); lo.Contains(Kinds(), k) {
		return k, nil
	}

	return "", failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown chart %q", s),
		failure.WithCode(errcodes.InvalidChart),
		failure.WithDescription("Chart must be one of qualification, location, timeline, date, score, budget"),
	)
}

// FileName is e.g. leads_location.png.
func FileName(kind Kind) string {
	return "leads_" + kind.String() + ".png"
}

func Render(w io.Writer, kind Kind, summary lead.Summary) error {
	switch kind {
	case KindQualification:
		return renderBars(w, "Qualified Leads", categoryBars(summary.ByQualification))
	case KindLocation:
		return renderBars(w, "Leads by Location", categoryBars(summary.ByLocation))
	case KindTimeline:
		return renderBars(w, "Leads by Timeline", categoryBars(summary.ByTimeline))
	case KindDate:
		return renderDates(w, summary.ByDate)
	case KindScore:
		return renderBars(w, "Lead Score Distribution", histogramBars(summary.ScoreHistogram))
	case KindBudget:
		return renderBars(w, "Budget Distribution", histogramBars(summary.BudgetHistogram))
	default:
		_, err := ParseKind(kind.String())
		return err
	}
}

func categoryBars(counts []lead.CategoryCount) []chart.Value {
	return lo.Map(counts, func(c lead.CategoryCount, _ int) chart.Value {
		return chart.Value{Label: c.Category, Value: float64(c.Count)}
	})
}

func histogramBars(bins []lead.Bin) []chart.Value {
	return lo.Map(bins, func(b lead.Bin, _ int) chart.Value {
		return chart.Value{Label: strconv.FormatFloat(b.Low, 'f', 0, 64), Value: float64(b.Count)}
	})
}

func renderBars(w io.Writer, title string, bars []chart.Value) error {
	// Empty bar sets and zero value ranges fail to render.
	if len(bars) == 0 {
		bars = []chart.Value{{Label: "No data"}}
	}

	yMax := max(lo.MaxBy(bars, func(a, b chart.Value) bool { return a.Value > b.Value }).Value, 1)

	graph := chart.BarChart{
		Title:    title,
		Width:    width,
		Height:   height,
		BarWidth: barWidth,
		Background: chart.Style{Padding: chart.Box{
			Top:    50,
			Left:   16,
			Right:  16,
			Bottom: 0,
		}},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:  bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("graph.Render: %w", err)
	}

	return nil
}

func renderDates(w io.Writer, counts []lead.DateCount) error {
	// A time series needs two distinct points.
	if len(counts) < 2 {
		return renderBars(w, "Leads Over Time", lo.Map(counts, func(c lead.DateCount, _ int) chart.Value {
			return chart.Value{Label: c.Date.Format(entity.DateLayout), Value: float64(c.Count)}
		}))
	}

	yMax := max(lo.MaxBy(counts, func(a, b lead.DateCount) bool { return a.Count > b.Count }).Count, 1)

	graph := chart.Chart{
		Title:  "Leads Over Time",
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: float64(yMax)}},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Leads",
				XValues: lo.Map(counts, func(c lead.DateCount, _ int) time.Time {
					return c.Date
				}),
				YValues: lo.Map(counts, func(c lead.DateCount, _ int) float64 {
					return float64(c.Count)
				}),
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("graph.Render: %w", err)
	}

	return nil
}
