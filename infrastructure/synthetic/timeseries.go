package synthetic

import (
	"context"
	"math"

	"mhtrends-backend/application/ports"
	"mhtrends-backend/domain/dashboard"
)

// Series shape constants. Each emotion is a phase-shifted cycle plus up to
// 0.6 of noise, halved, so scores stay within [0, 0.8).
const (
	countBase      = 200.0
	countAmplitude = 40.0
	countNoise     = 60.0
	emotionNoise   = 0.6
)

// TimeSeriesGenerator fabricates a daily series for any date range
type TimeSeriesGenerator struct {
	rng ports.RandomSource
}

var _ ports.TimeSeriesProvider = (*TimeSeriesGenerator)(nil)

// NewTimeSeriesGenerator creates a generator drawing noise from rng
func NewTimeSeriesGenerator(rng ports.RandomSource) *TimeSeriesGenerator {
	return &TimeSeriesGenerator{rng: rng}
}

// FetchTimeSeries returns one point per date in the range, ascending
func (g *TimeSeriesGenerator) FetchTimeSeries(ctx context.Context, req ports.DashboardRequest) ([]dashboard.TimeSeriesPoint, error) {
	days := req.Range.Days()
	if days <= 0 {
		return []dashboard.TimeSeriesPoint{}, nil
	}

	points := make([]dashboard.TimeSeriesPoint, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		points = append(points, g.point(req.Range, i))
	}
	return points, nil
}

func (g *TimeSeriesGenerator) point(r dashboard.DateRange, i int) dashboard.TimeSeriesPoint {
	x := float64(i)
	return dashboard.TimeSeriesPoint{
		Date:    r.DateAt(i).Format(dashboard.DateLayout),
		Count:   int(math.Round(countBase + countAmplitude*math.Sin(x/6) + g.rng.Float64()*countNoise)),
		Anxiety: g.emotion(math.Sin(x/7 + 0.5)),
		Sadness: g.emotion(math.Cos(x / 8)),
		Joy:     g.emotion(math.Cos(x/5 + 1)),
	}
}

func (g *TimeSeriesGenerator) emotion(cycle float64) float64 {
	return math.Max(0, (cycle+g.rng.Float64()*emotionNoise)/2)
}
