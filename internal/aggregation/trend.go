package aggregation

import (
	"github.com/cinar/indicator"
)

// Trend directions
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Smoothing and momentum tuning
const (
	trendEmaPeriod    = 5
	momentumThreshold = 0.02
)

// Trend summarizes the recent direction of the magnetization series:
// EMA-smoothed values plus the last step of the smoothed series as
// momentum.
type Trend struct {
	Smoothed  []float64 `json:"smoothed"`
	Momentum  float64   `json:"momentum"`
	Direction string    `json:"direction"`
}

// MagnetizationTrend derives the trend from windowed statistics. Fewer
// than two defined points yields a stable trend with zero momentum.
func MagnetizationTrend(stats Series) *Trend {
	if len(stats) < 2 {
		return &Trend{Direction: TrendStable}
	}

	values := make([]float64, len(stats))
	for i, p := range stats {
		values[i] = p.Magnetization
	}

	period := trendEmaPeriod
	if period > len(values) {
		period = len(values)
	}

	smoothed := indicator.Ema(period, values)
	momentum := smoothed[len(smoothed)-1] - smoothed[len(smoothed)-2]

	direction := TrendStable
	if momentum > momentumThreshold {
		direction = TrendImproving
	} else if momentum < -momentumThreshold {
		direction = TrendDeclining
	}

	return &Trend{
		Smoothed:  smoothed,
		Momentum:  momentum,
		Direction: direction,
	}
}
