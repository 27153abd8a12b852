package aggregation

import (
	"testing"
	"time"
)

func makeStats(mags []float64) Series {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	stats := make(Series, len(mags))
	for i, m := range mags {
		stats[i] = Point{
			Timestamp:     start.Add(time.Duration(i) * time.Hour),
			Magnetization: m,
		}
	}
	return stats
}

func TestMagnetizationTrend(t *testing.T) {
	tests := []struct {
		name     string
		mags     []float64
		expected string
	}{
		{
			name:     "rising magnetization",
			mags:     []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7},
			expected: TrendImproving,
		},
		{
			name:     "falling magnetization",
			mags:     []float64{0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1, 0.0},
			expected: TrendDeclining,
		},
		{
			name:     "flat magnetization",
			mags:     []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.2},
			expected: TrendStable,
		},
		{
			name:     "single point",
			mags:     []float64{0.5},
			expected: TrendStable,
		},
		{
			name:     "empty",
			mags:     nil,
			expected: TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := MagnetizationTrend(makeStats(tt.mags))

			if trend.Direction != tt.expected {
				t.Errorf("Expected %s, got %s (momentum %.4f)", tt.expected, trend.Direction, trend.Momentum)
			}
		})
	}
}

func TestMagnetizationTrend_Momentum(t *testing.T) {
	rising := MagnetizationTrend(makeStats([]float64{-0.5, -0.3, -0.1, 0.1, 0.3, 0.5}))
	if rising.Momentum <= 0 {
		t.Errorf("Rising series should have positive momentum, got %.4f", rising.Momentum)
	}

	falling := MagnetizationTrend(makeStats([]float64{0.5, 0.3, 0.1, -0.1, -0.3, -0.5}))
	if falling.Momentum >= 0 {
		t.Errorf("Falling series should have negative momentum, got %.4f", falling.Momentum)
	}
}
