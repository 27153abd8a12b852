package aggregation

import (
	"fmt"
	"time"

	"github.com/selivandex/sentiment-compass/pkg/models"
)

// Default window heuristic: aim for roughly ten observable windows
// across the series regardless of sample count, with a floor for short
// series. A deliberate heuristic, not a statistically optimal choice.
const (
	minDefaultWindow = 5
	targetWindows    = 10
)

// Point is one defined trailing-window measurement. Positions before the
// first full window are omitted entirely, never emitted as zero.
type Point struct {
	Timestamp      time.Time `json:"timestamp"`
	Magnetization  float64   `json:"magnetization"`
	Susceptibility float64   `json:"susceptibility"`
}

// Series is the windowed statistics aligned to the tail of the input
// series: Series[i] covers input positions [i, i+window-1].
type Series []Point

// DefaultWindow derives a window size from the series length
func DefaultWindow(n int) int {
	w := n / targetWindows
	if w < minDefaultWindow {
		w = minDefaultWindow
	}
	return w
}

// Aggregate computes trailing-window magnetization (mean of spin) and
// susceptibility (sample variance of spin) over the input series. The
// input must already be sorted ascending by timestamp. Pure function:
// identical inputs always yield identical output.
func Aggregate(series models.SignalSeries, window int) (Series, error) {
	if window < 1 {
		return nil, fmt.Errorf("window size must be >= 1, got %d", window)
	}

	if len(series) < window {
		// Insufficient sample: not an error, just no defined positions
		return Series{}, nil
	}

	spins := series.Spins()
	out := make(Series, 0, len(series)-window+1)

	for end := window - 1; end < len(series); end++ {
		w := spins[end-window+1 : end+1]
		mean := meanOf(w)

		out = append(out, Point{
			Timestamp:      series[end].Timestamp,
			Magnetization:  mean,
			Susceptibility: sampleVariance(w, mean),
		})
	}

	return out, nil
}

// AggregateBySource computes one independent statistics series per
// distinct source tag, each over that source's own sub-sequence only.
// Sources are never mixed within a window even when their timestamps
// interleave.
func AggregateBySource(series models.SignalSeries, window int) (map[string]Series, error) {
	if window < 1 {
		return nil, fmt.Errorf("window size must be >= 1, got %d", window)
	}

	grouped := series.BySource()
	out := make(map[string]Series, len(grouped))

	for source, sub := range grouped {
		stats, err := Aggregate(sub, window)
		if err != nil {
			return nil, err
		}
		out[source] = stats
	}

	return out, nil
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleVariance is the unbiased (n-1 denominator) estimator, matching
// the original analysis. A single-element window has zero dispersion.
func sampleVariance(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0.0
	}

	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values)-1)
}
