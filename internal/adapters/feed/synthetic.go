package feed

import (
	"context"
	"math/rand"
	"time"

	"github.com/selivandex/sentiment-compass/pkg/models"
)

// Regime layout of the generated series, in ticks. One tick per hour,
// ending at generation time.
const (
	syntheticTicks  = 100
	disorderedUntil = 40
	criticalUntil   = 70

	disorderedSigma   = 0.2 // phase 1: spin ~ N(0, 0.2)
	criticalAmplitude = 0.8 // phase 2: spin ~ ±0.8 + N(0, 0.1)
	criticalSigma     = 0.1
	orderedMean       = -0.9 // phase 3: spin ~ -0.9 + N(0, 0.1)
	orderedSigma      = 0.1
	criticalNoise     = 0.9
	orderedNoise      = 0.6
)

// SyntheticAdapter generates a phase-transition demonstration series:
// low-amplitude zero-mean noise, then bimodal critical fluctuation, then
// symmetry-broken single-sign noise. It takes no credentials and never
// fails.
type SyntheticAdapter struct {
	seed int64
}

// NewSyntheticAdapter creates the generator. Seed zero means seed from
// the clock; tests pass a fixed seed for reproducible runs.
func NewSyntheticAdapter(seed int64) *SyntheticAdapter {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SyntheticAdapter{seed: seed}
}

func (s *SyntheticAdapter) Name() string {
	return models.SourceSynthetic
}

func (s *SyntheticAdapter) Enabled() bool {
	return true
}

// Fetch generates the full three-regime series. Topic and limit are
// ignored; the regime boundaries are fixed constants of the generator.
// Each call builds its own generator from the stored seed, so Fetch is
// safe to call from concurrent analyses.
func (s *SyntheticAdapter) Fetch(_ context.Context, _ string, _ int) (models.SignalSeries, error) {
	rng := rand.New(rand.NewSource(s.seed))
	start := time.Now().UTC().Add(-time.Duration(syntheticTicks-1) * time.Hour)

	records := make(models.SignalSeries, 0, syntheticTicks)
	for i := 0; i < syntheticTicks; i++ {
		var spin, noise float64

		switch {
		case i < disorderedUntil:
			spin = rng.NormFloat64() * disorderedSigma
			noise = rng.Float64()

		case i < criticalUntil:
			// Opinions split into two extreme camps, zero mean overall
			sign := 1.0
			if rng.Intn(2) == 0 {
				sign = -1.0
			}
			spin = sign*criticalAmplitude + rng.NormFloat64()*criticalSigma
			noise = criticalNoise

		default:
			spin = orderedMean + rng.NormFloat64()*orderedSigma
			noise = orderedNoise
		}

		records = append(records, models.SentimentRecord{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Spin:      clampSpin(spin),
			Noise:     noise,
			Source:    models.SourceSynthetic,
		})
	}

	return records, nil
}

func clampSpin(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}
