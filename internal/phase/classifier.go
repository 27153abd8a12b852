package phase

import (
	"fmt"
	"math"
)

// Regime is the qualitative classification of the latest
// (magnetization, susceptibility) pair.
type Regime string

const (
	Disordered Regime = "disordered"
	Critical   Regime = "critical"
	Ordered    Regime = "ordered"
)

// Polarity labels a single spin measurement
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

// Classification thresholds. Susceptibility above the critical level
// signals imminent instability regardless of magnetization; absolute
// magnetization above the ordered level with susceptibility back below
// critical means the field has settled into one direction.
const (
	DefaultCriticalSusceptibility = 0.25
	DefaultOrderedMagnetization   = 0.5

	// Single-text spin thresholds
	SpinPositiveThreshold = 0.3
	SpinNegativeThreshold = -0.3
)

// Thresholds tune regime boundaries without touching classification logic
type Thresholds struct {
	CriticalSusceptibility float64
	OrderedMagnetization   float64
}

// DefaultThresholds returns the standard regime boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalSusceptibility: DefaultCriticalSusceptibility,
		OrderedMagnetization:   DefaultOrderedMagnetization,
	}
}

// Diagnosis is a read-only snapshot of the latest statistics pair with
// its classification and a human-readable narrative. Recomputed fresh on
// every refresh, never cached across requests.
type Diagnosis struct {
	Regime         Regime  `json:"regime"`
	Magnetization  float64 `json:"magnetization"`
	Susceptibility float64 `json:"susceptibility"`
	Narrative      string  `json:"narrative"`
}

// Classify maps a (magnetization, susceptibility) pair to a regime. Pure
// classifier: no state carries between calls.
func Classify(magnetization, susceptibility float64, t Thresholds) Diagnosis {
	var regime Regime

	switch {
	case susceptibility >= t.CriticalSusceptibility:
		regime = Critical
	case math.Abs(magnetization) >= t.OrderedMagnetization:
		regime = Ordered
	default:
		regime = Disordered
	}

	return Diagnosis{
		Regime:         regime,
		Magnetization:  magnetization,
		Susceptibility: susceptibility,
		Narrative:      narrative(regime, magnetization, susceptibility),
	}
}

// ClassifySpin labels a single spin measurement
func ClassifySpin(spin float64) Polarity {
	if spin > SpinPositiveThreshold {
		return PolarityPositive
	}
	if spin < SpinNegativeThreshold {
		return PolarityNegative
	}
	return PolarityNeutral
}

func narrative(regime Regime, m, chi float64) string {
	switch regime {
	case Critical:
		return fmt.Sprintf(
			"susceptibility spike (χ=%.4f): opinions are sharply divided and the field is fragile; "+
				"even minor external news can trigger a phase transition", chi)
	case Ordered:
		direction := "positive"
		if m < 0 {
			direction = "negative"
		}
		return fmt.Sprintf(
			"symmetry broken (M=%.4f, χ=%.4f): collective sentiment has settled into a single %s direction",
			m, chi, direction)
	default:
		return fmt.Sprintf(
			"disordered phase (M=%.4f, χ=%.4f): signal dominated by independent noise, no collective direction",
			m, chi)
	}
}
