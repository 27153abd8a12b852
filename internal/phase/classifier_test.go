package phase

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name           string
		magnetization  float64
		susceptibility float64
		expected       Regime
	}{
		{
			name:           "quiet noise",
			magnetization:  0.02,
			susceptibility: 0.01,
			expected:       Disordered,
		},
		{
			name:           "high dispersion low direction",
			magnetization:  0.05,
			susceptibility: 0.45,
			expected:       Critical,
		},
		{
			name:           "settled direction",
			magnetization:  0.85,
			susceptibility: 0.05,
			expected:       Ordered,
		},
		{
			name:           "settled negative direction",
			magnetization:  -0.85,
			susceptibility: 0.05,
			expected:       Ordered,
		},
		{
			name:           "high dispersion overrides magnetization",
			magnetization:  0.9,
			susceptibility: 0.6,
			expected:       Critical,
		},
		{
			name:           "moderate everything",
			magnetization:  0.3,
			susceptibility: 0.1,
			expected:       Disordered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Classify(tt.magnetization, tt.susceptibility, thresholds)

			if d.Regime != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, d.Regime)
			}
			if d.Magnetization != tt.magnetization || d.Susceptibility != tt.susceptibility {
				t.Error("Diagnosis should carry the raw input values")
			}
			if d.Narrative == "" {
				t.Error("Diagnosis should carry a narrative")
			}
		})
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	tight := Thresholds{
		CriticalSusceptibility: 0.05,
		OrderedMagnetization:   0.2,
	}

	if d := Classify(0.02, 0.06, tight); d.Regime != Critical {
		t.Errorf("Tight thresholds should flag critical, got %s", d.Regime)
	}
	if d := Classify(0.3, 0.01, tight); d.Regime != Ordered {
		t.Errorf("Tight thresholds should flag ordered, got %s", d.Regime)
	}
}

func TestClassify_NarrativeMentionsDirection(t *testing.T) {
	positive := Classify(0.85, 0.05, DefaultThresholds())
	if !strings.Contains(positive.Narrative, "positive") {
		t.Errorf("Ordered narrative should name the direction: %q", positive.Narrative)
	}

	negative := Classify(-0.85, 0.05, DefaultThresholds())
	if !strings.Contains(negative.Narrative, "negative") {
		t.Errorf("Ordered narrative should name the direction: %q", negative.Narrative)
	}
}

func TestClassifySpin(t *testing.T) {
	tests := []struct {
		spin     float64
		expected Polarity
	}{
		{spin: 0.5, expected: PolarityPositive},
		{spin: -0.5, expected: PolarityNegative},
		{spin: 0.0, expected: PolarityNeutral},
		{spin: 0.3, expected: PolarityNeutral},
		{spin: -0.3, expected: PolarityNeutral},
		{spin: 1.0, expected: PolarityPositive},
		{spin: -1.0, expected: PolarityNegative},
	}

	for _, tt := range tests {
		if got := ClassifySpin(tt.spin); got != tt.expected {
			t.Errorf("ClassifySpin(%.2f) = %s, expected %s", tt.spin, got, tt.expected)
		}
	}
}
