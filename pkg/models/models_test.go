package models

import (
	"math"
	"testing"
	"time"
)

func TestSentimentRecord_Valid(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		record SentimentRecord
		valid  bool
	}{
		{
			name:   "complete record",
			record: SentimentRecord{Timestamp: now, Spin: 0.5, Noise: 0.3, Source: SourceReddit},
			valid:  true,
		},
		{
			name:   "boundary values",
			record: SentimentRecord{Timestamp: now, Spin: -1.0, Noise: 1.0},
			valid:  true,
		},
		{
			name:   "neutral empty text",
			record: SentimentRecord{Timestamp: now, Spin: 0, Noise: 0},
			valid:  true,
		},
		{
			name:   "missing timestamp",
			record: SentimentRecord{Spin: 0.5, Noise: 0.3},
			valid:  false,
		},
		{
			name:   "spin out of range",
			record: SentimentRecord{Timestamp: now, Spin: 1.5},
			valid:  false,
		},
		{
			name:   "noise out of range",
			record: SentimentRecord{Timestamp: now, Noise: -0.1},
			valid:  false,
		},
		{
			name:   "NaN spin",
			record: SentimentRecord{Timestamp: now, Spin: math.NaN()},
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, expected %v", got, tt.valid)
			}
		})
	}
}

func TestSignalSeries_Sorted(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	series := SignalSeries{
		{Timestamp: base.Add(2 * time.Hour), Spin: 0.3},
		{Timestamp: base, Spin: 0.1},
		{Timestamp: base.Add(time.Hour), Spin: 0.2},
	}

	sorted := series.Sorted()

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Timestamp.Before(sorted[i-1].Timestamp) {
			t.Fatal("Sorted() must order ascending by timestamp")
		}
	}

	// Original untouched
	if !series[0].Timestamp.Equal(base.Add(2 * time.Hour)) {
		t.Error("Sorted() must not mutate the receiver")
	}
}

func TestSignalSeries_Sanitize(t *testing.T) {
	now := time.Now().UTC()
	series := SignalSeries{
		{Timestamp: now, Spin: 0.5},
		{Spin: 0.5},                 // missing timestamp
		{Timestamp: now, Spin: 3.0}, // out of range
		{Timestamp: now, Spin: 0.1, Noise: 0.2},
	}

	clean, excluded := series.Sanitize()

	if len(clean) != 2 {
		t.Errorf("Expected 2 clean records, got %d", len(clean))
	}
	if excluded != 2 {
		t.Errorf("Expected 2 excluded records, got %d", excluded)
	}
}

func TestSignalSeries_BySource(t *testing.T) {
	now := time.Now().UTC()
	series := SignalSeries{
		{Timestamp: now, Source: SourceReddit, Spin: 0.1},
		{Timestamp: now, Source: SourceNewsAPI, Spin: 0.2},
		{Timestamp: now, Source: SourceReddit, Spin: 0.3},
	}

	grouped := series.BySource()

	if len(grouped) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(grouped))
	}
	if len(grouped[SourceReddit]) != 2 || len(grouped[SourceNewsAPI]) != 1 {
		t.Error("Records grouped under wrong source")
	}
	if grouped[SourceReddit][0].Spin != 0.1 || grouped[SourceReddit][1].Spin != 0.3 {
		t.Error("BySource must preserve relative order")
	}
}
