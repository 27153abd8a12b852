package models

import (
	"math"
	"time"
)

// Source tags for record provenance
const (
	SourceSynthetic = "synthetic"
	SourceNewsAPI   = "newsapi"
	SourceReddit    = "reddit"
)

// SentimentRecord represents one analyzed unit of text
type SentimentRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Text      string    `json:"text"`
	Spin      float64   `json:"spin"`  // valence, -1.0 to 1.0
	Noise     float64   `json:"noise"` // subjectivity, 0.0 to 1.0
	Source    string    `json:"source"`
}

// Valid reports whether the record carries all required fields within range.
// Invalid records are excluded from aggregation, not fatal to the batch.
func (r SentimentRecord) Valid() bool {
	if r.Timestamp.IsZero() {
		return false
	}
	if math.IsNaN(r.Spin) || math.IsNaN(r.Noise) {
		return false
	}
	if r.Spin < -1.0 || r.Spin > 1.0 {
		return false
	}
	if r.Noise < 0.0 || r.Noise > 1.0 {
		return false
	}
	return true
}
