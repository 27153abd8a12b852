package extractor

import (
	"fmt"
	"strings"
)

// Backend selection modes
const (
	ModeLexicon = "lexicon"
	ModePattern = "pattern"
	ModeHybrid  = "hybrid"
)

// Signal is one extracted measurement: spin is valence in [-1, 1],
// noise is subjectivity in [0, 1].
type Signal struct {
	Spin  float64 `json:"spin"`
	Noise float64 `json:"noise"`
}

// Backend turns raw text into a signal. Implementations never fail and
// never perform I/O; empty or unanalyzable text yields the zero signal.
// Backends are initialized once and safe for concurrent reads afterwards.
type Backend interface {
	// Name returns backend name for logging
	Name() string

	// Extract analyzes text and returns its signal
	Extract(text string) Signal
}

// New creates a backend for the given mode. Hybrid takes spin from the
// lexicon backend and noise from the pattern backend's subjectivity,
// which keeps sensitivity to weak informal signals while still surfacing
// a distinct noise estimate.
func New(mode string) (Backend, error) {
	switch mode {
	case ModeLexicon:
		return NewLexiconBackend(), nil
	case ModePattern:
		return NewPatternBackend(), nil
	case ModeHybrid, "":
		return NewHybridBackend(), nil
	default:
		return nil, fmt.Errorf("unknown extractor mode: %q", mode)
	}
}

// HybridBackend combines both strategies: lexicon compound for spin,
// pattern subjectivity for noise.
type HybridBackend struct {
	lexicon *LexiconBackend
	pattern *PatternBackend
}

// NewHybridBackend creates the combined backend
func NewHybridBackend() *HybridBackend {
	return &HybridBackend{
		lexicon: NewLexiconBackend(),
		pattern: NewPatternBackend(),
	}
}

func (h *HybridBackend) Name() string {
	return ModeHybrid
}

func (h *HybridBackend) Extract(text string) Signal {
	if text == "" {
		return Signal{}
	}

	return Signal{
		Spin:  h.lexicon.Extract(text).Spin,
		Noise: h.pattern.Extract(text).Noise,
	}
}

// tokenize lowercases and splits text, stripping surrounding punctuation
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:()[]\"'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
