package extractor

import (
	"math"
	"strings"
)

// Tuning constants for the compound score. Valences live on a roughly
// -4..+4 scale; the normalization maps the summed valence into [-1, 1].
const (
	normalizationAlpha = 15.0
	negationDampener   = -0.74
	exclamationBoost   = 0.292
	maxExclamations    = 4
	negationLookback   = 3
	boosterLookback    = 2
)

// LexiconBackend produces a single compound valence score tuned for
// short informal text. It only estimates spin; noise is always zero.
type LexiconBackend struct {
	valences map[string]float64
	boosters map[string]float64
	negators map[string]struct{}
}

// NewLexiconBackend creates the compound-valence backend
func NewLexiconBackend() *LexiconBackend {
	return &LexiconBackend{
		valences: buildValences(),
		boosters: buildBoosters(),
		negators: buildNegators(),
	}
}

func (l *LexiconBackend) Name() string {
	return ModeLexicon
}

// Extract returns the compound valence of text as spin. Empty text or
// text with no lexicon hits yields the zero signal.
func (l *LexiconBackend) Extract(text string) Signal {
	if text == "" {
		return Signal{}
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Signal{}
	}

	var sum float64
	matched := 0

	for i, token := range tokens {
		valence, ok := l.valences[token]
		if !ok {
			continue
		}
		matched++

		// Boosters directly before the word push its valence further
		// in whichever direction it already points
		for j := i - 1; j >= 0 && j >= i-boosterLookback; j-- {
			boost, ok := l.boosters[tokens[j]]
			if !ok {
				continue
			}
			if valence < 0 {
				valence -= boost
			} else {
				valence += boost
			}
		}

		// A negation within the lookback window flips and dampens
		for j := i - 1; j >= 0 && j >= i-negationLookback; j-- {
			if _, ok := l.negators[tokens[j]]; ok {
				valence *= negationDampener
				break
			}
		}

		sum += valence
	}

	if matched == 0 {
		return Signal{}
	}

	// Exclamation marks amplify whatever direction the text leans
	excl := strings.Count(text, "!")
	if excl > maxExclamations {
		excl = maxExclamations
	}
	if excl > 0 {
		emphasis := float64(excl) * exclamationBoost
		if sum < 0 {
			sum -= emphasis
		} else {
			sum += emphasis
		}
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	if compound > 1.0 {
		compound = 1.0
	} else if compound < -1.0 {
		compound = -1.0
	}

	return Signal{Spin: compound}
}

// buildValences returns word valences on a -4..+4 scale, weighted for
// market and social-media vocabulary
func buildValences() map[string]float64 {
	return map[string]float64{
		// General positive
		"good":         1.9,
		"great":        3.1,
		"excellent":    3.2,
		"amazing":      2.8,
		"awesome":      3.1,
		"love":         3.2,
		"like":         1.5,
		"win":          2.8,
		"winning":      2.4,
		"happy":        2.7,
		"hope":         1.9,
		"hopeful":      2.3,
		"strong":       2.3,
		"best":         3.2,
		"better":       1.9,
		"improve":      1.9,
		"improving":    1.9,
		"success":      2.7,
		"successful":   2.8,
		"opportunity":  2.0,
		"confident":    2.2,
		"optimistic":   2.4,
		"positive":     2.3,
		"unstoppable":  2.6,
		"breakthrough": 2.4,
		"promising":    2.1,
		"innovative":   1.9,
		"upgrade":      1.6,

		// Market positive
		"bullish":  2.9,
		"bull":     2.4,
		"rally":    2.3,
		"surge":    2.2,
		"soar":     2.3,
		"soaring":  2.3,
		"pump":     1.8,
		"moon":     2.0,
		"rocket":   1.9,
		"gain":     1.8,
		"gains":    1.8,
		"profit":   2.1,
		"profits":  2.1,
		"growth":   1.9,
		"grow":     1.6,
		"rise":     1.5,
		"rising":   1.5,
		"record":   1.4,
		"boom":     2.0,
		"adoption": 1.6,
		"approved": 1.9,
		"breakout": 1.9,

		// General negative
		"bad":        -2.5,
		"terrible":   -3.0,
		"awful":      -2.9,
		"horrible":   -2.9,
		"hate":       -2.7,
		"worried":    -1.8,
		"worry":      -1.8,
		"worse":      -2.1,
		"worst":      -3.1,
		"weak":       -1.8,
		"fail":       -2.5,
		"failed":     -2.4,
		"failure":    -2.6,
		"problem":    -1.7,
		"problems":   -1.7,
		"risk":       -1.1,
		"risky":      -1.4,
		"uncertain":  -1.4,
		"doubt":      -1.5,
		"negative":   -2.3,
		"pessimist":  -2.1,
		"scared":     -2.2,
		"afraid":     -2.2,
		"disaster":   -3.1,
		"disappoint": -2.2,

		// Market negative
		"bearish":     -2.9,
		"bear":        -2.4,
		"crash":       -3.2,
		"dump":        -2.5,
		"plunge":      -2.6,
		"plummet":     -2.7,
		"fall":        -1.7,
		"falling":     -1.7,
		"drop":        -1.7,
		"decline":     -1.8,
		"loss":        -2.1,
		"losses":      -2.1,
		"sell":        -1.2,
		"selloff":     -2.2,
		"panic":       -2.7,
		"fear":        -2.0,
		"fud":         -1.9,
		"bubble":      -1.7,
		"overvalued":  -1.8,
		"inflation":   -1.5,
		"recession":   -2.5,
		"crisis":      -2.6,
		"collapse":    -2.9,
		"fraud":       -3.0,
		"scam":        -3.0,
		"hack":        -2.8,
		"lawsuit":     -1.9,
		"ban":         -2.1,
		"crackdown":   -2.0,
		"liquidation": -2.3,
	}
}

// buildBoosters returns degree modifiers and their valence increments
func buildBoosters() map[string]float64 {
	return map[string]float64{
		"absolutely": 0.293,
		"completely": 0.293,
		"extremely":  0.293,
		"hugely":     0.293,
		"incredibly": 0.293,
		"massively":  0.293,
		"really":     0.267,
		"remarkably": 0.267,
		"so":         0.267,
		"totally":    0.267,
		"very":       0.293,
		"highly":     0.267,
		"barely":     -0.293,
		"hardly":     -0.293,
		"marginally": -0.293,
		"slightly":   -0.293,
		"somewhat":   -0.267,
	}
}

// buildNegators returns contraction-aware negation words
func buildNegators() map[string]struct{} {
	words := []string{
		"not", "no", "never", "none", "neither", "nor", "nothing",
		"isnt", "isn't", "wasnt", "wasn't", "dont", "don't",
		"doesnt", "doesn't", "didnt", "didn't", "wont", "won't",
		"cant", "can't", "cannot", "couldnt", "couldn't",
		"shouldnt", "shouldn't", "without",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
