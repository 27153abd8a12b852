package extractor

// rating holds the per-word polarity and subjectivity of a lexicon entry
type rating struct {
	Polarity     float64 // -1.0 to 1.0
	Subjectivity float64 // 0.0 to 1.0
}

// Polarity handling constants. Negation flips and halves polarity;
// intensity modifiers scale the following entry.
const (
	patternNegation   = -0.5
	intensityLookback = 2
)

// PatternBackend scores each matched word with a polarity/subjectivity
// pair and averages over the matches. Tuned for editorial prose rather
// than informal text; its subjectivity output is the noise channel.
type PatternBackend struct {
	ratings     map[string]rating
	intensities map[string]float64
	negators    map[string]struct{}
}

// NewPatternBackend creates the polarity/subjectivity backend
func NewPatternBackend() *PatternBackend {
	return &PatternBackend{
		ratings:     buildRatings(),
		intensities: buildIntensities(),
		negators:    buildNegators(),
	}
}

func (p *PatternBackend) Name() string {
	return ModePattern
}

// Extract averages polarity into spin and subjectivity into noise.
// No matches yields the zero signal.
func (p *PatternBackend) Extract(text string) Signal {
	if text == "" {
		return Signal{}
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Signal{}
	}

	var polaritySum, subjectivitySum float64
	matched := 0

	for i, token := range tokens {
		r, ok := p.ratings[token]
		if !ok {
			continue
		}
		matched++

		polarity := r.Polarity
		subjectivity := r.Subjectivity

		// Preceding intensity modifier scales both channels
		for j := i - 1; j >= 0 && j >= i-intensityLookback; j-- {
			factor, ok := p.intensities[tokens[j]]
			if !ok {
				continue
			}
			polarity *= factor
			subjectivity *= factor
		}

		for j := i - 1; j >= 0 && j >= i-intensityLookback; j-- {
			if _, ok := p.negators[tokens[j]]; ok {
				polarity *= patternNegation
				break
			}
		}

		polaritySum += clamp(polarity, -1.0, 1.0)
		subjectivitySum += clamp(subjectivity, 0.0, 1.0)
	}

	if matched == 0 {
		return Signal{}
	}

	return Signal{
		Spin:  polaritySum / float64(matched),
		Noise: subjectivitySum / float64(matched),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// buildRatings returns the polarity/subjectivity lexicon. Factual market
// vocabulary carries low subjectivity, emotive vocabulary high.
func buildRatings() map[string]rating {
	return map[string]rating{
		// Emotive positive
		"good":        {0.7, 0.6},
		"great":       {0.8, 0.75},
		"excellent":   {1.0, 1.0},
		"amazing":     {0.6, 0.9},
		"awesome":     {1.0, 1.0},
		"love":        {0.5, 0.6},
		"happy":       {0.8, 1.0},
		"best":        {1.0, 0.3},
		"better":      {0.5, 0.5},
		"wonderful":   {1.0, 1.0},
		"perfect":     {1.0, 1.0},
		"promising":   {0.4, 0.7},
		"optimistic":  {0.5, 0.8},
		"confident":   {0.5, 0.8},
		"hopeful":     {0.4, 0.8},
		"impressive":  {0.9, 0.9},
		"unstoppable": {0.5, 0.9},

		// Emotive negative
		"bad":          {-0.7, 0.67},
		"terrible":     {-1.0, 1.0},
		"awful":        {-1.0, 1.0},
		"horrible":     {-1.0, 1.0},
		"hate":         {-0.8, 0.9},
		"worried":      {-0.3, 0.8},
		"worst":        {-1.0, 0.3},
		"worse":        {-0.5, 0.5},
		"scared":       {-0.6, 0.9},
		"afraid":       {-0.6, 0.9},
		"disappointed": {-0.6, 0.8},
		"pessimistic":  {-0.5, 0.8},
		"fearful":      {-0.6, 0.9},
		"anxious":      {-0.4, 0.9},

		// Factual market language, low subjectivity
		"rise":      {0.3, 0.2},
		"rising":    {0.3, 0.2},
		"gain":      {0.3, 0.2},
		"growth":    {0.3, 0.2},
		"record":    {0.2, 0.2},
		"approved":  {0.3, 0.1},
		"expansion": {0.2, 0.2},
		"rally":     {0.3, 0.3},
		"surge":     {0.3, 0.3},
		"fall":      {-0.3, 0.2},
		"falling":   {-0.3, 0.2},
		"drop":      {-0.3, 0.2},
		"decline":   {-0.3, 0.2},
		"loss":      {-0.3, 0.2},
		"crash":     {-0.6, 0.4},
		"collapse":  {-0.6, 0.4},
		"recession": {-0.4, 0.3},
		"inflation": {-0.3, 0.3},
		"lawsuit":   {-0.3, 0.2},
		"fraud":     {-0.7, 0.4},
		"stable":    {0.1, 0.1},
		"steady":    {0.1, 0.2},
		"unchanged": {0.0, 0.1},
		"volatile":  {-0.2, 0.4},
		"uncertain": {-0.3, 0.6},
		"risky":     {-0.4, 0.6},
	}
}

// buildIntensities returns degree modifiers and their scale factors
func buildIntensities() map[string]float64 {
	return map[string]float64{
		"very":       1.3,
		"really":     1.3,
		"extremely":  1.5,
		"incredibly": 1.5,
		"highly":     1.3,
		"totally":    1.3,
		"quite":      1.1,
		"rather":     1.1,
		"somewhat":   0.7,
		"slightly":   0.6,
		"barely":     0.5,
		"hardly":     0.5,
	}
}
