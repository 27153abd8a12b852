package feed

import (
	"context"

	"github.com/selivandex/sentiment-compass/internal/extractor"
	"github.com/selivandex/sentiment-compass/pkg/models"
)

// Fetch bounds shared by all adapters
const (
	defaultFetchLimit = 100
	maxFetchLimit     = 100
)

// Adapter normalizes one upstream source into sentiment records. All
// failures surface as an empty collection plus an error; adapters never
// panic and never block past their HTTP client timeout. Every produced
// record carries the adapter's own source tag and a UTC timestamp.
type Adapter interface {
	// Name returns adapter name, used as the record source tag
	Name() string

	// Enabled returns whether the adapter is configured for use
	Enabled() bool

	// Fetch collects up to limit records matching topic
	Fetch(ctx context.Context, topic string, limit int) (models.SignalSeries, error)
}

// SignalExtractor is the extraction capability adapters consume
type SignalExtractor interface {
	Extract(text string) extractor.Signal
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultFetchLimit
	}
	if limit > maxFetchLimit {
		return maxFetchLimit
	}
	return limit
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
