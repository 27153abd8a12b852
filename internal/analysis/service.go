package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selivandex/sentiment-compass/internal/adapters/feed"
	"github.com/selivandex/sentiment-compass/internal/aggregation"
	"github.com/selivandex/sentiment-compass/internal/extractor"
	"github.com/selivandex/sentiment-compass/internal/phase"
	"github.com/selivandex/sentiment-compass/pkg/logger"
	"github.com/selivandex/sentiment-compass/pkg/models"
)

const defaultFetchTimeout = 15 * time.Second

// Request describes one analysis invocation
type Request struct {
	Topic         string
	WindowSize    int // 0 derives max(5, len/10)
	FetchLimit    int // 0 uses the adapter default
	GroupBySource bool
}

// Result carries everything the display layer needs: the full series
// for point plotting, the aligned statistics series, the diagnosis
// snapshot, and per-source diagnostics. Owned exclusively by the
// invocation that created it.
type Result struct {
	ID            string                        `json:"id"`
	Topic         string                        `json:"topic"`
	WindowSize    int                           `json:"window_size"`
	Series        models.SignalSeries           `json:"series"`
	Stats         aggregation.Series            `json:"stats"`
	StatsBySource map[string]aggregation.Series `json:"stats_by_source,omitempty"`
	Trend         *aggregation.Trend            `json:"trend,omitempty"`
	Diagnosis     *phase.Diagnosis              `json:"diagnosis,omitempty"`
	SourceErrors  map[string]string             `json:"source_errors,omitempty"`
	Excluded      int                           `json:"excluded_records"`
	GeneratedAt   time.Time                     `json:"generated_at"`
}

// TextReport is the single-text analysis result
type TextReport struct {
	Text     string         `json:"text"`
	Spin     float64        `json:"spin"`
	Noise    float64        `json:"noise"`
	Polarity phase.Polarity `json:"polarity"`
}

// Service runs the fetch -> extract -> aggregate -> classify pipeline.
// It holds only read-only collaborators, so one Service is safe for
// concurrent invocations; every invocation builds its own series.
type Service struct {
	adapters     []feed.Adapter
	backend      extractor.Backend
	thresholds   phase.Thresholds
	fetchTimeout time.Duration
}

// NewService creates the analysis service. A zero fetchTimeout falls
// back to the default bound.
func NewService(adapters []feed.Adapter, backend extractor.Backend, thresholds phase.Thresholds, fetchTimeout time.Duration) *Service {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Service{
		adapters:     adapters,
		backend:      backend,
		thresholds:   thresholds,
		fetchTimeout: fetchTimeout,
	}
}

// RunAnalysis executes one complete analysis. Adapter failures degrade
// to fewer records plus a diagnostic entry; the only hard error is an
// invalid request.
func (s *Service) RunAnalysis(ctx context.Context, req Request) (*Result, error) {
	if req.WindowSize < 0 {
		return nil, fmt.Errorf("window size must be >= 1 or 0 for the default, got %d", req.WindowSize)
	}

	series, sourceErrors := s.fetchAll(ctx, req.Topic, req.FetchLimit)

	series, excluded := series.Sanitize()
	series = series.Sorted()

	if excluded > 0 {
		logger.Warn("excluded malformed records",
			zap.Int("count", excluded),
		)
	}

	window := req.WindowSize
	if window == 0 {
		window = aggregation.DefaultWindow(len(series))
	}

	stats, err := aggregation.Aggregate(series, window)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:           uuid.NewString(),
		Topic:        req.Topic,
		WindowSize:   window,
		Series:       series,
		Stats:        stats,
		SourceErrors: sourceErrors,
		Excluded:     excluded,
		GeneratedAt:  time.Now().UTC(),
	}

	if req.GroupBySource {
		bySource, err := aggregation.AggregateBySource(series, window)
		if err != nil {
			return nil, err
		}
		result.StatsBySource = bySource
	}

	if len(stats) > 0 {
		latest := stats[len(stats)-1]
		diagnosis := phase.Classify(latest.Magnetization, latest.Susceptibility, s.thresholds)
		result.Diagnosis = &diagnosis
		result.Trend = aggregation.MagnetizationTrend(stats)
	}

	logger.Info("analysis complete",
		zap.String("id", result.ID),
		zap.String("topic", req.Topic),
		zap.Int("records", len(series)),
		zap.Int("window", window),
		zap.Int("defined_points", len(stats)),
		zap.Int("source_errors", len(sourceErrors)),
	)

	return result, nil
}

// AnalyzeText runs single-text analysis against the shared backend
func (s *Service) AnalyzeText(text string) TextReport {
	sig := s.backend.Extract(text)
	return TextReport{
		Text:     text,
		Spin:     sig.Spin,
		Noise:    sig.Noise,
		Polarity: phase.ClassifySpin(sig.Spin),
	}
}

// fetchAll queries every enabled adapter in parallel and merges their
// records. Each failure becomes one human-readable diagnostic keyed by
// source name; the analysis proceeds with whatever sources succeeded.
func (s *Service) fetchAll(ctx context.Context, topic string, limit int) (models.SignalSeries, map[string]string) {
	type fetchResult struct {
		name    string
		records models.SignalSeries
		err     error
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	results := make(chan fetchResult, len(s.adapters))
	enabled := 0

	for _, adapter := range s.adapters {
		if !adapter.Enabled() {
			continue
		}
		enabled++

		go func(a feed.Adapter) {
			records, err := a.Fetch(fetchCtx, topic, limit)
			results <- fetchResult{name: a.Name(), records: records, err: err}
		}(adapter)
	}

	merged := make(models.SignalSeries, 0)
	sourceErrors := make(map[string]string)

	for i := 0; i < enabled; i++ {
		res := <-results
		if res.err != nil {
			logger.Warn("source fetch failed",
				zap.String("source", res.name),
				zap.Error(res.err),
			)
			sourceErrors[res.name] = res.err.Error()
			continue
		}
		merged = append(merged, res.records...)
	}

	return merged, sourceErrors
}
