package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/selivandex/sentiment-compass/internal/adapters/config"
	"github.com/selivandex/sentiment-compass/internal/adapters/feed"
	"github.com/selivandex/sentiment-compass/internal/adapters/telegram"
	"github.com/selivandex/sentiment-compass/internal/analysis"
	"github.com/selivandex/sentiment-compass/internal/extractor"
	"github.com/selivandex/sentiment-compass/internal/phase"
	"github.com/selivandex/sentiment-compass/pkg/logger"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Parse flags (overrides for the env configuration)
	var (
		topic  = flag.String("topic", "", "Analysis topic (overrides ANALYSIS_TOPIC)")
		window = flag.Int("window", -1, "Window size, 0 derives a default (overrides ANALYSIS_WINDOW_SIZE)")
		group  = flag.Bool("group", false, "Group statistics by source")
		text   = flag.String("text", "", "Analyze a single text instead of running a topic analysis")
	)
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	// Extractor backend is initialized once and shared read-only
	backend, err := extractor.New(cfg.Analysis.Extractor)
	if err != nil {
		return err
	}

	adapters := []feed.Adapter{}
	if cfg.Sources.SyntheticEnabled {
		adapters = append(adapters, feed.NewSyntheticAdapter(0))
	}
	adapters = append(adapters,
		feed.NewNewsAPIAdapter(cfg.Sources.NewsAPIKey, cfg.Sources.NewsAPIEnabled, backend),
		feed.NewRedditAdapter(cfg.Sources.RedditClientID, cfg.Sources.RedditClientSecret, cfg.Sources.RedditEnabled, backend),
	)

	service := analysis.NewService(adapters, backend, phase.DefaultThresholds(), cfg.Analysis.FetchTimeout)

	logger.Info("Sentiment Compass starting",
		zap.String("extractor", backend.Name()),
		zap.Int("adapters", len(adapters)),
	)

	// Single-text mode
	if *text != "" {
		return emit(service.AnalyzeText(*text))
	}

	req := analysis.Request{
		Topic:         cfg.Analysis.Topic,
		WindowSize:    cfg.Analysis.WindowSize,
		FetchLimit:    cfg.Analysis.FetchLimit,
		GroupBySource: cfg.Analysis.GroupBySource || *group,
	}
	if *topic != "" {
		req.Topic = *topic
	}
	if *window >= 0 {
		req.WindowSize = *window
	}

	result, err := service.RunAnalysis(ctx, req)
	if err != nil {
		return err
	}

	if result.Diagnosis != nil && cfg.Telegram.BotToken != "" {
		notifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Error("telegram notifier unavailable", zap.Error(err))
		} else if err := notifier.SendPhaseAlert(result.Topic, *result.Diagnosis); err != nil {
			logger.Error("failed to send phase alert", zap.Error(err))
		}
	}

	return emit(result)
}

// emit writes display-shaped output to stdout
func emit(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
