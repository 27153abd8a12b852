package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/selivandex/sentiment-compass/internal/extractor"
)

// Config represents application configuration
type Config struct {
	Analysis AnalysisConfig
	Sources  SourcesConfig
	Telegram TelegramConfig
	Logging  LoggingConfig
}

// AnalysisConfig represents analysis parameters
type AnalysisConfig struct {
	Topic         string        `envconfig:"ANALYSIS_TOPIC" default:"quantum computing"`
	WindowSize    int           `envconfig:"ANALYSIS_WINDOW_SIZE" default:"0"` // 0 derives from series length
	FetchLimit    int           `envconfig:"ANALYSIS_FETCH_LIMIT" default:"100"`
	GroupBySource bool          `envconfig:"ANALYSIS_GROUP_BY_SOURCE" default:"false"`
	Extractor     string        `envconfig:"ANALYSIS_EXTRACTOR" default:"hybrid"` // lexicon, pattern, hybrid
	FetchTimeout  time.Duration `envconfig:"ANALYSIS_FETCH_TIMEOUT" default:"15s"`
}

// SourcesConfig represents source adapter configuration. Credentials are
// opaque pass-through strings handed to the adapters untouched.
type SourcesConfig struct {
	SyntheticEnabled   bool   `envconfig:"SOURCE_SYNTHETIC_ENABLED" default:"true"`
	NewsAPIEnabled     bool   `envconfig:"SOURCE_NEWSAPI_ENABLED" default:"false"`
	NewsAPIKey         string `envconfig:"SOURCE_NEWSAPI_KEY" required:"false"`
	RedditEnabled      bool   `envconfig:"SOURCE_REDDIT_ENABLED" default:"false"`
	RedditClientID     string `envconfig:"SOURCE_REDDIT_CLIENT_ID" required:"false"`
	RedditClientSecret string `envconfig:"SOURCE_REDDIT_CLIENT_SECRET" required:"false"`
}

// TelegramConfig represents the optional phase-alert notifier
type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" default:"0"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Analysis.WindowSize < 0 {
		return fmt.Errorf("analysis window size must be >= 0, got %d", c.Analysis.WindowSize)
	}

	if c.Analysis.FetchLimit < 1 {
		return fmt.Errorf("analysis fetch limit must be >= 1, got %d", c.Analysis.FetchLimit)
	}

	switch c.Analysis.Extractor {
	case extractor.ModeLexicon, extractor.ModePattern, extractor.ModeHybrid:
	default:
		return fmt.Errorf("unknown extractor mode: %q", c.Analysis.Extractor)
	}

	if c.Telegram.BotToken != "" && c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram chat ID is required when a bot token is set")
	}

	return nil
}
