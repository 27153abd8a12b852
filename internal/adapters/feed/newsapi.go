package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/sentiment-compass/pkg/logger"
	"github.com/selivandex/sentiment-compass/pkg/models"
)

const newsAPIBaseURL = "https://newsapi.org/v2/everything"

// NewsAPIAdapter fetches broadcast-style keyworded news from NewsAPI.
// Each article's title and description feed the signal extractor.
type NewsAPIAdapter struct {
	apiKey    string
	enabled   bool
	baseURL   string
	client    *http.Client
	extractor SignalExtractor
}

// NewNewsAPIAdapter creates the broadcast adapter. The API key is passed
// through untouched; an invalid key surfaces as an upstream error on fetch.
func NewNewsAPIAdapter(apiKey string, enabled bool, extractor SignalExtractor) *NewsAPIAdapter {
	return &NewsAPIAdapter{
		apiKey:    apiKey,
		enabled:   enabled,
		baseURL:   newsAPIBaseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
		extractor: extractor,
	}
}

func (n *NewsAPIAdapter) Name() string {
	return models.SourceNewsAPI
}

func (n *NewsAPIAdapter) Enabled() bool {
	return n.enabled
}

func (n *NewsAPIAdapter) Fetch(ctx context.Context, topic string, limit int) (models.SignalSeries, error) {
	if !n.enabled {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", topic)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", clampLimit(limit)))
	params.Set("apiKey", n.apiKey)

	reqURL := fmt.Sprintf("%s?%s", n.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Status   string `json:"status"`
		Message  string `json:"message"`
		Articles []struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			PublishedAt time.Time `json:"publishedAt"`
		} `json:"articles"`
	}

	if resp.StatusCode != http.StatusOK {
		// NewsAPI returns a JSON error body with non-200 codes
		if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && result.Message != "" {
			return nil, fmt.Errorf("newsapi error (status %d): %s", resp.StatusCode, result.Message)
		}
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("newsapi HTTP error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", result.Message)
	}

	records := make(models.SignalSeries, 0, len(result.Articles))
	for _, article := range result.Articles {
		text := article.Title + ". " + article.Description
		sig := n.extractor.Extract(text)

		records = append(records, models.SentimentRecord{
			Timestamp: article.PublishedAt.UTC(),
			Text:      text,
			Spin:      sig.Spin,
			Noise:     sig.Noise,
			Source:    models.SourceNewsAPI,
		})
	}

	logger.Debug("fetched NewsAPI articles",
		zap.String("topic", topic),
		zap.Int("count", len(records)),
	)

	return records, nil
}
