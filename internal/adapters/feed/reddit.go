package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/sentiment-compass/pkg/logger"
	"github.com/selivandex/sentiment-compass/pkg/models"
)

const (
	redditTokenURL  = "https://www.reddit.com/api/v1/access_token"
	redditSearchURL = "https://oauth.reddit.com/search"
	redditUserAgent = "sentiment-compass/1.0"

	// Post bodies are truncated to keep extraction fast; the title
	// carries most of the signal anyway
	redditBodyPrefix = 200
)

// RedditAdapter fetches topic-matching discussion posts, newest first.
// It authenticates with the application-only OAuth flow; credential or
// connectivity failure surfaces as an empty collection plus an error.
type RedditAdapter struct {
	clientID     string
	clientSecret string
	enabled      bool
	tokenURL     string
	searchURL    string
	client       *http.Client
	extractor    SignalExtractor
}

// NewRedditAdapter creates the discussion adapter. Credentials are opaque
// pass-through strings; they are never validated locally.
func NewRedditAdapter(clientID, clientSecret string, enabled bool, extractor SignalExtractor) *RedditAdapter {
	return &RedditAdapter{
		clientID:     clientID,
		clientSecret: clientSecret,
		enabled:      enabled,
		tokenURL:     redditTokenURL,
		searchURL:    redditSearchURL,
		client:       &http.Client{Timeout: 10 * time.Second},
		extractor:    extractor,
	}
}

func (r *RedditAdapter) Name() string {
	return models.SourceReddit
}

func (r *RedditAdapter) Enabled() bool {
	return r.enabled
}

func (r *RedditAdapter) Fetch(ctx context.Context, topic string, limit int) (models.SignalSeries, error) {
	if !r.enabled {
		return nil, nil
	}

	token, err := r.fetchToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("reddit auth failed: %w", err)
	}

	posts, err := r.search(ctx, token, topic, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("reddit search failed: %w", err)
	}

	logger.Debug("fetched Reddit posts",
		zap.String("topic", topic),
		zap.Int("count", len(posts)),
	)

	return posts, nil
}

// fetchToken performs the application-only OAuth token exchange
func (r *RedditAdapter) fetchToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, "POST", r.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(r.clientID, r.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if result.AccessToken == "" {
		return "", fmt.Errorf("no access token in response: %s", result.Error)
	}

	return result.AccessToken, nil
}

// search queries topic-matching posts sorted newest first
func (r *RedditAdapter) search(ctx context.Context, token, topic string, limit int) (models.SignalSeries, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("sort", "new")
	params.Set("limit", fmt.Sprintf("%d", limit))

	reqURL := fmt.Sprintf("%s?%s", r.searchURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "bearer "+token)
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data struct {
			Children []struct {
				Data struct {
					Title      string  `json:"title"`
					Selftext   string  `json:"selftext"`
					CreatedUTC float64 `json:"created_utc"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make(models.SignalSeries, 0, len(result.Data.Children))
	for _, child := range result.Data.Children {
		post := child.Data

		text := post.Title + " " + truncate(post.Selftext, redditBodyPrefix)
		sig := r.extractor.Extract(text)

		records = append(records, models.SentimentRecord{
			Timestamp: time.Unix(int64(post.CreatedUTC), 0).UTC(),
			Text:      text,
			Spin:      sig.Spin,
			Noise:     sig.Noise,
			Source:    models.SourceReddit,
		})
	}

	return records, nil
}
