package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/selivandex/sentiment-compass/internal/extractor"
	"github.com/selivandex/sentiment-compass/pkg/models"
)

const newsAPIOkPayload = `{
	"status": "ok",
	"totalResults": 2,
	"articles": [
		{
			"title": "Markets rally on record growth",
			"description": "Stocks surge as investors cheer strong gains.",
			"publishedAt": "2026-08-28T10:00:00Z"
		},
		{
			"title": "Analysts fear a crash",
			"description": "Panic spreads after steep losses and a broad selloff.",
			"publishedAt": "2026-08-28T11:00:00Z"
		}
	]
}`

func newTestNewsAPIAdapter(baseURL string) *NewsAPIAdapter {
	adapter := NewNewsAPIAdapter("test-key", true, extractor.NewHybridBackend())
	adapter.baseURL = baseURL
	return adapter
}

func TestNewsAPIAdapter_Fetch(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(newsAPIOkPayload))
	}))
	defer server.Close()

	adapter := newTestNewsAPIAdapter(server.URL)

	records, err := adapter.Fetch(context.Background(), "stocks", 100)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if gotQuery != "stocks" {
		t.Errorf("Expected topic in query, got %q", gotQuery)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	for i, rec := range records {
		if rec.Source != models.SourceNewsAPI {
			t.Errorf("Record %d: wrong source tag %q", i, rec.Source)
		}
		if !rec.Valid() {
			t.Errorf("Record %d out of range: spin=%.3f noise=%.3f", i, rec.Spin, rec.Noise)
		}
		if rec.Timestamp.Location() != time.UTC {
			t.Errorf("Record %d: timestamp not UTC normalized", i)
		}
	}

	if records[0].Spin <= 0 {
		t.Errorf("Bullish article should have positive spin, got %.3f", records[0].Spin)
	}
	if records[1].Spin >= 0 {
		t.Errorf("Bearish article should have negative spin, got %.3f", records[1].Spin)
	}
}

func TestNewsAPIAdapter_InvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`))
	}))
	defer server.Close()

	adapter := newTestNewsAPIAdapter(server.URL)

	records, err := adapter.Fetch(context.Background(), "stocks", 100)
	if err == nil {
		t.Fatal("Invalid credential must surface an error")
	}
	if err.Error() == "" {
		t.Error("Diagnostic string must be non-empty")
	}
	if len(records) != 0 {
		t.Errorf("Failed fetch must return an empty collection, got %d records", len(records))
	}
}

func TestNewsAPIAdapter_UpstreamErrorStatus(t *testing.T) {
	// NewsAPI can report failure in the body with a 200 code
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"error","message":"parameter missing"}`))
	}))
	defer server.Close()

	adapter := newTestNewsAPIAdapter(server.URL)

	if _, err := adapter.Fetch(context.Background(), "stocks", 100); err == nil {
		t.Fatal("Non-ok upstream status must surface an error")
	}
}

func TestNewsAPIAdapter_Disabled(t *testing.T) {
	adapter := NewNewsAPIAdapter("", false, extractor.NewHybridBackend())

	records, err := adapter.Fetch(context.Background(), "stocks", 100)
	if err != nil {
		t.Fatalf("Disabled adapter should be a no-op, got error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Disabled adapter should return no records, got %d", len(records))
	}
}
