package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
)

func TestFallback(t *testing.T) {
	got := Fallback("my video.mp4")
	assert.Equal(t, &models.Suggestion{
		Title:       "my video.mp4",
		Description: DefaultDescription,
	}, got)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Hashtags)
}

func TestTrimExtension(t *testing.T) {
	cases := map[string]string{
		"holiday.mp4":     "holiday",
		"two.dots.mov":    "two.dots",
		"noextension":     "noextension",
		".hidden":         ".hidden",
		"trailingdot.":    "trailingdot",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, TrimExtension(in), "input %q", in)
	}
}

func newTestSuggester(t *testing.T, endpoint string) *geminiSuggester {
	t.Helper()
	cfg := &config.Config{}
	cfg.Suggest.Endpoint = endpoint
	cfg.Suggest.Model = "gemini-2.0-flash"
	cfg.Suggest.APIKey = "test-key"
	cfg.Suggest.CacheTTL = time.Minute
	cfg.Logger.Level = "error"
	cfg.Logger.Encoding = "console"
	log := logger.NewApiLogger(cfg)
	log.InitLogger()
	return &geminiSuggester{
		cfg: cfg,
		// unreachable on purpose: cache misses, writes are dropped
		redisClient: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond}),
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		logger:      log,
	}
}

func generateReply(t *testing.T, suggestion *models.Suggestion) []byte {
	t.Helper()
	inner, err := json.Marshal(suggestion)
	require.NoError(t, err)
	body := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": string(inner)}},
			}},
		},
	}
	out, err := json.Marshal(body)
	require.NoError(t, err)
	return out
}

func TestGeminiSuggester_Suggest(t *testing.T) {
	want := &models.Suggestion{
		Title:       "Holiday in Rome",
		Description: "A walk through the old town.",
		Tags:        []string{"travel", "rome"},
		Hashtags:    []string{"#travel"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.0-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write(generateReply(t, want))
	}))
	defer srv.Close()

	s := newTestSuggester(t, srv.URL)
	got := s.Suggest(context.Background(), "holiday_rome.mp4")
	assert.Equal(t, want, got)
}

func TestGeminiSuggester_SuggestFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newTestSuggester(t, srv.URL)
	got := s.Suggest(context.Background(), "clip.mp4")
	assert.Equal(t, Fallback("clip.mp4"), got)
}

func TestGeminiSuggester_SuggestFallsBackOnEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	s := newTestSuggester(t, srv.URL)
	got := s.Suggest(context.Background(), "clip.mp4")
	assert.Equal(t, Fallback("clip.mp4"), got)
}

func TestGeminiSuggester_SuggestFallsBackWhenUnreachable(t *testing.T) {
	s := newTestSuggester(t, "http://127.0.0.1:1")
	got := s.Suggest(context.Background(), "clip.mp4")
	assert.Equal(t, Fallback("clip.mp4"), got)
}

func TestGeminiSuggester_SuggestFillsMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(generateReply(t, &models.Suggestion{Tags: []string{"misc"}}))
	}))
	defer srv.Close()

	s := newTestSuggester(t, srv.URL)
	got := s.Suggest(context.Background(), "clip.mp4")
	assert.Equal(t, "clip.mp4", got.Title)
	assert.Equal(t, DefaultDescription, got.Description)
	assert.Equal(t, []string{"misc"}, got.Tags)
}
