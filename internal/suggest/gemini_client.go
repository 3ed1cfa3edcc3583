package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
)

const suggestionKeyPrefix = "suggestion:"

type geminiSuggester struct {
	cfg         *config.Config
	redisClient *redis.Client
	httpClient  *http.Client
	logger      logger.Logger
}

func NewGeminiSuggester(cfg *config.Config, redisClient *redis.Client, log logger.Logger) Suggester {
	return &geminiSuggester{
		cfg:         cfg,
		redisClient: redisClient,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      log,
	}
}

// Suggest asks the generative model for title/description/tags. Every
// failure path falls back to Fallback(filename); the caller never sees an
// error.
func (s *geminiSuggester) Suggest(ctx context.Context, filename string) *models.Suggestion {
	if cached := s.fromCache(ctx, filename); cached != nil {
		return cached
	}
	suggestion, err := s.generate(ctx, filename)
	if err != nil {
		s.logger.Warnf("suggestion for %q failed, using fallback: %v", filename, err)
		return Fallback(filename)
	}
	s.toCache(ctx, filename, suggestion)
	return suggestion
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *geminiSuggester) generate(ctx context.Context, filename string) (*models.Suggestion, error) {
	prompt := fmt.Sprintf(
		`Suggest YouTube upload metadata for a video file named %q. `+
			`Respond with a JSON object with keys "title" (max 100 chars), `+
			`"description", "tags" (array of strings) and "hashtags" (array of strings starting with #).`,
		TrimExtension(filename),
	)

	reqBody := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.cfg.Suggest.Endpoint, s.cfg.Suggest.Model, s.cfg.Suggest.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion api returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("suggestion response has no candidates")
	}

	suggestion := &models.Suggestion{}
	if err := json.Unmarshal([]byte(genResp.Candidates[0].Content.Parts[0].Text), suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion json: %w", err)
	}
	if suggestion.Title == "" {
		suggestion.Title = filename
	}
	if suggestion.Description == "" {
		suggestion.Description = DefaultDescription
	}
	return suggestion, nil
}

func (s *geminiSuggester) fromCache(ctx context.Context, filename string) *models.Suggestion {
	data, err := s.redisClient.Get(ctx, suggestionKeyPrefix+filename).Bytes()
	if err != nil {
		return nil
	}
	suggestion := &models.Suggestion{}
	if err := json.Unmarshal(data, suggestion); err != nil {
		return nil
	}
	return suggestion
}

func (s *geminiSuggester) toCache(ctx context.Context, filename string, suggestion *models.Suggestion) {
	data, err := json.Marshal(suggestion)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, suggestionKeyPrefix+filename, data, s.cfg.Suggest.CacheTTL).Err(); err != nil {
		s.logger.Warnf("failed to cache suggestion for %q: %v", filename, err)
	}
}
