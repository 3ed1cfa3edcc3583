package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/settings"
	"github.com/sajidbaba1/yt/pkg/logger"
)

const tokenEndpoint = "https://oauth2.googleapis.com/token"

// TokenSource hands out a live Google access token, refreshing and
// re-persisting the stored bundle when it has expired.
type TokenSource struct {
	cfg        *config.Config
	settingUC  settings.UseCase
	httpClient *http.Client
	endpoint   string
	logger     logger.Logger
}

func NewTokenSource(cfg *config.Config, settingUC settings.UseCase, log logger.Logger) *TokenSource {
	return &TokenSource{
		cfg:        cfg,
		settingUC:  settingUC,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   tokenEndpoint,
		logger:     log,
	}
}

func (ts *TokenSource) AccessToken(ctx context.Context) (string, error) {
	bundle, err := ts.settingUC.GetTokenBundle(ctx)
	if err != nil {
		return "", err
	}
	if !bundle.Expired(time.Now()) {
		return bundle.AccessToken, nil
	}
	refreshed, err := ts.refresh(ctx, bundle)
	if err != nil {
		return "", fmt.Errorf("failed to refresh google token: %w", err)
	}
	if err := ts.settingUC.SetTokenBundle(ctx, refreshed); err != nil {
		// keep going, the refreshed token is still usable for this call
		ts.logger.Warnf("failed to persist refreshed token: %v", err)
	}
	return refreshed.AccessToken, nil
}

func (ts *TokenSource) refresh(ctx context.Context, bundle *models.TokenBundle) (*models.TokenBundle, error) {
	form := url.Values{}
	form.Set("client_id", ts.cfg.Google.ClientID)
	form.Set("client_secret", ts.cfg.Google.ClientSecret)
	form.Set("refresh_token", bundle.RefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	return &models.TokenBundle{
		AccessToken:  payload.AccessToken,
		RefreshToken: bundle.RefreshToken,
		TokenType:    payload.TokenType,
		Expiry:       time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second),
	}, nil
}
