package models

import (
	"encoding/json"
	"time"
)

const SettingKeyGoogleToken = "google_token"

// Setting is a generic key/value row. The only key the app writes today is
// the Google OAuth token bundle, overwritten on each re-authentication.
type Setting struct {
	Key       string          `json:"key" db:"key" validate:"required,lte=64"`
	Value     json.RawMessage `json:"value" db:"value" validate:"required"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// TokenBundle is the persisted shape of the Google OAuth credentials.
type TokenBundle struct {
	AccessToken  string    `json:"access_token" validate:"required"`
	RefreshToken string    `json:"refresh_token" validate:"required"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
}

func (t *TokenBundle) Expired(now time.Time) bool {
	if t.Expiry.IsZero() {
		return false
	}
	// refresh a little early so an upload never starts with a dying token
	return !now.Before(t.Expiry.Add(-30 * time.Second))
}

// Redacted returns a copy safe to return from the API.
func (t *TokenBundle) Redacted() *TokenBundle {
	return &TokenBundle{
		TokenType: t.TokenType,
		Expiry:    t.Expiry,
	}
}
