// Package translate wraps the Google Cloud Translation v2 REST API.
package translate

import (
	"agriassist/agriassist/config"
	httputils "agriassist/agriassist/utils/http"
	"agriassist/agriassist/utils/logging"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var ErrNotConfigured = errors.New("translation api key not configured")

type GoogleTranslator struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func NewGoogleTranslator(cfg config.TranslateConfig) *GoogleTranslator {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://translation.googleapis.com/language/translate/v2"
	}
	return &GoogleTranslator{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
	}
}

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate returns one translation per input text, in input order.
func (t *GoogleTranslator) Translate(ctx context.Context, texts []string, target string) ([]string, error) {
	defer logging.LogDuration(ctx, "google_translate")()

	if t.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if len(texts) == 0 {
		return []string{}, nil
	}

	var resp translateResponse
	reqURL := t.endpoint + "?key=" + url.QueryEscape(t.apiKey)
	body := translateRequest{Q: texts, Target: target, Format: "text"}
	if err := httputils.PostJSON(ctx, t.httpClient, reqURL, body, &resp); err != nil {
		return nil, fmt.Errorf("translate request failed: %w", err)
	}

	if len(resp.Data.Translations) != len(texts) {
		return nil, fmt.Errorf("expected %d translations, got %d", len(texts), len(resp.Data.Translations))
	}
	out := make([]string, len(texts))
	for i, tr := range resp.Data.Translations {
		out[i] = tr.TranslatedText
	}
	return out, nil
}
