// Package search looks up the public web when the knowledge base has no good answer.
package search

import (
	"agriassist/agriassist/config"
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher returns ranked results, or an empty slice when nothing was found.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

const defaultMaxResults = 5

// New picks the provider named in cfg.Provider.
func New(cfg config.SearchConfig) (Searcher, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	switch strings.ToLower(cfg.Provider) {
	case "google":
		if cfg.GoogleAPIKey == "" || cfg.GoogleEngineID == "" {
			return nil, fmt.Errorf("google search needs an api key and engine id")
		}
		return NewGoogleClient(client, cfg.GoogleEndpoint, cfg.GoogleAPIKey, cfg.GoogleEngineID), nil
	case "duckduckgo", "":
		return NewDuckDuckGoClient(client, ""), nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", cfg.Provider)
	}
}

// cleanSnippet decodes HTML entities and collapses whitespace.
func cleanSnippet(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}
