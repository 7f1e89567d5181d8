package search

import (
	httputils "agriassist/agriassist/utils/http"
	"agriassist/agriassist/utils/logging"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GoogleClient talks to the Custom Search JSON API.
type GoogleClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	engineID   string
	maxResults int
}

func NewGoogleClient(httpClient *http.Client, endpoint, apiKey, engineID string) *GoogleClient {
	if endpoint == "" {
		endpoint = "https://www.googleapis.com/customsearch/v1"
	}
	return &GoogleClient{
		httpClient: httpClient,
		endpoint:   endpoint,
		apiKey:     apiKey,
		engineID:   engineID,
		maxResults: defaultMaxResults,
	}
}

type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

func (c *GoogleClient) Search(ctx context.Context, query string) ([]Result, error) {
	defer logging.LogDuration(ctx, "google_search")()

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(c.maxResults))

	var resp googleResponse
	if err := httputils.GetJSON(ctx, c.httpClient, c.endpoint+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("google search failed: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Link == "" {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: cleanSnippet(item.Snippet),
		})
	}
	return results, nil
}
