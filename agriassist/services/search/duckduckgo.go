package search

import (
	"agriassist/agriassist/utils/logging"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reHTTP = regexp.MustCompile(`^https?://`)

// DuckDuckGoClient scrapes the key-less HTML endpoint.
type DuckDuckGoClient struct {
	httpClient *http.Client
	searchURL  string
	maxResults int
}

func NewDuckDuckGoClient(httpClient *http.Client, searchURL string) *DuckDuckGoClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if searchURL == "" {
		searchURL = "https://html.duckduckgo.com/html/"
	}
	return &DuckDuckGoClient{httpClient: httpClient, searchURL: searchURL, maxResults: defaultMaxResults}
}

func (c *DuckDuckGoClient) Search(ctx context.Context, query string) ([]Result, error) {
	defer logging.LogDuration(ctx, "duckduckgo_search")()

	params := url.Values{}
	params.Add("q", query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo search failed: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []Result
	doc.Find(".result__body").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(results) >= c.maxResults {
			return false
		}
		titleSel := s.Find(".result__title a")
		snippetSel := s.Find(".result__snippet")
		if titleSel.Length() == 0 || snippetSel.Length() == 0 {
			return true
		}

		href, exists := titleSel.Attr("href")
		if !exists {
			return true
		}
		link := resolveLink(href)
		if link == "" {
			return true
		}

		results = append(results, Result{
			Title:   strings.TrimSpace(titleSel.Text()),
			Link:    link,
			Snippet: cleanSnippet(snippetSel.Text()),
		})
		return true
	})

	return results, nil
}

// resolveLink unwraps the "/l/?uddg=<target>" redirect; direct links pass through.
func resolveLink(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	target := parsed.Query().Get("uddg")
	if target == "" {
		target = href
	}
	if !reHTTP.MatchString(target) {
		return ""
	}
	return target
}
