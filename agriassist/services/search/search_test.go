package search

import (
	"agriassist/agriassist/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("key"))
		assert.Equal(t, "cx", q.Get("cx"))
		assert.Equal(t, "rice blast agriculture farming", q.Get("q"))
		w.Write([]byte(`{"items":[
			{"title":"A","link":"https://a.example","snippet":"Rice blast is a  fungal &amp; serious disease."},
			{"title":"B","link":"","snippet":"dropped"},
			{"title":"C","link":"https://c.example","snippet":"Second."}
		]}`))
	}))
	defer srv.Close()

	c := NewGoogleClient(srv.Client(), srv.URL, "key", "cx")
	results, err := c.Search(t.Context(), "rice blast agriculture farming")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "https://a.example", results[0].Link)
	assert.Equal(t, "Rice blast is a fungal & serious disease.", results[0].Snippet)
	assert.Equal(t, "https://c.example", results[1].Link)
}

func TestGoogleSearchNoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	results, err := NewGoogleClient(srv.Client(), srv.URL, "k", "c").Search(t.Context(), "x")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGoogleSearchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewGoogleClient(srv.Client(), srv.URL, "k", "c").Search(t.Context(), "x")
	assert.Error(t, err)
}

const ddgPage = `<html><body>
<div class="result__body">
  <h2 class="result__title"><a href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fagri.example%2Fwheat&rut=abc">Wheat guide</a></h2>
  <a class="result__snippet">Sow wheat   in November.</a>
</div>
<div class="result__body">
  <h2 class="result__title"><a href="https://direct.example/page">Direct</a></h2>
  <a class="result__snippet">Direct link.</a>
</div>
<div class="result__body">
  <h2 class="result__title"><a href="/relative">Bad</a></h2>
  <a class="result__snippet">Skipped.</a>
</div>
</body></html>`

func TestDuckDuckGoSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "wheat sowing", r.URL.Query().Get("q"))
		w.Write([]byte(ddgPage))
	}))
	defer srv.Close()

	c := NewDuckDuckGoClient(srv.Client(), srv.URL)
	results, err := c.Search(t.Context(), "wheat sowing")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "https://agri.example/wheat", results[0].Link)
	assert.Equal(t, "Wheat guide", results[0].Title)
	assert.Equal(t, "Sow wheat in November.", results[0].Snippet)
	assert.Equal(t, "https://direct.example/page", results[1].Link)
}

func TestNewSelectsProvider(t *testing.T) {
	s, err := New(config.SearchConfig{Provider: "google", GoogleAPIKey: "k", GoogleEngineID: "c"})
	require.NoError(t, err)
	assert.IsType(t, &GoogleClient{}, s)

	s, err = New(config.SearchConfig{Provider: "duckduckgo"})
	require.NoError(t, err)
	assert.IsType(t, &DuckDuckGoClient{}, s)

	_, err = New(config.SearchConfig{Provider: "google"})
	assert.Error(t, err)

	_, err = New(config.SearchConfig{Provider: "bing"})
	assert.Error(t, err)
}
