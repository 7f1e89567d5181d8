package predictor

import (
	"agriassist/agriassist/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.PredictorConfig{URL: srv.URL, Timeout: 5 * time.Second})
}

func TestPredictFillsDefaultMetrics(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []float64{90, 42, 43, 20.8, 82, 6.5, 202.9}, body["features"])
		w.Write([]byte(`{"predictions":{"KNN":"rice"},"final_recommendation":"Use 'KNN'","roc_curve":{"x":[0,1]}}`))
	})

	soil := SoilData{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 20.8, Humidity: 82, Ph: 6.5, Rainfall: 202.9}
	p, err := c.Predict(t.Context(), soil.Features())
	require.NoError(t, err)
	assert.Equal(t, "0.85", p.AdditionalMetrics["Accuracy"])
	assert.Len(t, p.AdditionalMetrics, 7)
	assert.JSONEq(t, `{"x":[0,1]}`, string(p.ROCCurve))
}

func TestPredictKeepsModelMetrics(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":{},"final_recommendation":"","additional_metrics":{"Accuracy":0.91}}`))
	})

	p, err := c.Predict(t.Context(), make([]float64, 7))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Accuracy": 0.91}, p.AdditionalMetrics)
}

func TestPredictRejectsWrongFeatureCount(t *testing.T) {
	c := NewClient(config.PredictorConfig{URL: "http://unused"})
	_, err := c.Predict(t.Context(), []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidFeatures)

	_, err = SoilDataFromFeatures([]float64{1})
	assert.ErrorIs(t, err, ErrInvalidFeatures)
}

func TestPredictUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.Predict(t.Context(), make([]float64, 7))
	assert.EqualError(t, err, "API call failed with status: 502")
}

func TestInterpret(t *testing.T) {
	p := &Prediction{
		Predictions:         map[string]string{"KNN": "rice", "Random Forest": "maize"},
		FinalRecommendation: "The best model is 'KNN' with an accuracy of 0.97",
	}
	got := Interpret(p)
	assert.Equal(t, "KNN", got.BestModel)
	assert.Equal(t, "rice", got.PredictedCrop)
	assert.InDelta(t, 97.0, got.ModelAccuracy, 1e-9)
}

func TestInterpretFallbacks(t *testing.T) {
	p := &Prediction{
		Predictions:       map[string]string{"Random Forest": "maize"},
		AdditionalMetrics: map[string]any{"Accuracy": "0.85"},
	}
	got := Interpret(p)
	assert.Equal(t, "Random Forest", got.BestModel)
	assert.Equal(t, "maize", got.PredictedCrop)
	assert.InDelta(t, 85.0, got.ModelAccuracy, 1e-9)
}

func TestSoilDataRoundTrip(t *testing.T) {
	soil, err := SoilDataFromFeatures([]float64{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, 6.0, soil.Ph)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, soil.Features())
}
