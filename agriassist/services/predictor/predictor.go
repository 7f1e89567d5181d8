// Package predictor proxies the external crop recommendation model.
package predictor

import (
	"agriassist/agriassist/config"
	httputils "agriassist/agriassist/utils/http"
	"agriassist/agriassist/utils/logging"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
)

const FeatureCount = 7

var ErrInvalidFeatures = fmt.Errorf("exactly %d numeric features are required", FeatureCount)

// defaultMetrics is reported when the model omits additional_metrics.
var defaultMetrics = map[string]any{
	"Accuracy":          "0.85",
	"Precision":         "0.83",
	"Recall":            "0.82",
	"F1-Score":          "0.83",
	"ROC-AUC":           "0.94",
	"Cohen's Kappa":     "0.81",
	"Balanced Accuracy": "0.84",
}

// SoilData is the form-friendly shape of the model input.
type SoilData struct {
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Ph          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

// Features returns the values in the order the model was trained on.
func (s SoilData) Features() []float64 {
	return []float64{s.Nitrogen, s.Phosphorus, s.Potassium, s.Temperature, s.Humidity, s.Ph, s.Rainfall}
}

func SoilDataFromFeatures(f []float64) (SoilData, error) {
	if len(f) != FeatureCount {
		return SoilData{}, ErrInvalidFeatures
	}
	return SoilData{
		Nitrogen: f[0], Phosphorus: f[1], Potassium: f[2],
		Temperature: f[3], Humidity: f[4], Ph: f[5], Rainfall: f[6],
	}, nil
}

type Prediction struct {
	Predictions         map[string]string `json:"predictions"`
	Metrics             json.RawMessage   `json:"metrics,omitempty"`
	ROCCurve            json.RawMessage   `json:"roc_curve,omitempty"`
	FinalRecommendation string            `json:"final_recommendation"`
	AdditionalMetrics   map[string]any    `json:"additional_metrics"`
}

type Client struct {
	httpClient *http.Client
	url        string
}

func NewClient(cfg config.PredictorConfig) *Client {
	return &Client{httpClient: &http.Client{Timeout: cfg.Timeout}, url: cfg.URL}
}

func (c *Client) Predict(ctx context.Context, features []float64) (*Prediction, error) {
	defer logging.LogDuration(ctx, "predict_crop")()

	if len(features) != FeatureCount {
		return nil, ErrInvalidFeatures
	}

	var p Prediction
	body := map[string][]float64{"features": features}
	if err := httputils.PostJSON(ctx, c.httpClient, c.url, body, &p); err != nil {
		var se *httputils.StatusError
		if errors.As(err, &se) {
			return nil, fmt.Errorf("API call failed with status: %d", se.StatusCode)
		}
		return nil, err
	}
	if len(p.AdditionalMetrics) == 0 {
		p.AdditionalMetrics = make(map[string]any, len(defaultMetrics))
		for k, v := range defaultMetrics {
			p.AdditionalMetrics[k] = v
		}
	}
	return &p, nil
}

var (
	reBestModel = regexp.MustCompile(`'([^']+)'`)
	reAccuracy  = regexp.MustCompile(`accuracy of (\d+\.?\d*)`)
)

type Interpretation struct {
	BestModel     string  `json:"bestModel"`
	PredictedCrop string  `json:"predictedCrop"`
	ModelAccuracy float64 `json:"modelAccuracy"`
}

// Interpret reads the recommended model out of final_recommendation, e.g.
// "Use 'KNN' with an accuracy of 0.97".
func Interpret(p *Prediction) Interpretation {
	out := Interpretation{BestModel: "Random Forest"}
	if m := reBestModel.FindStringSubmatch(p.FinalRecommendation); m != nil {
		out.BestModel = m[1]
	}
	out.PredictedCrop = p.Predictions[out.BestModel]

	if m := reAccuracy.FindStringSubmatch(p.FinalRecommendation); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out.ModelAccuracy = v * 100
		}
	} else if v, ok := metricValue(p.AdditionalMetrics["Accuracy"]); ok {
		out.ModelAccuracy = v * 100
	}
	return out
}

func metricValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
