package controllers

import (
	"agriassist/agriassist/services/predictor"
	"agriassist/agriassist/sources/psql/dao"
	"agriassist/agriassist/sources/psql/models"
	"agriassist/agriassist/sources/psql/psqltest"
	"agriassist/agriassist/utils/types"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictor struct {
	pred *predictor.Prediction
	err  error
}

func (s stubPredictor) Predict(ctx context.Context, features []float64) (*predictor.Prediction, error) {
	return s.pred, s.err
}

func newCropController(t *testing.T, p Predictor) *CropController {
	db := psqltest.NewDB(t)
	return NewCropController(p, dao.NewSoilRequirementDAO(db), dao.NewCropPredictionDAO(db))
}

func TestPredictCropRecordsHistory(t *testing.T) {
	pred := &predictor.Prediction{
		Predictions:         map[string]string{"KNN": "rice"},
		FinalRecommendation: "Use 'KNN' with an accuracy of 0.9",
	}
	c := newCropController(t, stubPredictor{pred: pred})
	lat := 17.4

	got, err := c.PredictCrop(t.Context(), types.PredictCropRequest{Features: []float64{90, 42, 43, 20, 82, 6.5, 200}, Latitude: &lat})
	require.NoError(t, err)
	assert.Same(t, pred, got)

	history, err := c.RecentPredictions(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].PredictedCrop)
	assert.Equal(t, "rice", *history[0].PredictedCrop)
	assert.Equal(t, 6.5, history[0].Ph)
	require.NotNil(t, history[0].Latitude)
	assert.Equal(t, 17.4, *history[0].Latitude)
}

func TestPredictCropErrors(t *testing.T) {
	c := newCropController(t, stubPredictor{err: errors.New("model down")})

	_, err := c.PredictCrop(t.Context(), types.PredictCropRequest{Features: []float64{1, 2}})
	assert.ErrorIs(t, err, predictor.ErrInvalidFeatures)

	_, err = c.PredictCrop(t.Context(), types.PredictCropRequest{Features: make([]float64, 7)})
	assert.EqualError(t, err, "model down")

	history, err := c.RecentPredictions(t.Context(), 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRecommendations(t *testing.T) {
	db := psqltest.NewDB(t)
	soilDAO := dao.NewSoilRequirementDAO(db)
	for _, r := range []models.SoilRequirement{
		{CropName: "rice", NitrogenMin: 60, NitrogenMax: 100, PhosphorusMin: 35, PhosphorusMax: 60, PotassiumMin: 35, PotassiumMax: 45,
			TemperatureMin: 20, TemperatureMax: 27, HumidityMin: 80, HumidityMax: 85, PhMin: 5, PhMax: 7.5, RainfallMin: 180, RainfallMax: 300},
		{CropName: "chickpea", NitrogenMin: 20, NitrogenMax: 60, PhosphorusMin: 55, PhosphorusMax: 80, PotassiumMin: 75, PotassiumMax: 85,
			TemperatureMin: 17, TemperatureMax: 21, HumidityMin: 14, HumidityMax: 20, PhMin: 6, PhMax: 8, RainfallMin: 65, RainfallMax: 95},
	} {
		r := r
		require.NoError(t, soilDAO.Upsert(t.Context(), &r))
	}
	c := NewCropController(nil, soilDAO, dao.NewCropPredictionDAO(db))

	recs, err := c.Recommendations(t.Context(), types.CropInsightsRequest{
		PredictedCrop: "rice",
		SoilData:      types.SoilInput{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 21, Humidity: 82, Ph: 6.5, Rainfall: 203},
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "rice", recs[0].Crop)
	assert.Equal(t, 100, recs[0].Efficiency)
	assert.Less(t, recs[1].Efficiency, 100)
}
