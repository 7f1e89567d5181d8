package controllers

import (
	"agriassist/agriassist/services/predictor"
	"agriassist/agriassist/services/suitability"
	"agriassist/agriassist/sources/psql/dao"
	"agriassist/agriassist/sources/psql/models"
	"agriassist/agriassist/utils/logging"
	"agriassist/agriassist/utils/types"
	"context"

	"go.uber.org/zap"
)

type Predictor interface {
	Predict(ctx context.Context, features []float64) (*predictor.Prediction, error)
}

type CropController struct {
	predictor     Predictor
	soilDAO       *dao.SoilRequirementDAO
	predictionDAO *dao.CropPredictionDAO
}

func NewCropController(p Predictor, soilDAO *dao.SoilRequirementDAO, predictionDAO *dao.CropPredictionDAO) *CropController {
	return &CropController{predictor: p, soilDAO: soilDAO, predictionDAO: predictionDAO}
}

// PredictCrop forwards the features to the model and records the outcome.
// A failed history insert is logged and does not fail the prediction.
func (c *CropController) PredictCrop(ctx context.Context, req types.PredictCropRequest) (*predictor.Prediction, error) {
	soil, err := predictor.SoilDataFromFeatures(req.Features)
	if err != nil {
		return nil, err
	}
	pred, err := c.predictor.Predict(ctx, req.Features)
	if err != nil {
		return nil, err
	}

	if c.predictionDAO != nil {
		crop := predictor.Interpret(pred).PredictedCrop
		row := &models.CropPrediction{
			Nitrogen:    soil.Nitrogen,
			Phosphorus:  soil.Phosphorus,
			Potassium:   soil.Potassium,
			Temperature: soil.Temperature,
			Humidity:    soil.Humidity,
			Ph:          soil.Ph,
			Rainfall:    soil.Rainfall,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
		}
		if crop != "" {
			row.PredictedCrop = &crop
		}
		if err := c.predictionDAO.Create(ctx, row); err != nil {
			logging.ErrorLogger.Error("Failed to record crop prediction", zap.Error(err))
		}
	}
	return pred, nil
}

// Recommendations ranks every crop with known soil requirements.
func (c *CropController) Recommendations(ctx context.Context, req types.CropInsightsRequest) ([]suitability.Recommendation, error) {
	reqs, err := c.soilDAO.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s := req.SoilData
	soil := predictor.SoilData{
		Nitrogen: s.Nitrogen, Phosphorus: s.Phosphorus, Potassium: s.Potassium,
		Temperature: s.Temperature, Humidity: s.Humidity, Ph: s.Ph, Rainfall: s.Rainfall,
	}
	recs := suitability.Recommend(reqs, soil, suitability.DefaultTop)
	logging.AppLogger.Info("Generated recommendations",
		zap.String("predicted_crop", req.PredictedCrop), zap.Int("count", len(recs)))
	return recs, nil
}

func (c *CropController) RecentPredictions(ctx context.Context, limit int) ([]models.CropPrediction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	preds, err := c.predictionDAO.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if preds == nil {
		preds = []models.CropPrediction{}
	}
	return preds, nil
}
