package routes

import (
	"agriassist/agriassist/config"
	"agriassist/agriassist/controllers"
	"agriassist/agriassist/middlewares"
	"agriassist/agriassist/utils/types"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PredictRoutes is mounted at /predict-crop.
func PredictRoutes(ctrl *controllers.CropController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.PredictCropRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		pred, err := ctrl.PredictCrop(r.Context(), req)
		if err != nil {
			return nil, statusFor(err), err
		}
		return pred, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		gr.Get("/history", handleJSON(func(r *http.Request) (any, int, error) {
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			preds, err := ctrl.RecentPredictions(r.Context(), limit)
			if err != nil {
				return nil, statusFor(err), err
			}
			return preds, http.StatusOK, nil
		}))
	})
	return r
}

// SuitabilityRoutes is mounted at /generate-crop-insights.
func SuitabilityRoutes(ctrl *controllers.CropController) chi.Router {
	r := chi.NewRouter()
	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CropInsightsRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		recs, err := ctrl.Recommendations(r.Context(), req)
		if err != nil {
			return nil, statusFor(err), err
		}
		return map[string]any{"recommendations": recs}, http.StatusOK, nil
	}))
	return r
}
