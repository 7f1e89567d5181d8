package routes

import (
	"agriassist/agriassist/controllers"
	"agriassist/agriassist/services/insights"
	"agriassist/agriassist/utils/logging"
	"agriassist/agriassist/utils/types"
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func InsightsRoutes(ctrl *controllers.InsightsController) chi.Router {
	return generatedRoutes("insights", func(ctx context.Context, category string) (any, error) {
		return ctrl.CropInsights(ctx, category)
	})
}

func NewsRoutes(ctrl *controllers.InsightsController) chi.Router {
	return generatedRoutes("news", func(ctx context.Context, category string) (any, error) {
		return ctrl.News(ctx, category)
	})
}

// generatedRoutes serves POST / {category} for model-generated content.
// Unparseable output is returned with the raw text for debugging.
func generatedRoutes(kind string, generate func(ctx context.Context, category string) (any, error)) chi.Router {
	r := chi.NewRouter()
	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CategoryRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		res, err := generate(r.Context(), req.Category)
		var ue *insights.UnparseableError
		switch {
		case err == nil:
			return res, http.StatusOK, nil
		case errors.As(err, &ue):
			return map[string]string{
				"error":       "Failed to parse " + kind + " from Gemini API",
				"rawResponse": ue.Raw,
			}, http.StatusInternalServerError, nil
		case errors.Is(err, insights.ErrNotConfigured):
			return nil, http.StatusInternalServerError, err
		default:
			logging.ErrorLogger.Error("Generation failed", zap.String("kind", kind), zap.Error(err))
			return nil, http.StatusInternalServerError, errors.New("Failed to fetch " + kind + " from Gemini API")
		}
	}))
	return r
}
