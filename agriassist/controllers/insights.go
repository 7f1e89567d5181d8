package controllers

import (
	"agriassist/agriassist/services/insights"
	"context"
)

type InsightsController struct {
	svc *insights.Service
}

func NewInsightsController(svc *insights.Service) *InsightsController {
	return &InsightsController{svc: svc}
}

func (c *InsightsController) CropInsights(ctx context.Context, category string) (*insights.InsightsResponse, error) {
	return c.svc.Insights(ctx, category)
}

func (c *InsightsController) News(ctx context.Context, category string) (*insights.NewsResponse, error) {
	return c.svc.News(ctx, category)
}
