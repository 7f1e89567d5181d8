// agriassist/sources/psql/dao/dao.crop_prediction.go
package dao

import (
	"agriassist/agriassist/sources/psql/models"
	"context"

	"gorm.io/gorm"
)

type CropPredictionDAO struct {
	DB *gorm.DB
}

func NewCropPredictionDAO(db *gorm.DB) *CropPredictionDAO {
	return &CropPredictionDAO{DB: db}
}

func (dao *CropPredictionDAO) Create(ctx context.Context, p *models.CropPrediction) error {
	return dao.DB.WithContext(ctx).Create(p).Error
}

func (dao *CropPredictionDAO) ListRecent(ctx context.Context, limit int) ([]models.CropPrediction, error) {
	var preds []models.CropPrediction
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&preds).Error
	if err != nil {
		return nil, err
	}
	return preds, nil
}
