// agriassist/sources/psql/dao/dao.soil_requirement.go
package dao

import (
	"agriassist/agriassist/sources/psql/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SoilRequirementDAO struct {
	DB *gorm.DB
}

func NewSoilRequirementDAO(db *gorm.DB) *SoilRequirementDAO {
	return &SoilRequirementDAO{DB: db}
}

func (dao *SoilRequirementDAO) GetAll(ctx context.Context) ([]models.SoilRequirement, error) {
	var reqs []models.SoilRequirement
	err := dao.DB.WithContext(ctx).Order("crop_name asc").Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// Upsert inserts the requirement or replaces the ranges of an existing crop.
func (dao *SoilRequirementDAO) Upsert(ctx context.Context, req *models.SoilRequirement) error {
	return dao.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "crop_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nitrogen_min", "nitrogen_max", "phosphorus_min", "phosphorus_max",
			"potassium_min", "potassium_max", "temperature_min", "temperature_max",
			"humidity_min", "humidity_max", "ph_min", "ph_max", "rainfall_min", "rainfall_max",
		}),
	}).Create(req).Error
}
