// agriassist/sources/psql/models/soil_requirement.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoilRequirement holds the acceptable range of every soil/climate factor for one crop.
type SoilRequirement struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CropName       string    `json:"crop_name" gorm:"type:varchar(255);not null;uniqueIndex"`
	NitrogenMin    float64   `json:"nitrogen_min"`
	NitrogenMax    float64   `json:"nitrogen_max"`
	PhosphorusMin  float64   `json:"phosphorus_min"`
	PhosphorusMax  float64   `json:"phosphorus_max"`
	PotassiumMin   float64   `json:"potassium_min"`
	PotassiumMax   float64   `json:"potassium_max"`
	TemperatureMin float64   `json:"temperature_min"`
	TemperatureMax float64   `json:"temperature_max"`
	HumidityMin    float64   `json:"humidity_min"`
	HumidityMax    float64   `json:"humidity_max"`
	PhMin          float64   `json:"ph_min" gorm:"column:ph_min"`
	PhMax          float64   `json:"ph_max" gorm:"column:ph_max"`
	RainfallMin    float64   `json:"rainfall_min"`
	RainfallMax    float64   `json:"rainfall_max"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SoilRequirement) TableName() string {
	return "soil_requirements"
}

func (s *SoilRequirement) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
