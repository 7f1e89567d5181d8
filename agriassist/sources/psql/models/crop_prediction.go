// agriassist/sources/psql/models/crop_prediction.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CropPrediction struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Nitrogen      float64   `json:"nitrogen" gorm:"not null"`
	Phosphorus    float64   `json:"phosphorus" gorm:"not null"`
	Potassium     float64   `json:"potassium" gorm:"not null"`
	Temperature   float64   `json:"temperature" gorm:"not null"`
	Humidity      float64   `json:"humidity" gorm:"not null"`
	Ph            float64   `json:"ph" gorm:"column:ph;not null"`
	Rainfall      float64   `json:"rainfall" gorm:"not null"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	PredictedCrop *string   `json:"predicted_crop" gorm:"type:varchar(255)"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CropPrediction) TableName() string {
	return "crop_predictions"
}

func (p *CropPrediction) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
