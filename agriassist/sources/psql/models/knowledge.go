// agriassist/sources/psql/models/knowledge.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KnowledgeRecord is one curated (or search-synthesized) chatbot answer.
type KnowledgeRecord struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Keywords   string    `json:"keywords" gorm:"type:text;not null"`
	ResponseEN string    `json:"response_en" gorm:"column:response_en;type:text;not null"`
	ResponseHI *string   `json:"response_hi" gorm:"column:response_hi;type:text"`
	ResponseTE *string   `json:"response_te" gorm:"column:response_te;type:text"`
	ResponseKN *string   `json:"response_kn" gorm:"column:response_kn;type:text"`
	ResponseML *string   `json:"response_ml" gorm:"column:response_ml;type:text"`
	Source     *string   `json:"source" gorm:"type:text"`
	Content    *string   `json:"content" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (KnowledgeRecord) TableName() string {
	return "agricultural_knowledge"
}

func (k *KnowledgeRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
