// agriassist/sources/psql/dao/dao.knowledge.go
package dao

import (
	"agriassist/agriassist/sources/psql/models"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidKnowledge = errors.New("keywords and response_en are required")

type KnowledgeDAO struct {
	DB *gorm.DB
}

func NewKnowledgeDAO(db *gorm.DB) *KnowledgeDAO {
	return &KnowledgeDAO{DB: db}
}

// List returns the whole knowledge base in insertion order.
// The matcher relies on this order to break score ties.
func (dao *KnowledgeDAO) List(ctx context.Context) ([]models.KnowledgeRecord, error) {
	var records []models.KnowledgeRecord
	err := dao.DB.WithContext(ctx).Order("created_at asc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListNewest is the admin view: most recent first.
func (dao *KnowledgeDAO) ListNewest(ctx context.Context) ([]models.KnowledgeRecord, error) {
	var records []models.KnowledgeRecord
	err := dao.DB.WithContext(ctx).Order("created_at desc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (dao *KnowledgeDAO) Insert(ctx context.Context, record *models.KnowledgeRecord) error {
	if strings.TrimSpace(record.Keywords) == "" || strings.TrimSpace(record.ResponseEN) == "" {
		return ErrInvalidKnowledge
	}
	return dao.DB.WithContext(ctx).Create(record).Error
}

func (dao *KnowledgeDAO) GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeRecord, error) {
	var record models.KnowledgeRecord
	err := dao.DB.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update applies column updates. Clearing keywords or response_en is rejected.
func (dao *KnowledgeDAO) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	for _, col := range []string{"keywords", "response_en"} {
		if v, ok := updates[col]; ok {
			s, _ := v.(string)
			if strings.TrimSpace(s) == "" {
				return ErrInvalidKnowledge
			}
		}
	}
	return dao.DB.WithContext(ctx).Model(&models.KnowledgeRecord{}).Where("id = ?", id).Updates(updates).Error
}

func (dao *KnowledgeDAO) Delete(ctx context.Context, id uuid.UUID) error {
	return dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.KnowledgeRecord{}).Error
}
