package repositories

import (
	"context"

	"gorm.io/gorm"

	"wxbrief/internal/models/db_models"
)

type BriefingRepository interface {
	Insert(ctx context.Context, briefing *db_models.Briefing) error
}

type briefingRepository struct {
	db *gorm.DB
}

func NewBriefingRepository(db *gorm.DB) BriefingRepository {
	return &briefingRepository{
		db: db,
	}
}

func (r *briefingRepository) Insert(ctx context.Context, briefing *db_models.Briefing) error {
	return r.db.WithContext(ctx).Create(briefing).Error
}
