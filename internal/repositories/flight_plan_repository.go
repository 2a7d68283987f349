package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wxbrief/internal/models/db_models"
)

type FlightPlanRepository interface {
	Insert(ctx context.Context, plan *db_models.FlightPlan) error
	FindByIDForUser(ctx context.Context, planID uuid.UUID, userID uuid.UUID) (*db_models.FlightPlan, error)
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.FlightPlan, error)
}

type flightPlanRepository struct {
	db *gorm.DB
}

func NewFlightPlanRepository(db *gorm.DB) FlightPlanRepository {
	return &flightPlanRepository{
		db: db,
	}
}

func (r *flightPlanRepository) Insert(ctx context.Context, plan *db_models.FlightPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *flightPlanRepository) FindByIDForUser(ctx context.Context, planID uuid.UUID, userID uuid.UUID) (*db_models.FlightPlan, error) {

	var plan db_models.FlightPlan
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

// ListRecentByUser returns the user's plans newest first. The id tiebreak
// keeps the order stable when two plans share a creation second.
func (r *flightPlanRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.FlightPlan, error) {

	var plans []db_models.FlightPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}
