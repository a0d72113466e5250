package repository

import (
	"context"
	"errors"
	"time"

	"travelmeetup/internal/models"
	"travelmeetup/internal/observability"

	"gorm.io/gorm"
)

// TravelPlanRepository defines persistence operations for travel plans.
type TravelPlanRepository interface {
	Create(ctx context.Context, plan *models.TravelPlan) error
	GetByID(ctx context.Context, id uint) (*models.TravelPlan, error)
	Update(ctx context.Context, plan *models.TravelPlan) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.TravelPlan, error)
	ListPublicByCity(ctx context.Context, city string, limit, offset int) ([]models.TravelPlan, error)
	FindOverlapping(ctx context.Context, city string, start, end time.Time, excludeUserID uint) ([]models.TravelPlan, error)
}

type travelPlanRepository struct {
	db *gorm.DB
}

// NewTravelPlanRepository returns a new TravelPlanRepository implementation.
func NewTravelPlanRepository(db *gorm.DB) TravelPlanRepository {
	return &travelPlanRepository{db: db}
}

func (r *travelPlanRepository) Create(ctx context.Context, plan *models.TravelPlan) error {
	defer observability.TrackQuery("create", "travel_plans")()
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *travelPlanRepository) GetByID(ctx context.Context, id uint) (*models.TravelPlan, error) {
	var plan models.TravelPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("TravelPlan", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &plan, nil
}

func (r *travelPlanRepository) Update(ctx context.Context, plan *models.TravelPlan) error {
	defer observability.TrackQuery("update", "travel_plans")()
	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *travelPlanRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "travel_plans")()
	res := r.db.WithContext(ctx).Delete(&models.TravelPlan{}, id)
	if res.Error != nil {
		return classifyWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("TravelPlan", id)
	}
	return nil
}

func (r *travelPlanRepository) ListByUser(ctx context.Context, userID uint) ([]models.TravelPlan, error) {
	var plans []models.TravelPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date").
		Find(&plans).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return plans, nil
}

func (r *travelPlanRepository) ListPublicByCity(ctx context.Context, city string, limit, offset int) ([]models.TravelPlan, error) {
	var plans []models.TravelPlan
	if err := r.db.WithContext(ctx).
		Where("city = ? AND is_public = ?", city, true).
		Order("start_date").
		Limit(limit).
		Offset(offset).
		Find(&plans).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return plans, nil
}

// FindOverlapping returns public plans in the city whose date range shares at
// least one day with [start, end], excluding the given owner's plans.
func (r *travelPlanRepository) FindOverlapping(ctx context.Context, city string, start, end time.Time, excludeUserID uint) ([]models.TravelPlan, error) {
	var plans []models.TravelPlan
	if err := r.db.WithContext(ctx).
		Where("city = ? AND is_public = ? AND user_id <> ? AND start_date <= ? AND end_date >= ?",
			city, true, excludeUserID, end, start).
		Order("start_date").
		Find(&plans).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return plans, nil
}
