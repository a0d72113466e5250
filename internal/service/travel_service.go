package service

import (
	"context"
	"fmt"

	"travelmeetup/internal/models"
	"travelmeetup/internal/repository"
)

// TravelPlanService provides trip planning and matching logic.
type TravelPlanService struct {
	planRepo         repository.TravelPlanRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewTravelPlanService returns a new TravelPlanService.
func NewTravelPlanService(planRepo repository.TravelPlanRepository, userRepo repository.UserRepository, notificationRepo repository.NotificationRepository) *TravelPlanService {
	return &TravelPlanService{
		planRepo:         planRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// validatePlan holds the date and field rules the schema does not enforce.
// The stored schema never ordered start_date against end_date, so legacy rows
// may violate it; new writes through this service do not.
func validatePlan(plan *models.TravelPlan) error {
	if plan.City == "" || plan.Country == "" {
		return models.NewValidationError("city and country are required")
	}
	if plan.StartDate.IsZero() || plan.EndDate.IsZero() {
		return models.NewValidationError("start and end dates are required")
	}
	if plan.EndDate.Before(plan.StartDate) {
		return models.NewValidationError("end date must not be before start date")
	}
	if !models.KnownPurpose(plan.Purpose) {
		return models.NewValidationError("purpose must be one of vacation, business, visiting, other")
	}
	if len(plan.Notes) > 1000 {
		return models.NewValidationError("notes must be at most 1000 characters")
	}
	return nil
}

// Create validates and persists a new travel plan for the user.
func (s *TravelPlanService) Create(ctx context.Context, userID uint, plan *models.TravelPlan) (*models.TravelPlan, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	plan.ID = 0
	plan.UserID = userID
	if err := validatePlan(plan); err != nil {
		return nil, err
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update applies changes to a plan. Only the owner may update it.
func (s *TravelPlanService) Update(ctx context.Context, userID uint, plan *models.TravelPlan) (*models.TravelPlan, error) {
	existing, err := s.planRepo.GetByID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only update your own travel plans")
	}

	plan.UserID = existing.UserID
	plan.CreatedAt = existing.CreatedAt
	if err := validatePlan(plan); err != nil {
		return nil, err
	}
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes a plan. Only the owner may delete it.
func (s *TravelPlanService) Delete(ctx context.Context, userID, planID uint) error {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own travel plans")
	}
	return s.planRepo.Delete(ctx, planID)
}

// ListForUser returns the plans of the given owner. Private plans are
// included only when the viewer is the owner.
func (s *TravelPlanService) ListForUser(ctx context.Context, viewerID, ownerID uint) ([]models.TravelPlan, error) {
	plans, err := s.planRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if viewerID == ownerID {
		return plans, nil
	}

	visible := plans[:0]
	for _, p := range plans {
		if p.IsPublic {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// FindMatches returns public plans by other users that overlap the given plan
// in the same city, and notifies the plan's owner with a travel_match
// notification per match.
func (s *TravelPlanService) FindMatches(ctx context.Context, userID, planID uint) ([]models.TravelPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only match your own travel plans")
	}

	matches, err := s.planRepo.FindOverlapping(ctx, plan.City, plan.StartDate, plan.EndDate, plan.UserID)
	if err != nil {
		return nil, err
	}

	for i := range matches {
		n := &models.Notification{
			UserID:  plan.UserID,
			Type:    models.NotificationTravelMatch,
			Title:   fmt.Sprintf("Travel match in %s", plan.City),
			Message: fmt.Sprintf("Another traveler will be in %s, %s during your trip.", matches[i].City, matches[i].Country),
		}
		n.SetRelatedEntity(models.EntityRef{Kind: models.EntityKindTravelPlan, ID: matches[i].ID})
		_ = s.notificationRepo.Create(ctx, n)
	}

	return matches, nil
}
