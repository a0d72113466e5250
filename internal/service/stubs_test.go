package service

import (
	"context"
	"time"

	"travelmeetup/internal/models"
)

// Function-field stubs for the repository interfaces. Methods without a
// configured function fall back to a harmless default so each test only wires
// the calls it cares about.

type stubUserRepo struct {
	GetByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	CreateFn        func(ctx context.Context, user *models.User) error
	UpdateFn        func(ctx context.Context, user *models.User) error
	DeleteFn        func(ctx context.Context, id uint) error
	ListFn          func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &models.User{ID: id, Username: "stub", DisplayName: "Stub", IsActive: true}, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.GetByEmailFn != nil {
		return s.GetByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.GetByUsernameFn != nil {
		return s.GetByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit, offset)
	}
	return nil, nil
}

type stubConnectionRepo struct {
	CreateFn          func(ctx context.Context, conn *models.Connection) error
	GetByIDFn         func(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsersFn func(ctx context.Context, userID1, userID2 uint) (*models.Connection, error)
	ListInitiatedFn   func(ctx context.Context, userID uint) ([]models.Connection, error)
	ListReceivedFn    func(ctx context.Context, userID uint) ([]models.Connection, error)
	ListForUserFn     func(ctx context.Context, userID uint) ([]models.Connection, error)
	ListAcceptedFn    func(ctx context.Context, userID uint) ([]models.Connection, error)
	UpdateStatusFn    func(ctx context.Context, connectionID uint, status models.ConnectionStatus) error
	DeleteFn          func(ctx context.Context, connectionID uint) error
}

func (s *stubConnectionRepo) Create(ctx context.Context, conn *models.Connection) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, conn)
	}
	conn.ID = 1
	return nil
}

func (s *stubConnectionRepo) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Connection", id)
}

func (s *stubConnectionRepo) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	if s.GetBetweenUsersFn != nil {
		return s.GetBetweenUsersFn(ctx, userID1, userID2)
	}
	return nil, nil
}

func (s *stubConnectionRepo) ListInitiated(ctx context.Context, userID uint) ([]models.Connection, error) {
	if s.ListInitiatedFn != nil {
		return s.ListInitiatedFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubConnectionRepo) ListReceived(ctx context.Context, userID uint) ([]models.Connection, error) {
	if s.ListReceivedFn != nil {
		return s.ListReceivedFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubConnectionRepo) ListForUser(ctx context.Context, userID uint) ([]models.Connection, error) {
	if s.ListForUserFn != nil {
		return s.ListForUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubConnectionRepo) ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error) {
	if s.ListAcceptedFn != nil {
		return s.ListAcceptedFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubConnectionRepo) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, connectionID, status)
	}
	return nil
}

func (s *stubConnectionRepo) Delete(ctx context.Context, connectionID uint) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, connectionID)
	}
	return nil
}

type stubTravelPlanRepo struct {
	CreateFn           func(ctx context.Context, plan *models.TravelPlan) error
	GetByIDFn          func(ctx context.Context, id uint) (*models.TravelPlan, error)
	UpdateFn           func(ctx context.Context, plan *models.TravelPlan) error
	DeleteFn           func(ctx context.Context, id uint) error
	ListByUserFn       func(ctx context.Context, userID uint) ([]models.TravelPlan, error)
	ListPublicByCityFn func(ctx context.Context, city string, limit, offset int) ([]models.TravelPlan, error)
	FindOverlappingFn  func(ctx context.Context, city string, start, end time.Time, excludeUserID uint) ([]models.TravelPlan, error)
}

func (s *stubTravelPlanRepo) Create(ctx context.Context, plan *models.TravelPlan) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, plan)
	}
	plan.ID = 1
	return nil
}

func (s *stubTravelPlanRepo) GetByID(ctx context.Context, id uint) (*models.TravelPlan, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("TravelPlan", id)
}

func (s *stubTravelPlanRepo) Update(ctx context.Context, plan *models.TravelPlan) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, plan)
	}
	return nil
}

func (s *stubTravelPlanRepo) Delete(ctx context.Context, id uint) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *stubTravelPlanRepo) ListByUser(ctx context.Context, userID uint) ([]models.TravelPlan, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubTravelPlanRepo) ListPublicByCity(ctx context.Context, city string, limit, offset int) ([]models.TravelPlan, error) {
	if s.ListPublicByCityFn != nil {
		return s.ListPublicByCityFn(ctx, city, limit, offset)
	}
	return nil, nil
}

func (s *stubTravelPlanRepo) FindOverlapping(ctx context.Context, city string, start, end time.Time, excludeUserID uint) ([]models.TravelPlan, error) {
	if s.FindOverlappingFn != nil {
		return s.FindOverlappingFn(ctx, city, start, end, excludeUserID)
	}
	return nil, nil
}

type stubNotificationRepo struct {
	CreateFn      func(ctx context.Context, n *models.Notification) error
	GetByIDFn     func(ctx context.Context, id uint) (*models.Notification, error)
	ListByUserFn  func(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]models.Notification, error)
	CountUnreadFn func(ctx context.Context, userID uint) (int64, error)
	MarkReadFn    func(ctx context.Context, id uint) error
	MarkAllReadFn func(ctx context.Context, userID uint) error
	DeleteFn      func(ctx context.Context, id uint) error

	created []models.Notification
}

func (s *stubNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, n)
	}
	n.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *n)
	return nil
}

func (s *stubNotificationRepo) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Notification", id)
}

func (s *stubNotificationRepo) ListByUser(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]models.Notification, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, unreadOnly, limit, offset)
	}
	return nil, nil
}

func (s *stubNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if s.CountUnreadFn != nil {
		return s.CountUnreadFn(ctx, userID)
	}
	return 0, nil
}

func (s *stubNotificationRepo) MarkRead(ctx context.Context, id uint) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, id)
	}
	return nil
}

func (s *stubNotificationRepo) MarkAllRead(ctx context.Context, userID uint) error {
	if s.MarkAllReadFn != nil {
		return s.MarkAllReadFn(ctx, userID)
	}
	return nil
}

func (s *stubNotificationRepo) Delete(ctx context.Context, id uint) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
