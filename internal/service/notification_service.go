package service

import (
	"context"

	"travelmeetup/internal/models"
	"travelmeetup/internal/repository"
)

// NotificationService provides notification delivery and inbox logic.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Notify creates a notification for the recipient. The optional related
// entity reference is validated as a known kind before it is stored; the
// schema keeps it soft, with no foreign key behind it.
func (s *NotificationService) Notify(ctx context.Context, recipientID uint, typ models.NotificationType, title, message string, ref *models.EntityRef) (*models.Notification, error) {
	if title == "" || message == "" {
		return nil, models.NewValidationError("title and message are required")
	}
	if len(title) > 200 {
		return nil, models.NewValidationError("title must be at most 200 characters")
	}
	if len(message) > 1000 {
		return nil, models.NewValidationError("message must be at most 1000 characters")
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	n := &models.Notification{
		UserID:  recipientID,
		Type:    typ,
		Title:   title,
		Message: message,
	}
	if ref != nil {
		if !ref.Kind.Valid() {
			return nil, models.NewValidationError("unknown related entity kind")
		}
		n.SetRelatedEntity(*ref)
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List returns the recipient's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.notificationRepo.ListByUser(ctx, userID, unreadOnly, limit, offset)
}

// UnreadCount returns the number of unread notifications for the recipient.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkRead marks one notification read. Only the recipient may do so.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return models.NewUnauthorizedError("You can only mark your own notifications")
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

// MarkAllRead marks every unread notification of the recipient read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes a notification. Only the recipient may do so.
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID uint) error {
	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own notifications")
	}
	return s.notificationRepo.Delete(ctx, notificationID)
}
