// Package service contains the business logic of the application.
package service

import (
	"context"
	"fmt"
	"time"

	"travelmeetup/internal/models"
	"travelmeetup/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides account and profile business logic.
type UserService struct {
	userRepo         repository.UserRepository
	connectionRepo   repository.ConnectionRepository
	notificationRepo repository.NotificationRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, connectionRepo repository.ConnectionRepository, notificationRepo repository.NotificationRepository) *UserService {
	return &UserService{
		userRepo:         userRepo,
		connectionRepo:   connectionRepo,
		notificationRepo: notificationRepo,
	}
}

// RegisterInput carries the caller-supplied fields for a new account.
// Timestamps and the id are system-assigned.
type RegisterInput struct {
	Email       string
	Username    string
	DisplayName string
	Password    string
	Bio         string
	HomeCity    string
}

// Register creates a new user with a bcrypt-hashed password credential.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.Username == "" || in.DisplayName == "" {
		return nil, models.NewValidationError("email, username and display name are required")
	}
	if in.Password == "" {
		return nil, models.NewValidationError("password is required")
	}
	if len(in.Bio) > 500 {
		return nil, models.NewValidationError("bio must be at most 500 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:        in.Email,
		Username:     in.Username,
		DisplayName:  in.DisplayName,
		PasswordHash: string(hash),
		Bio:          in.Bio,
		HomeCity:     in.HomeCity,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if intErr, ok := models.IsIntegrityViolation(err); ok && intErr.Kind == models.IntegrityUnique {
			return nil, models.NewValidationError("email or username already in use")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the password for the account with the given email and
// stamps last_login. Token issuance is the caller's concern.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile returns the user with the given id.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	DisplayName       *string
	Bio               *string
	ProfilePictureURL *string
	HomeCity          *string
}

// UpdateProfile applies the update and fans out a profile_update notification
// to every accepted connection of the user.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.DisplayName != nil {
		if *update.DisplayName == "" {
			return nil, models.NewValidationError("display name cannot be empty")
		}
		user.DisplayName = *update.DisplayName
	}
	if update.Bio != nil {
		if len(*update.Bio) > 500 {
			return nil, models.NewValidationError("bio must be at most 500 characters")
		}
		user.Bio = *update.Bio
	}
	if update.ProfilePictureURL != nil {
		user.ProfilePictureURL = *update.ProfilePictureURL
	}
	if update.HomeCity != nil {
		user.HomeCity = *update.HomeCity
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.notifyConnectionsOfUpdate(ctx, user)
	return user, nil
}

// notifyConnectionsOfUpdate is best-effort: a failed notification does not
// roll back the profile write.
func (s *UserService) notifyConnectionsOfUpdate(ctx context.Context, user *models.User) {
	conns, err := s.connectionRepo.ListAccepted(ctx, user.ID)
	if err != nil {
		return
	}

	for i := range conns {
		other := conns[i].OtherUser(user.ID)
		if other == 0 {
			continue
		}
		n := &models.Notification{
			UserID:  other,
			Type:    models.NotificationProfileUpdate,
			Title:   fmt.Sprintf("%s updated their profile", user.DisplayName),
			Message: fmt.Sprintf("Your connection %s has new profile details.", user.DisplayName),
		}
		n.SetRelatedEntity(models.EntityRef{Kind: models.EntityKindUser, ID: user.ID})
		_ = s.notificationRepo.Create(ctx, n)
	}
}

// Deactivate flips the account inactive without deleting any rows.
func (s *UserService) Deactivate(ctx context.Context, userID uint) error {
	return s.setActive(ctx, userID, false)
}

// Reactivate flips the account back to active.
func (s *UserService) Reactivate(ctx context.Context, userID uint) error {
	return s.setActive(ctx, userID, true)
}

func (s *UserService) setActive(ctx context.Context, userID uint, active bool) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	return s.userRepo.Update(ctx, user)
}

// DeleteAccount removes the user and, in the same transaction, every
// connection, travel plan and notification owned by the user.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}
