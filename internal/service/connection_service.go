package service

import (
	"context"
	"fmt"

	"travelmeetup/internal/models"
	"travelmeetup/internal/repository"
)

// ConnectionService provides connection-request and relationship logic.
//
// Rows are stored canonically (smaller user id in user1_id), so the
// requester/receiver roles exist only at this layer: the service knows who
// initiated a request for notification purposes, but the storage does not
// record it.
type ConnectionService struct {
	connectionRepo   repository.ConnectionRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

// NewConnectionService returns a new ConnectionService.
func NewConnectionService(connectionRepo repository.ConnectionRepository, userRepo repository.UserRepository, notificationRepo repository.NotificationRepository) *ConnectionService {
	return &ConnectionService{
		connectionRepo:   connectionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// Request creates a pending connection between the requester and the target
// and notifies the target. The pair is stored smaller-id-first regardless of
// who initiated.
func (s *ConnectionService) Request(ctx context.Context, requesterID, targetID uint) (*models.Connection, error) {
	if requesterID == targetID {
		return nil, models.NewValidationError("Cannot request a connection with yourself")
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	existing, err := s.connectionRepo.GetBetweenUsers(ctx, requesterID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.ConnectionStatusAccepted:
			return nil, models.NewValidationError("You are already connected")
		case models.ConnectionStatusBlocked:
			return nil, models.NewValidationError("Connection is blocked")
		default:
			return nil, models.NewValidationError("Connection request already pending")
		}
	}

	u1, u2 := models.CanonicalPair(requesterID, targetID)
	conn := &models.Connection{
		User1ID: u1,
		User2ID: u2,
		Status:  models.ConnectionStatusPending,
	}
	if err := s.connectionRepo.Create(ctx, conn); err != nil {
		// A concurrent writer may have created the same canonical pair; the
		// unique index makes that an integrity error rather than a duplicate.
		return nil, err
	}

	n := &models.Notification{
		UserID:  targetID,
		Type:    models.NotificationConnectionRequest,
		Title:   "New connection request",
		Message: fmt.Sprintf("%s wants to connect with you.", requester.DisplayName),
	}
	n.SetRelatedEntity(models.EntityRef{Kind: models.EntityKindConnection, ID: conn.ID})
	_ = s.notificationRepo.Create(ctx, n)

	return conn, nil
}

// Accept moves a pending connection to accepted. Any participant may accept:
// the storage does not record who requested, so the service cannot restrict
// acceptance to the receiver.
func (s *ConnectionService) Accept(ctx context.Context, userID, connectionID uint) (*models.Connection, error) {
	return s.transition(ctx, userID, connectionID, models.ConnectionStatusAccepted)
}

// Block moves a pending or accepted connection to blocked.
func (s *ConnectionService) Block(ctx context.Context, userID, connectionID uint) (*models.Connection, error) {
	return s.transition(ctx, userID, connectionID, models.ConnectionStatusBlocked)
}

func (s *ConnectionService) transition(ctx context.Context, userID, connectionID uint, to models.ConnectionStatus) (*models.Connection, error) {
	conn, err := s.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.Involves(userID) {
		return nil, models.NewUnauthorizedError("You are not a participant of this connection")
	}

	// The schema allows any of the three values; transition legality is
	// service policy only.
	if to == models.ConnectionStatusAccepted && conn.Status != models.ConnectionStatusPending {
		return nil, models.NewValidationError("Connection is not pending")
	}
	if conn.Status == to {
		return conn, nil
	}

	if err := s.connectionRepo.UpdateStatus(ctx, connectionID, to); err != nil {
		return nil, err
	}
	return s.connectionRepo.GetByID(ctx, connectionID)
}

// Remove deletes a connection. Only a participant may remove it.
func (s *ConnectionService) Remove(ctx context.Context, userID, connectionID uint) error {
	conn, err := s.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if !conn.Involves(userID) {
		return models.NewUnauthorizedError("You are not a participant of this connection")
	}
	return s.connectionRepo.Delete(ctx, connectionID)
}

// ListInitiated returns the connections where the user holds the user1 column.
func (s *ConnectionService) ListInitiated(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.connectionRepo.ListInitiated(ctx, userID)
}

// ListReceived returns the connections where the user holds the user2 column.
func (s *ConnectionService) ListReceived(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.connectionRepo.ListReceived(ctx, userID)
}

// ListConnections returns every connection involving the user.
func (s *ConnectionService) ListConnections(ctx context.Context, userID uint) ([]models.Connection, error) {
	return s.connectionRepo.ListForUser(ctx, userID)
}

// StatusBetween reports the connection status between two users, or "" when
// no connection exists.
func (s *ConnectionService) StatusBetween(ctx context.Context, userID, otherID uint) (models.ConnectionStatus, error) {
	conn, err := s.connectionRepo.GetBetweenUsers(ctx, userID, otherID)
	if err != nil {
		return "", err
	}
	if conn == nil {
		return "", nil
	}
	return conn.Status, nil
}
