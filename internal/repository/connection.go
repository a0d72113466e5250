package repository

import (
	"context"
	"errors"

	"travelmeetup/internal/models"
	"travelmeetup/internal/observability"

	"gorm.io/gorm"
)

// ConnectionRepository defines persistence operations for connections.
//
// Create passes rows through as given: the user1_id < user2_id ordering is a
// schema invariant, and a write with the columns swapped is rejected by the
// check constraint. Canonicalization is the service layer's job.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error)
	ListInitiated(ctx context.Context, userID uint) ([]models.Connection, error)
	ListReceived(ctx context.Context, userID uint) ([]models.Connection, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Connection, error)
	ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error)
	UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error
	Delete(ctx context.Context, connectionID uint) error
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository returns a new ConnectionRepository implementation.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	defer observability.TrackQuery("create", "connections")()
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).First(&conn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

// GetBetweenUsers is order-insensitive: callers pass the pair in any order
// and the lookup normalizes to the canonical columns. Returns nil, nil when
// no connection exists.
func (r *connectionRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	u1, u2 := models.CanonicalPair(userID1, userID2)

	var conn models.Connection
	if err := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

// ListInitiated returns the rows where the user holds the user1 column.
func (r *connectionRepository) ListInitiated(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("user1_id = ?", userID).
		Order("connection_id").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

// ListReceived returns the rows where the user holds the user2 column.
func (r *connectionRepository) ListReceived(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("user2_id = ?", userID).
		Order("connection_id").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

// ListForUser returns every connection the user participates in, either role.
func (r *connectionRepository) ListForUser(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("connection_id").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

// ListAccepted returns the user's established connections.
func (r *connectionRepository) ListAccepted(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND status = ?", userID, userID, models.ConnectionStatusAccepted).
		Order("connection_id").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, connectionID uint, status models.ConnectionStatus) error {
	defer observability.TrackQuery("update", "connections")()
	res := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("connection_id = ?", connectionID).
		Update("status", status)
	if res.Error != nil {
		return classifyWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Connection", connectionID)
	}
	return nil
}

func (r *connectionRepository) Delete(ctx context.Context, connectionID uint) error {
	defer observability.TrackQuery("delete", "connections")()
	res := r.db.WithContext(ctx).Delete(&models.Connection{}, connectionID)
	if res.Error != nil {
		return classifyWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Connection", connectionID)
	}
	return nil
}
