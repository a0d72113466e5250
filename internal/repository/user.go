package repository

import (
	"context"
	"errors"
	"time"

	"travelmeetup/internal/cache"
	"travelmeetup/internal/models"
	"travelmeetup/internal/observability"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// cachedUser carries the full user row through the cache. The model's JSON
// view hides the credential (`json:"-"`), so caching the model directly would
// hand back users with an empty hash; the shadowing field keeps it.
type cachedUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var payload cachedUser
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &payload, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&payload.User, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		payload.PasswordHash = payload.User.PasswordHash
		return nil
	})

	if err != nil {
		return nil, err
	}
	payload.User.PasswordHash = payload.PasswordHash
	return &payload.User, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("create", "users")()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return classifyWriteError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	defer observability.TrackQuery("update", "users")()
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return classifyWriteError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Delete removes a user and every dependent row in one transaction: the
// connections where the user holds either column, the user's travel plans
// and the user's notifications. Either all of it lands or none of it does.
// The schema additionally declares ON DELETE CASCADE foreign keys, so the
// dependent deletes are also covered declaratively when those are active.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "users")()
	start := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user1_id = ? OR user2_id = ?", id, id).Delete(&models.Connection{}).Error; err != nil {
			return classifyWriteError(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.TravelPlan{}).Error; err != nil {
			return classifyWriteError(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return classifyWriteError(err)
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return classifyWriteError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("User", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	observability.CascadeDeleteDuration.Observe(time.Since(start).Seconds())
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("user_id").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
