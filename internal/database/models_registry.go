package database

import "travelmeetup/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM
// models, parent tables first so AutoMigrate can create foreign keys.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Connection{},
		&models.TravelPlan{},
		&models.Notification{},
	}
}
