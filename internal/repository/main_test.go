package repository

import (
	"fmt"
	"testing"
	"time"

	"travelmeetup/internal/database"
	"travelmeetup/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with foreign keys
// enabled and the full schema applied. SQLite enforces the same unique,
// check and foreign-key constraints the Postgres schema declares, which is
// what these tests exercise.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// One connection keeps the in-memory database and its pragmas alive.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// createUser persists a user with unique email/username derived from name.
func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("%s@example.com", name),
		Username:     name,
		DisplayName:  name,
		PasswordHash: "x",
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

// seedPlan builds an unsaved week-long public plan for the owner.
func seedPlan(userID uint) *models.TravelPlan {
	return &models.TravelPlan{
		UserID:    userID,
		City:      "Lisbon",
		Country:   "Portugal",
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC),
		Purpose:   models.PurposeVacation,
		IsPublic:  true,
	}
}
