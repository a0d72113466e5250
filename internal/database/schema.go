package database

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"travelmeetup/internal/config"

	"gorm.io/gorm"
)

// Schema management modes.
const (
	SchemaModeHybrid = "hybrid"
	SchemaModeSQL    = "sql"
	SchemaModeAuto   = "auto"
)

func isProdLikeEnv(env string) bool {
	e := strings.ToLower(strings.TrimSpace(env))
	return e == "production" || e == "prod" || e == "staging" || e == "stage"
}

// schemaPolicy decides how the schema is applied. Prod-like environments run
// only the versioned SQL migrations; development and test additionally run
// AutoMigrate so model changes land without writing a migration first. The
// SQL migrations and the model tags declare the same constraints.
func schemaPolicy(cfg *config.Config) (runSQL bool, runAuto bool) {
	if isProdLikeEnv(cfg.Environment) {
		return true, false
	}
	return true, true
}

func runAutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(PersistentModels()...)
}

// ApplySchema brings the database schema up to date per the environment's
// schema policy.
func ApplySchema(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	runSQL, runAuto := schemaPolicy(cfg)

	// SQLite (tests) cannot run the Postgres migration scripts; AutoMigrate
	// carries the full constraint set there.
	if db.Dialector.Name() != "postgres" {
		runSQL = false
		runAuto = true
	}

	if runSQL {
		if err := RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("run sql migrations: %w", err)
		}
	}

	if runAuto {
		if err := runAutoMigrate(db); err != nil {
			return fmt.Errorf("auto-migrate models: %w", err)
		}
	}

	return nil
}

// SchemaStatus summarizes what ApplySchema would do.
type SchemaStatus struct {
	Environment        string
	WillRunSQL         bool
	WillRunAutoMigrate bool
	AppliedVersions    []int
	PendingMigrations  []Migration
}

// InspectSchema reports applied and pending migrations without changing
// anything.
func InspectSchema(ctx context.Context, db *gorm.DB, cfg *config.Config) (*SchemaStatus, error) {
	runSQL, runAuto := schemaPolicy(cfg)
	status := &SchemaStatus{
		Environment:        cfg.Environment,
		WillRunSQL:         runSQL,
		WillRunAutoMigrate: runAuto,
	}

	applied, err := NewMigrationStore(db).GetAppliedMigrations(ctx)
	if err != nil {
		return nil, err
	}
	status.AppliedVersions = applied

	for _, m := range migrations {
		if !slices.Contains(applied, m.Version) {
			status.PendingMigrations = append(status.PendingMigrations, m)
		}
	}
	return status, nil
}
