// Package repository implements the data access layer for the application.
package repository

import (
	"errors"
	"strings"

	"travelmeetup/internal/models"
	"travelmeetup/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes for constraint violations.
const (
	pgCodeNotNull    = "23502"
	pgCodeForeignKey = "23503"
	pgCodeUnique     = "23505"
	pgCodeCheck      = "23514"
)

// classifyWriteError maps a driver error to a structured integrity violation,
// or wraps it as an internal error. Postgres errors carry a SQLSTATE and
// constraint name; SQLite (used in tests) only gives a message prefix.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUnique:
			return integrityError(models.IntegrityUnique, pgErr.ConstraintName, err)
		case pgCodeForeignKey:
			return integrityError(models.IntegrityForeignKey, pgErr.ConstraintName, err)
		case pgCodeCheck:
			return integrityError(models.IntegrityCheck, pgErr.ConstraintName, err)
		case pgCodeNotNull:
			return integrityError(models.IntegrityNotNull, pgErr.ColumnName, err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return integrityError(models.IntegrityUnique, "", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return integrityError(models.IntegrityForeignKey, "", err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return integrityError(models.IntegrityCheck, "", err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key"):
		return integrityError(models.IntegrityUnique, sqliteConstraintName(err), err)
	case strings.Contains(msg, "foreign key constraint"):
		return integrityError(models.IntegrityForeignKey, "", err)
	case strings.Contains(msg, "check constraint"):
		return integrityError(models.IntegrityCheck, sqliteConstraintName(err), err)
	case strings.Contains(msg, "not null constraint"):
		return integrityError(models.IntegrityNotNull, sqliteConstraintName(err), err)
	}

	return models.NewInternalError(err)
}

func integrityError(kind models.IntegrityKind, constraint string, err error) error {
	observability.IntegrityViolations.WithLabelValues(string(kind)).Inc()
	return models.NewIntegrityError(kind, constraint, err)
}

// sqliteConstraintName pulls the name out of messages shaped like
// "CHECK constraint failed: chk_connections_user_order".
func sqliteConstraintName(err error) string {
	msg := err.Error()
	idx := strings.LastIndex(msg, "constraint failed: ")
	if idx < 0 {
		return ""
	}
	name := msg[idx+len("constraint failed: "):]
	if end := strings.IndexAny(name, " (\n"); end > 0 {
		name = name[:end]
	}
	return strings.TrimSpace(name)
}
