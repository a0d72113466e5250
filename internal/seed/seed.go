package seed

import (
	"fmt"
	"log/slog"

	"travelmeetup/internal/models"
	"travelmeetup/internal/observability"

	"gorm.io/gorm"
)

// Options controls how much demo data Run generates.
type Options struct {
	Users          int
	PlansPerUser   int
	ConnectionProb float64
	Seed           int64
}

// DefaultOptions returns a small, fast preset.
func DefaultOptions() Options {
	return Options{
		Users:          25,
		PlansPerUser:   2,
		ConnectionProb: 0.2,
		Seed:           1,
	}
}

// Run populates the database with a demo mesh: users, a random set of
// connections between them (pending requests carry the matching
// notification) and travel plans.
func Run(db *gorm.DB, opts Options) error {
	if opts.Users < 2 {
		return fmt.Errorf("need at least 2 users to seed a mesh, got %d", opts.Users)
	}

	f := NewFactory(db, opts.Seed)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser(i)
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		users = append(users, u)
	}

	var connections, notifications int
	for i := 0; i < len(users); i++ {
		for j := i + 1; j < len(users); j++ {
			if f.rand.Float64() >= opts.ConnectionProb {
				continue
			}

			status := models.ConnectionStatusAccepted
			if f.rand.Intn(3) == 0 {
				status = models.ConnectionStatusPending
			}
			conn, err := f.CreateConnection(users[i], users[j], status)
			if err != nil {
				return fmt.Errorf("seed connection %d-%d: %w", users[i].ID, users[j].ID, err)
			}
			connections++

			if status == models.ConnectionStatusPending {
				if _, err := f.CreateConnectionRequestNotification(users[j], users[i], conn); err != nil {
					return fmt.Errorf("seed notification: %w", err)
				}
				notifications++
			}
		}
	}

	var plans int
	for _, u := range users {
		for p := 0; p < opts.PlansPerUser; p++ {
			if _, err := f.CreateTravelPlan(u); err != nil {
				return fmt.Errorf("seed travel plan for user %d: %w", u.ID, err)
			}
			plans++
		}
	}

	observability.GlobalLogger.Info("Seed complete",
		slog.Int("users", len(users)),
		slog.Int("connections", connections),
		slog.Int("travel_plans", plans),
		slog.Int("notifications", notifications),
	)
	return nil
}
