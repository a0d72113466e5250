// Command seed populates the database with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"travelmeetup/internal/config"
	"travelmeetup/internal/database"
	"travelmeetup/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	plansPerUser := flag.Int("plans", 2, "Travel plans per user")
	connectionProb := flag.Float64("connect-prob", 0.2, "Probability of a connection between any user pair")
	seedValue := flag.Int64("seed", 1, "Random seed for reproducible data")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.ApplySchema(context.Background(), db, cfg); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	opts := seed.Options{
		Users:          *numUsers,
		PlansPerUser:   *plansPerUser,
		ConnectionProb: *connectionProb,
		Seed:           *seedValue,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users with demo connections and travel plans", *numUsers)
}
