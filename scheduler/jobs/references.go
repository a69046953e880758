package jobs

import (
	"context"
	"log"
	"time"
	repositories "winalyze/api/repositories/reference"
	"winalyze/pkg/stats"

	"gorm.io/gorm"
)

// SeedReferences inserts the built-in tiers missing from the reference table.
func SeedReferences(db *gorm.DB) error {
	log.Println("Starting rank reference seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repositories.SeedReferences(ctx, db, stats.DefaultReferences()); err != nil {
		log.Printf("Error seeding the rank references: %v", err)
		return err
	}

	log.Println("Rank reference seed completed successfully")
	return nil
}
