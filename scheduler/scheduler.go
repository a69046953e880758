package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	"winalyze/fetcher/assets"
	"winalyze/pkg/config"
	"winalyze/pkg/database"
	"winalyze/pkg/redis"
	"winalyze/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

// Standalone scheduler, keeps the shared redis version list and the reference table fresh
// so the api instances can run without their own jobs.
func main() {
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment")
		}
	}

	config.LoadEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	redisClient, err := redis.NewClient(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Couldn't connect to redis: %v", err)
	}
	defer redisClient.Close()

	deps := &jobs.Deps{
		Versions:       assets.NewVersionResolver(redisClient, config.Analysis.DDragonVersion),
		VersionRefresh: config.Analysis.VersionRefresh,
	}

	if config.Database.Enabled() {
		db, err := database.NewConnection(config.Database.URL)
		if err != nil {
			log.Fatal(err)
		}

		// Runs the migrations.
		rawDb, err := db.DB()
		if err != nil {
			log.Fatalf("Couldn't get raw db connection: %v", err)
		}
		defer rawDb.Close()

		if err := database.RunMigrations(rawDb, config.Database.MigrationsPath); err != nil {
			log.Fatal(err)
		}
		deps.DB = db
	}

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	if err := jobs.Register(s, deps); err != nil {
		log.Fatal(err)
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		err := s.Shutdown()
		if err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	log.Println("Shutting down scheduler...")
}
