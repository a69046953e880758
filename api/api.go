package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"winalyze/api/cache"
	"winalyze/api/modules"
	repositories "winalyze/api/repositories/reference"
	"winalyze/api/routes"
	analysisservice "winalyze/api/services/analysis"
	"winalyze/fetcher/assets"
	"winalyze/fetcher/data"
	"winalyze/fetcher/requests"
	"winalyze/pkg/config"
	"winalyze/pkg/database"
	"winalyze/pkg/health"
	"winalyze/pkg/logger"
	"winalyze/pkg/redis"
	"winalyze/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment")
		}
	}

	config.LoadEnv()
	if config.ApiKey == "" {
		log.Println("RIOT_API_KEY is not set, analyses will fail until it is provided")
	}

	fileLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}
	defer fileLogger.Close()

	deps := &modules.ModuleDependencies{
		Fetchers: data.NewFetcherPool(requests.RiotHost, nil),
		Logger:   fileLogger,
	}

	// Redis is optional, it shares the cooldowns and the version list between instances.
	var versionCache assets.VersionCache
	if config.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := redis.NewClient(ctx)
		cancel()
		if err != nil {
			log.Printf("Running without redis: %v", err)
		} else {
			defer redisClient.Close()
			deps.Redis = redisClient
			versionCache = redisClient
		}
	}

	// The reference table lives on postgres when configured.
	db := connectDatabase()
	if db != nil {
		deps.References = repositories.NewReferenceRepository(db)
	} else {
		deps.References = repositories.NewStaticReferenceRepository()
	}

	versions := assets.NewVersionResolver(versionCache, config.Analysis.DDragonVersion)
	deps.Versions = versions

	sessions := cache.NewMemCache[*analysisservice.Session](time.Minute)
	defer sessions.Close()
	deps.Sessions = sessions

	// Periodic jobs.
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := jobs.Register(scheduler, &jobs.Deps{
		Versions:       versions,
		DB:             db,
		VersionRefresh: config.Analysis.VersionRefresh,
	}); err != nil {
		log.Fatal(err)
	}
	scheduler.Start()

	healthServer, err := health.Start(":" + config.Server.GRPCHealthPort)
	if err != nil {
		log.Fatalf("Couldn't start the health server: %v", err)
	}
	deps.Health = healthServer

	// Create a module with all necessary handlers.
	module := modules.NewModule(deps)

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.AnalysisHandler,
		module.HealthHandler,
	)

	server := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: router.Engine,
	}

	go func() {
		log.Printf("Running api on %s.", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutting down api...")

	// Stop receiving traffic before the server goes away.
	healthServer.SetServing(false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down the server: %v", err)
	}
	if err := scheduler.Shutdown(); err != nil {
		log.Printf("Error shutting down scheduler: %v", err)
	}
	healthServer.Stop()

	if config.Bucket.Enabled() {
		key := logger.ObjectKey("api", time.Now())
		if err := fileLogger.UploadToS3Bucket(ctx, key); err != nil {
			log.Printf("Couldn't upload the logs: %v", err)
		} else {
			fileLogger.CleanFile()
		}
	}
}

// connectDatabase opens postgres, applies the migrations and seeds the references.
// Returns nil when postgres isn't configured or can't be used.
func connectDatabase() *gorm.DB {
	if !config.Database.Enabled() {
		return nil
	}

	db, err := database.NewConnection(config.Database.URL)
	if err != nil {
		log.Printf("Running without the database: %v", err)
		return nil
	}

	rawDb, err := db.DB()
	if err != nil {
		log.Printf("Couldn't get raw db connection: %v", err)
		return nil
	}

	if err := database.RunMigrations(rawDb, config.Database.MigrationsPath); err != nil {
		log.Printf("Running without the database: %v", err)
		rawDb.Close()
		return nil
	}

	return db
}
