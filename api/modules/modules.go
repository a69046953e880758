package modules

import (
	"winalyze/api/cache"
	"winalyze/api/handlers"
	repositories "winalyze/api/repositories/reference"
	analysisservice "winalyze/api/services/analysis"
	"winalyze/fetcher/assets"
	"winalyze/fetcher/data"
	"winalyze/pkg/logger"
	"winalyze/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	AnalysisHandler *handlers.AnalysisHandler
	HealthHandler   *handlers.HealthHandler
}

// Everything the handlers are built from.
// Redis and Health may be nil.
type ModuleDependencies struct {
	Fetchers   *data.FetcherPool
	Health     handlers.HealthReporter
	Logger     logger.Logger
	Redis      *redis.RedisClient
	References repositories.ReferenceRepository
	Sessions   *cache.MemCache[*analysisservice.Session]
	Versions   *assets.VersionResolver
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:          router,
		AnalysisHandler: initializeAnalysisHandler(deps),
		HealthHandler:   initializeHealthHandler(deps),
	}
}
