package modules

import (
	"winalyze/api/handlers"
	analysisservice "winalyze/api/services/analysis"
	collectorservice "winalyze/api/services/collector"
	"winalyze/pkg/config"
)

func initializeAnalysisHandler(deps *ModuleDependencies) *handlers.AnalysisHandler {
	collectorDeps := &collectorservice.CollectorServiceDeps{
		Providers: providerFactory(deps),
		Logger:    deps.Logger,
		Cooldown:  config.Analysis.Cooldown,
	}
	// Keep the interface nil without redis.
	if deps.Redis != nil {
		collectorDeps.Redis = deps.Redis
	}

	collectorService := collectorservice.NewCollectorService(collectorDeps)

	// Initialize the analysis service and handler.
	analysisDeps := &analysisservice.AnalysisServiceDeps{
		Collector:  collectorService,
		Sessions:   deps.Sessions,
		Versions:   deps.Versions,
		References: deps.References,
		Logger:     deps.Logger,
		SessionTTL: config.Analysis.SessionTTL,
		PageSize:   config.Analysis.PageSize,
	}

	analysisService := analysisservice.NewAnalysisService(analysisDeps)

	analysisHandlerDeps := &handlers.AnalysisHandlerDependencies{
		AnalysisService: analysisService,
	}

	return handlers.NewAnalysisHandler(analysisHandlerDeps)
}

// providerFactory hands out the pooled fetcher of each platform.
func providerFactory(deps *ModuleDependencies) collectorservice.ProviderFactory {
	return func(platform string) (collectorservice.Provider, error) {
		fetcher, err := deps.Fetchers.ForPlatform(platform)
		if err != nil {
			return nil, err
		}
		return fetcher, nil
	}
}
