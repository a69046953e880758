package modules

import "winalyze/api/handlers"

func initializeHealthHandler(deps *ModuleDependencies) *handlers.HealthHandler {
	return handlers.NewHealthHandler(&handlers.HealthHandlerDependencies{
		Reporter: deps.Health,
	})
}
