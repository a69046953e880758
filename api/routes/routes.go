package routes

import (
	"winalyze/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.AnalysisHandler:
			r.registerAnalysisHandler(handler)
		case *handlers.HealthHandler:
			r.registerHealthHandler(handler)
		}
	}
}

// Register the analysis handler.
func (r *Router) registerAnalysisHandler(handler *handlers.AnalysisHandler) {
	analysis := r.api.Group("/analysis")
	{
		analysis.POST("", handler.PostAnalysis)
		analysis.GET("/:sessionId/summary", handler.GetSummary)
		analysis.GET("/:sessionId/matches", handler.GetMatches)
		analysis.POST("/:sessionId/navigate", handler.PostNavigate)
		analysis.GET("/:sessionId/leaderboards", handler.GetLeaderboards)
	}

	r.api.GET("/references", handler.GetReferences)
}

// Register the health handler, outside of the versioned group.
func (r *Router) registerHealthHandler(handler *handlers.HealthHandler) {
	r.Engine.GET("/health", handler.GetHealth)
}
