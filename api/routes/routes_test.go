package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"winalyze/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	analysisHandler := handlers.NewAnalysisHandler(&handlers.AnalysisHandlerDependencies{})
	healthHandler := handlers.NewHealthHandler(&handlers.HealthHandlerDependencies{})

	// Unknown handlers are ignored.
	router.SetupRoutes(analysisHandler, healthHandler, "not a handler")

	registered := make(map[string]bool)
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/analysis",
		"GET /api/v1/analysis/:sessionId/summary",
		"GET /api/v1/analysis/:sessionId/matches",
		"POST /api/v1/analysis/:sessionId/navigate",
		"GET /api/v1/analysis/:sessionId/leaderboards",
		"GET /api/v1/references",
		"GET /health",
	}
	assert.Len(t, registered, len(expected))
	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
}

func TestHealthRoute(t *testing.T) {
	router := setupTestRouter()
	router.SetupRoutes(handlers.NewHealthHandler(&handlers.HealthHandlerDependencies{}))

	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
