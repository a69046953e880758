package handlers

import (
	"context"
	"errors"
	"net/http"
	"winalyze/api/dto"
	"winalyze/api/filters"
	analysisservice "winalyze/api/services/analysis"
	collectorservice "winalyze/api/services/collector"
	"winalyze/fetcher/requests"
	"winalyze/pkg/stats"

	"github.com/gin-gonic/gin"
)

// Operations of the analysis service used by the endpoints.
type AnalysisService interface {
	StartAnalysis(ctx context.Context, filter *filters.AnalysisFilter) (*dto.AnalysisCreated, error)
	GetSummary(ctx context.Context, sessionId, tier string) (*dto.Summary, error)
	GetPage(ctx context.Context, sessionId string, page int) (*dto.MatchPage, error)
	Navigate(ctx context.Context, sessionId, direction string) (*dto.MatchPage, error)
	GetLeaderboards(ctx context.Context, sessionId string) (*dto.Leaderboards, error)
	ListReferences(ctx context.Context) ([]stats.RankReference, error)
}

// AnalysisHandler is the handler for the analysis endpoints.
type AnalysisHandler struct {
	analysisService AnalysisService
}

type AnalysisHandlerDependencies struct {
	AnalysisService AnalysisService
}

// NewAnalysisHandler creates a new instance of the analysis handler.
func NewAnalysisHandler(deps *AnalysisHandlerDependencies) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: deps.AnalysisService,
	}
}

// PostAnalysis runs a fetch cycle and returns the new session.
func (h *AnalysisHandler) PostAnalysis(c *gin.Context) {
	var body filters.AnalysisBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewAnalysisFilter(&body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analysisService.StartAnalysis(c.Request.Context(), filter)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetSummary handles requests for the metrics and the radar of a session.
func (h *AnalysisHandler) GetSummary(c *gin.Context) {
	uri, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.SummaryQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analysisService.GetSummary(c.Request.Context(), uri.SessionId, qp.Rank)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatches handles requests for a page of the match history.
func (h *AnalysisHandler) GetMatches(c *gin.Context) {
	uri, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.MatchesQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analysisService.GetPage(c.Request.Context(), uri.SessionId, qp.Page)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PostNavigate moves the current page of a session.
func (h *AnalysisHandler) PostNavigate(c *gin.Context) {
	uri, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.NavigateQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analysisService.Navigate(c.Request.Context(), uri.SessionId, qp.Direction)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLeaderboards handles requests for the champion rankings of a session.
func (h *AnalysisHandler) GetLeaderboards(c *gin.Context) {
	uri, err := h.bindURIParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.analysisService.GetLeaderboards(c.Request.Context(), uri.SessionId)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReferences returns the rank reference table.
func (h *AnalysisHandler) GetReferences(c *gin.Context) {
	result, err := h.analysisService.ListReferences(c.Request.Context())
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"references": result})
}

// Helper to bind the session URI params.
func (h *AnalysisHandler) bindURIParams(c *gin.Context) (*filters.SessionURIParams, error) {
	var uri filters.SessionURIParams
	if err := c.ShouldBindUri(&uri); err != nil {
		return nil, err
	}
	return &uri, nil
}

// errorStatus maps a service error to its http status.
func errorStatus(err error) int {
	var validationErr filters.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, analysisservice.ErrInvalidDirection):
		return http.StatusBadRequest
	case errors.Is(err, analysisservice.ErrSessionNotFound),
		errors.Is(err, collectorservice.ErrPlayerNotFound),
		errors.Is(err, collectorservice.ErrNoMatchesFound):
		return http.StatusNotFound
	case errors.Is(err, collectorservice.ErrAnalysisInProgress):
		return http.StatusTooManyRequests
	case errors.Is(err, collectorservice.ErrProfileUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, requests.ErrMissingApiKey):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
