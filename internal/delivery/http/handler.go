package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/repulens/backend/internal/domain"
	"github.com/repulens/backend/internal/usecase"
	"go.uber.org/zap"
)

const (
	serviceName    = "repulens-backend"
	serviceVersion = "1.0.0"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error      string            `json:"error"`
	Suggestion string            `json:"suggestion,omitempty"`
	Details    string            `json:"details,omitempty"`
	DebugInfo  *domain.DebugInfo `json:"debugInfo,omitempty"`
}

// failure describes how an operation reports errors to the client
type failure struct {
	invalid    string // 400 message
	internal   string // 500 message
	suggestion string // 500 suggestion
}

var (
	analyzeFailure = failure{
		invalid:    "Business name is required",
		internal:   "Failed to analyze reputation",
		suggestion: "Check your SERP_API key and try again",
	}
	searchFailure = failure{
		invalid:  "Search query is required",
		internal: "Failed to search businesses",
	}
	reviewsFailure = failure{
		invalid:  "Data ID is required",
		internal: "Failed to get reviews",
	}
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.ReputationService
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.ReputationService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// APIIndex lists the available endpoints
func (h *Handler) APIIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Business Reputation Tracking API",
		"date":    time.Now().UTC(),
		"endpoints": gin.H{
			"/api/v1/analyze-reputation":       "POST - Analyze business reputation vs competitors",
			"/api/v1/business-reviews/:dataId": "GET - Get detailed reviews for a business",
			"/api/v1/search-business":          "POST - Search for businesses by name and location",
		},
	})
}

// AnalyzeReputation handles reputation analysis requests
func (h *Handler) AnalyzeReputation(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var request domain.AnalyzeRequest
	if !bindJSON(c, &request, analyzeFailure) {
		return
	}

	result, err := h.service.AnalyzeReputation(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err, analyzeFailure)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchBusiness handles business search requests
func (h *Handler) SearchBusiness(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var request domain.SearchRequest
	if !bindJSON(c, &request, searchFailure) {
		return
	}

	result, err := h.service.SearchBusinesses(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err, searchFailure)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BusinessReviews returns the reviews of the business identified by :dataId
func (h *Handler) BusinessReviews(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	result, err := h.service.GetBusinessReviews(c.Request.Context(), c.Param("dataId"))
	if err != nil {
		respondError(c, err, reviewsFailure)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.service == nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Reputation service not configured"})
		return false
	}
	return true
}

// bindJSON decodes the request body. Missing required fields and malformed
// JSON both answer 400.
func bindJSON(c *gin.Context, target any, f failure) bool {
	err := c.ShouldBindJSON(target)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: f.invalid})
		return false
	}

	c.JSON(http.StatusBadRequest, errorResponse{
		Error:   "Invalid request body",
		Details: err.Error(),
	})
	return false
}

// respondError converts a usecase error into the HTTP error shape
func respondError(c *gin.Context, err error, f failure) {
	var notFound *domain.NotFoundError

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, errorResponse{Error: f.invalid})

	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, errorResponse{
			Error:      notFound.Message,
			Suggestion: notFound.Suggestion,
			DebugInfo:  notFound.DebugInfo,
		})

	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, errorResponse{
			Error:      "Too many requests",
			Suggestion: "Wait a minute before sending more requests",
		})

	default:
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:      f.internal,
			Details:    strings.TrimSpace(err.Error()),
			Suggestion: f.suggestion,
		})
	}
}
