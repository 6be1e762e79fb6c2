package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyliving/backend/internal/apierror"
	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/service"
)

// InsightsHandler handles insight-related HTTP requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// GetWeeklySummary handles GET /api/insights/weekly
func (h *InsightsHandler) GetWeeklySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	now, ok := referenceTime(c)
	if !ok {
		return
	}

	summary, err := h.insightsService.GetWeeklySummary(c.Request.Context(), userID, now)
	if err != nil {
		writeServiceError(c, err, "Weekly summary", "")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTrend handles GET /api/insights/trends/:kind
func (h *InsightsHandler) GetTrend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	now, ok := referenceTime(c)
	if !ok {
		return
	}

	switch models.RecordKind(c.Param("kind")) {
	case models.KindMood:
		trend, err := h.insightsService.GetMoodTrend(c.Request.Context(), userID, now)
		if err != nil {
			writeServiceError(c, err, "Mood trend", "")
			return
		}
		c.JSON(http.StatusOK, trend)
	case models.KindExpense:
		trend, err := h.insightsService.GetExpenseTrend(c.Request.Context(), userID, now)
		if err != nil {
			writeServiceError(c, err, "Expense trend", "")
			return
		}
		c.JSON(http.StatusOK, trend)
	case models.KindActivity:
		counts, err := h.insightsService.GetActivityTrend(c.Request.Context(), userID, now)
		if err != nil {
			writeServiceError(c, err, "Activity trend", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"top_activities": counts})
	default:
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			"trend kind must be one of: mood, expense, activity", "Unknown trend kind"))
	}
}

// GetRecentExpenses handles GET /api/insights/recent-expenses. The totals
// are ordered oldest to newest so the client can feed them straight into
// the expense predictor.
func (h *InsightsHandler) GetRecentExpenses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	now, ok := referenceTime(c)
	if !ok {
		return
	}

	totals, err := h.insightsService.GetRecentExpenseTotals(c.Request.Context(), userID, now)
	if err != nil {
		writeServiceError(c, err, "Recent expenses", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recent_expenses": totals})
}

// GetRecommendations handles GET /api/insights/recommendations
func (h *InsightsHandler) GetRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	now, ok := referenceTime(c)
	if !ok {
		return
	}

	summary, err := h.insightsService.GetWeeklySummary(c.Request.Context(), userID, now)
	if err != nil {
		writeServiceError(c, err, "Recommendations", "")
		return
	}

	c.JSON(http.StatusOK, models.RecommendationsResponse{
		Recommendations: h.insightsService.GetRecommendations(summary),
		Summary:         summary,
	})
}
