package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/service"
)

// PredictionHandler handles ML prediction HTTP requests
type PredictionHandler struct {
	predictionService service.PredictionService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionService service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// PredictMood handles POST /api/predict/mood
func (h *PredictionHandler) PredictMood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.PredictMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.predictionService.PredictMood(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "Mood prediction", "")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// PredictExpense handles POST /api/predict/expense
func (h *PredictionHandler) PredictExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.PredictExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.predictionService.PredictExpense(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "Expense prediction", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}
