package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/service"
)

// LogHandler handles log CRUD HTTP requests for the three streams
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new log handler
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// CreateMoodLog handles POST /api/logs/mood
func (h *LogHandler) CreateMoodLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateMoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	log, err := h.logService.CreateMoodLog(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "Mood log", "")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetMoodLogs handles GET /api/logs/mood
func (h *LogHandler) GetMoodLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.logService.GetMoodLogs(c.Request.Context(), userID, queryLimit(c))
	if err != nil {
		writeServiceError(c, err, "Mood logs", "")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// DeleteMoodLog handles DELETE /api/logs/mood/:id
func (h *LogHandler) DeleteMoodLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.logService.DeleteMoodLog(c.Request.Context(), userID, id); err != nil {
		writeServiceError(c, err, "Mood log", id)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// CreateExpenseLog handles POST /api/logs/expense
func (h *LogHandler) CreateExpenseLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateExpenseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	log, err := h.logService.CreateExpenseLog(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "Expense log", "")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetExpenseLogs handles GET /api/logs/expense
func (h *LogHandler) GetExpenseLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.logService.GetExpenseLogs(c.Request.Context(), userID, queryLimit(c))
	if err != nil {
		writeServiceError(c, err, "Expense logs", "")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// DeleteExpenseLog handles DELETE /api/logs/expense/:id
func (h *LogHandler) DeleteExpenseLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.logService.DeleteExpenseLog(c.Request.Context(), userID, id); err != nil {
		writeServiceError(c, err, "Expense log", id)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// CreateActivityLog handles POST /api/logs/activity
func (h *LogHandler) CreateActivityLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateActivityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	log, err := h.logService.CreateActivityLog(c.Request.Context(), userID, &req)
	if err != nil {
		writeServiceError(c, err, "Activity log", "")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetActivityLogs handles GET /api/logs/activity
func (h *LogHandler) GetActivityLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.logService.GetActivityLogs(c.Request.Context(), userID, queryLimit(c))
	if err != nil {
		writeServiceError(c, err, "Activity logs", "")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// DeleteActivityLog handles DELETE /api/logs/activity/:id
func (h *LogHandler) DeleteActivityLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.logService.DeleteActivityLog(c.Request.Context(), userID, id); err != nil {
		writeServiceError(c, err, "Activity log", id)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func queryLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return limit
}
