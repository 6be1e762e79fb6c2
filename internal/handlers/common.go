package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/easyliving/backend/internal/apierror"
	"github.com/easyliving/backend/internal/logger"
	"github.com/easyliving/backend/internal/repository"
	"github.com/easyliving/backend/internal/service"
)

// retryAfterSeconds is the hint returned with 502 responses
const retryAfterSeconds = 30

// currentUserID pulls the authenticated user from the gin context. Writes a
// 401 problem response and returns false when the auth middleware did not run.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID.(string), true
}

// writeServiceError maps service-layer failures onto problem responses.
// Upstream failures become 502, missing records 404, everything else a
// generic 500. The underlying error is logged, never echoed.
func writeServiceError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, service.ErrInvalidID):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid identifier format"))
	case errors.Is(err, repository.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case errors.Is(err, service.ErrUpstream):
		logger.WithContext(c.Request.Context()).Error("upstream failure", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewUpstreamUnavailableError(requestID, retryAfterSeconds))
	default:
		logger.WithContext(c.Request.Context()).Error("unhandled service error", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// writeBindError reports a request body that failed to parse or validate
func writeBindError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
}

// referenceTime resolves the optional "at" query parameter, defaulting to
// the current instant. All window math downstream is done in UTC.
func referenceTime(c *gin.Context) (time.Time, bool) {
	atStr := c.Query("at")
	if atStr == "" {
		return time.Now().UTC(), true
	}

	at, err := time.Parse(time.RFC3339, atStr)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "invalid 'at' parameter, use RFC3339", "Invalid timestamp format"))
		return time.Time{}, false
	}
	return at.UTC(), true
}
