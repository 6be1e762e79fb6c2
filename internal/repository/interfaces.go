package repository

import (
	"context"
	"errors"
	"time"

	"github.com/easyliving/backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist or does
// not belong to the requesting user.
var ErrNotFound = errors.New("record not found")

// MoodLogRepository defines the interface for mood log data access
type MoodLogRepository interface {
	Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error)
	GetByUserID(ctx context.Context, userID string, limit int) ([]models.MoodLog, error)
	GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.MoodLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// ExpenseLogRepository defines the interface for expense log data access
type ExpenseLogRepository interface {
	Create(ctx context.Context, log *models.ExpenseLog) (*models.ExpenseLog, error)
	GetByUserID(ctx context.Context, userID string, limit int) ([]models.ExpenseLog, error)
	GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ExpenseLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// ActivityLogRepository defines the interface for activity log data access
type ActivityLogRepository interface {
	Create(ctx context.Context, log *models.ActivityLog) (*models.ActivityLog, error)
	GetByUserID(ctx context.Context, userID string, limit int) ([]models.ActivityLog, error)
	GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ActivityLog, error)
	Delete(ctx context.Context, userID, id string) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
