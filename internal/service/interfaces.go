package service

import (
	"context"
	"time"

	"github.com/easyliving/backend/internal/models"
)

// InsightsService defines the interface for aggregated insight business logic
type InsightsService interface {
	GetWeeklySummary(ctx context.Context, userID string, now time.Time) (*models.WeeklySummary, error)
	GetMoodTrend(ctx context.Context, userID string, now time.Time) (*models.MoodTrend, error)
	GetExpenseTrend(ctx context.Context, userID string, now time.Time) (*models.ExpenseTrend, error)
	GetActivityTrend(ctx context.Context, userID string, now time.Time) ([]models.ActivityCount, error)
	GetRecommendations(summary *models.WeeklySummary) []string
	GetRecentExpenseTotals(ctx context.Context, userID string, now time.Time) ([]float64, error)
}

// LogService defines the interface for log CRUD business logic
type LogService interface {
	CreateMoodLog(ctx context.Context, userID string, req *models.CreateMoodLogRequest) (*models.MoodLog, error)
	GetMoodLogs(ctx context.Context, userID string, limit int) ([]models.MoodLog, error)
	DeleteMoodLog(ctx context.Context, userID, id string) error

	CreateExpenseLog(ctx context.Context, userID string, req *models.CreateExpenseLogRequest) (*models.ExpenseLog, error)
	GetExpenseLogs(ctx context.Context, userID string, limit int) ([]models.ExpenseLog, error)
	DeleteExpenseLog(ctx context.Context, userID, id string) error

	CreateActivityLog(ctx context.Context, userID string, req *models.CreateActivityLogRequest) (*models.ActivityLog, error)
	GetActivityLogs(ctx context.Context, userID string, limit int) ([]models.ActivityLog, error)
	DeleteActivityLog(ctx context.Context, userID, id string) error
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// PredictionService defines the interface for ML-backed prediction flows
type PredictionService interface {
	PredictMood(ctx context.Context, userID string, req *models.PredictMoodRequest) (*models.PredictMoodResponse, error)
	PredictExpense(ctx context.Context, userID string, req *models.PredictExpenseRequest) (*models.PredictExpenseResponse, error)
}
