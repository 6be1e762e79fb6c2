package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/repository"
)

// DefaultLogLimit caps list queries when the caller does not ask for a limit
const DefaultLogLimit = 500

type logService struct {
	moodRepo     repository.MoodLogRepository
	expenseRepo  repository.ExpenseLogRepository
	activityRepo repository.ActivityLogRepository
}

// NewLogService creates a new log service
func NewLogService(
	moodRepo repository.MoodLogRepository,
	expenseRepo repository.ExpenseLogRepository,
	activityRepo repository.ActivityLogRepository,
) LogService {
	return &logService{
		moodRepo:     moodRepo,
		expenseRepo:  expenseRepo,
		activityRepo: activityRepo,
	}
}

func (s *logService) CreateMoodLog(ctx context.Context, userID string, req *models.CreateMoodLogRequest) (*models.MoodLog, error) {
	log := &models.MoodLog{
		UserID:          userID,
		Date:            req.Date.UTC(),
		MoodLabel:       req.MoodLabel,
		MoodNote:        req.MoodNote,
		SleepHours:      req.SleepHours,
		ScreenTimeHours: req.ScreenTimeHours,
		ExerciseMinutes: req.ExerciseMinutes,
		CaffeineMg:      req.CaffeineMg,
	}

	created, err := s.moodRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("create mood log: %w: %w", ErrUpstream, err)
	}
	return created, nil
}

func (s *logService) GetMoodLogs(ctx context.Context, userID string, limit int) ([]models.MoodLog, error) {
	logs, err := s.moodRepo.GetByUserID(ctx, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("get mood logs: %w: %w", ErrUpstream, err)
	}
	return logs, nil
}

func (s *logService) DeleteMoodLog(ctx context.Context, userID, id string) error {
	if err := ValidateRecordID(id); err != nil {
		return err
	}
	return wrapDelete("mood", s.moodRepo.Delete(ctx, userID, id))
}

func (s *logService) CreateExpenseLog(ctx context.Context, userID string, req *models.CreateExpenseLogRequest) (*models.ExpenseLog, error) {
	log := &models.ExpenseLog{
		UserID:           userID,
		Date:             req.Date.UTC(),
		FoodExpense:      req.FoodExpense,
		MedicalExpense:   req.MedicalExpense,
		TransportExpense: req.TransportExpense,
		PersonalExpense:  req.PersonalExpense,
		// Total is always derived here, never taken from the client.
		TotalExpense: req.FoodExpense + req.MedicalExpense + req.TransportExpense + req.PersonalExpense,
	}

	created, err := s.expenseRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("create expense log: %w: %w", ErrUpstream, err)
	}
	return created, nil
}

func (s *logService) GetExpenseLogs(ctx context.Context, userID string, limit int) ([]models.ExpenseLog, error) {
	logs, err := s.expenseRepo.GetByUserID(ctx, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("get expense logs: %w: %w", ErrUpstream, err)
	}
	return logs, nil
}

func (s *logService) DeleteExpenseLog(ctx context.Context, userID, id string) error {
	if err := ValidateRecordID(id); err != nil {
		return err
	}
	return wrapDelete("expense", s.expenseRepo.Delete(ctx, userID, id))
}

func (s *logService) CreateActivityLog(ctx context.Context, userID string, req *models.CreateActivityLogRequest) (*models.ActivityLog, error) {
	log := &models.ActivityLog{
		UserID:          userID,
		Date:            req.Date.UTC(),
		ActivityName:    req.ActivityName,
		DurationMinutes: req.DurationMinutes,
		MoodScore:       req.MoodScore,
		Notes:           req.Notes,
	}

	created, err := s.activityRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("create activity log: %w: %w", ErrUpstream, err)
	}
	return created, nil
}

func (s *logService) GetActivityLogs(ctx context.Context, userID string, limit int) ([]models.ActivityLog, error) {
	logs, err := s.activityRepo.GetByUserID(ctx, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("get activity logs: %w: %w", ErrUpstream, err)
	}
	return logs, nil
}

func (s *logService) DeleteActivityLog(ctx context.Context, userID, id string) error {
	if err := ValidateRecordID(id); err != nil {
		return err
	}
	return wrapDelete("activity", s.activityRepo.Delete(ctx, userID, id))
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > DefaultLogLimit {
		return DefaultLogLimit
	}
	return limit
}

// wrapDelete keeps ErrNotFound intact so handlers can map it to a 404,
// while anything else is surfaced as an upstream failure.
func wrapDelete(kind string, err error) error {
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return fmt.Errorf("delete %s log: %w: %w", kind, ErrUpstream, err)
}
