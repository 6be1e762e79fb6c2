package service

import (
	"context"
	"fmt"
	"time"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/repository"
	"github.com/easyliving/backend/pkg/mlapi"
)

type predictionService struct {
	ml       *mlapi.Client
	moodRepo repository.MoodLogRepository
	insights InsightsService
}

// NewPredictionService creates a new prediction service
func NewPredictionService(ml *mlapi.Client, moodRepo repository.MoodLogRepository, insights InsightsService) PredictionService {
	return &predictionService{
		ml:       ml,
		moodRepo: moodRepo,
		insights: insights,
	}
}

// PredictMood asks the ML service for a mood label, persists the resolved
// label alongside the submitted features, and relays the model's advice. A
// predictor failure aborts the flow; no mood log is written without a label.
func (s *predictionService) PredictMood(ctx context.Context, userID string, req *models.PredictMoodRequest) (*models.PredictMoodResponse, error) {
	prediction, err := s.ml.PredictMood(ctx, mlapi.MoodFeatures{
		SleepHours:      req.SleepHours,
		ScreenTimeHours: req.ScreenTimeHours,
		ExerciseMinutes: req.ExerciseMinutes,
		CaffeineMg:      req.CaffeineMg,
		TextInput:       req.TextInput,
	})
	if err != nil {
		return nil, fmt.Errorf("predict mood: %w: %w", ErrUpstream, err)
	}

	log := &models.MoodLog{
		UserID:          userID,
		Date:            time.Now().UTC(),
		MoodLabel:       prediction.PredictedMood,
		MoodNote:        req.MoodNote,
		SleepHours:      req.SleepHours,
		ScreenTimeHours: req.ScreenTimeHours,
		ExerciseMinutes: req.ExerciseMinutes,
		CaffeineMg:      req.CaffeineMg,
		ModelConfidence: prediction.Confidence,
	}
	created, err := s.moodRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("save predicted mood log: %w: %w", ErrUpstream, err)
	}

	return &models.PredictMoodResponse{
		PredictedMood:   prediction.PredictedMood,
		Confidence:      prediction.Confidence,
		Recommendations: prediction.Recommendations,
		MoodLog:         created,
	}, nil
}

// PredictExpense relays an expense projection from the ML service. When the
// caller supplies no history, the last 7 days of stored expense totals are
// used instead.
func (s *predictionService) PredictExpense(ctx context.Context, userID string, req *models.PredictExpenseRequest) (*models.PredictExpenseResponse, error) {
	history := mlapi.ExpenseHistory{
		RecentExpenses: req.RecentExpenses,
		Avg7Total:      req.Avg7Total,
		Days:           req.Days,
	}
	if history.Days <= 0 {
		history.Days = ExpenseWindowDays
	}
	if len(history.RecentExpenses) == 0 {
		totals, err := s.insights.GetRecentExpenseTotals(ctx, userID, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		history.RecentExpenses = totals
	}

	prediction, err := s.ml.PredictExpense(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("predict expense: %w: %w", ErrUpstream, err)
	}

	return &models.PredictExpenseResponse{
		PredictedTotal: prediction.PredictedTotal,
		Note:           prediction.Note,
	}, nil
}
