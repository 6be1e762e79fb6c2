package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/easyliving/backend/internal/logger"
	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/repository"
)

type insightsService struct {
	moodRepo     repository.MoodLogRepository
	expenseRepo  repository.ExpenseLogRepository
	activityRepo repository.ActivityLogRepository
}

// NewInsightsService creates a new insights service
func NewInsightsService(
	moodRepo repository.MoodLogRepository,
	expenseRepo repository.ExpenseLogRepository,
	activityRepo repository.ActivityLogRepository,
) InsightsService {
	return &insightsService{
		moodRepo:     moodRepo,
		expenseRepo:  expenseRepo,
		activityRepo: activityRepo,
	}
}

// GetWeeklySummary fetches the three log streams concurrently and reduces
// them to the weekly summary. Any fetch failure aborts the whole summary;
// partial data is never served as if it were complete.
func (s *insightsService) GetWeeklySummary(ctx context.Context, userID string, now time.Time) (*models.WeeklySummary, error) {
	var moodRecords, expenseRecords, activityRecords []models.NormalizedRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		moodRecords, err = s.fetchMoodRecords(gctx, userID, now, MoodWindowDays)
		return err
	})
	g.Go(func() error {
		var err error
		expenseRecords, err = s.fetchExpenseRecords(gctx, userID, now, ExpenseWindowDays)
		return err
	})
	g.Go(func() error {
		var err error
		activityRecords, err = s.fetchActivityRecords(gctx, userID, now, ActivityWindowDays)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildWeeklySummary(moodRecords, expenseRecords, activityRecords, now), nil
}

// GetMoodTrend returns the 30-day daily mood series and label distribution
func (s *insightsService) GetMoodTrend(ctx context.Context, userID string, now time.Time) (*models.MoodTrend, error) {
	records, err := s.fetchMoodRecords(ctx, userID, now, TrendWindowDays)
	if err != nil {
		return nil, err
	}
	return BuildMoodTrend(records, now), nil
}

// GetExpenseTrend returns the 30-day daily expense series, the category
// distribution, and the stacked per-category breakdown
func (s *insightsService) GetExpenseTrend(ctx context.Context, userID string, now time.Time) (*models.ExpenseTrend, error) {
	records, err := s.fetchExpenseRecords(ctx, userID, now, TrendWindowDays)
	if err != nil {
		return nil, err
	}
	return BuildExpenseTrend(records, now), nil
}

// GetActivityTrend returns the top activities of the last 14 days by count
func (s *insightsService) GetActivityTrend(ctx context.Context, userID string, now time.Time) ([]models.ActivityCount, error) {
	records, err := s.fetchActivityRecords(ctx, userID, now, ActivityWindowDays)
	if err != nil {
		return nil, err
	}
	return BuildActivityTrend(records, now), nil
}

// GetRecommendations derives advice from an already-computed summary
func (s *insightsService) GetRecommendations(summary *models.WeeklySummary) []string {
	return Recommend(summary)
}

// GetRecentExpenseTotals returns the per-day expense totals of the last 7
// days, oldest first. Days without expense logs are omitted.
func (s *insightsService) GetRecentExpenseTotals(ctx context.Context, userID string, now time.Time) ([]float64, error) {
	records, err := s.fetchExpenseRecords(ctx, userID, now, ExpenseWindowDays)
	if err != nil {
		return nil, err
	}

	series := buildDailyExpenseSeries(records, now, ExpenseWindowDays)
	totals := make([]float64, 0, len(series))
	for _, point := range series {
		totals = append(totals, point.Total)
	}
	return totals, nil
}

func (s *insightsService) fetchMoodRecords(ctx context.Context, userID string, now time.Time, windowDays int) ([]models.NormalizedRecord, error) {
	logs, err := s.moodRepo.GetByUserIDSince(ctx, userID, windowStart(now, windowDays))
	if err != nil {
		return nil, fmt.Errorf("fetch mood logs: %w: %w", ErrUpstream, err)
	}
	records, skipped := NormalizeMoodLogs(logs)
	logSkipped(ctx, userID, models.KindMood, skipped)
	return records, nil
}

func (s *insightsService) fetchExpenseRecords(ctx context.Context, userID string, now time.Time, windowDays int) ([]models.NormalizedRecord, error) {
	logs, err := s.expenseRepo.GetByUserIDSince(ctx, userID, windowStart(now, windowDays))
	if err != nil {
		return nil, fmt.Errorf("fetch expense logs: %w: %w", ErrUpstream, err)
	}
	records, skipped := NormalizeExpenseLogs(logs)
	logSkipped(ctx, userID, models.KindExpense, skipped)
	return records, nil
}

func (s *insightsService) fetchActivityRecords(ctx context.Context, userID string, now time.Time, windowDays int) ([]models.NormalizedRecord, error) {
	logs, err := s.activityRepo.GetByUserIDSince(ctx, userID, windowStart(now, windowDays))
	if err != nil {
		return nil, fmt.Errorf("fetch activity logs: %w: %w", ErrUpstream, err)
	}
	records, skipped := NormalizeActivityLogs(logs)
	logSkipped(ctx, userID, models.KindActivity, skipped)
	return records, nil
}

func logSkipped(ctx context.Context, userID string, kind models.RecordKind, skipped int) {
	if skipped == 0 {
		return
	}
	logger.WithContext(ctx).Warn("skipped malformed records",
		logger.String("user_id", userID),
		logger.String("kind", string(kind)),
		logger.Int("skipped", skipped),
	)
}
