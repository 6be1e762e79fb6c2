package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/repository"
)

// mockMoodLogRepository is a mock implementation of MoodLogRepository for testing
type mockMoodLogRepository struct {
	logs      []models.MoodLog
	err       error
	lastSince time.Time
}

func (m *mockMoodLogRepository) Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	created := *log
	created.ID = "mood-1"
	m.logs = append(m.logs, created)
	return &created, nil
}

func (m *mockMoodLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.MoodLog, error) {
	return m.logs, m.err
}

func (m *mockMoodLogRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.MoodLog, error) {
	m.lastSince = since
	if m.err != nil {
		return nil, m.err
	}
	var result []models.MoodLog
	for _, l := range m.logs {
		if !l.Date.Before(since) {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockMoodLogRepository) Delete(ctx context.Context, userID, id string) error {
	return m.err
}

// mockExpenseLogRepository is a mock implementation of ExpenseLogRepository
type mockExpenseLogRepository struct {
	logs []models.ExpenseLog
	err  error
}

func (m *mockExpenseLogRepository) Create(ctx context.Context, log *models.ExpenseLog) (*models.ExpenseLog, error) {
	return log, m.err
}

func (m *mockExpenseLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.ExpenseLog, error) {
	return m.logs, m.err
}

func (m *mockExpenseLogRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ExpenseLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.ExpenseLog
	for _, l := range m.logs {
		if !l.Date.Before(since) {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockExpenseLogRepository) Delete(ctx context.Context, userID, id string) error {
	return m.err
}

// mockActivityLogRepository is a mock implementation of ActivityLogRepository
type mockActivityLogRepository struct {
	logs []models.ActivityLog
	err  error
}

func (m *mockActivityLogRepository) Create(ctx context.Context, log *models.ActivityLog) (*models.ActivityLog, error) {
	return log, m.err
}

func (m *mockActivityLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.ActivityLog, error) {
	return m.logs, m.err
}

func (m *mockActivityLogRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ActivityLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.ActivityLog
	for _, l := range m.logs {
		if !l.Date.Before(since) {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockActivityLogRepository) Delete(ctx context.Context, userID, id string) error {
	return m.err
}

var _ repository.MoodLogRepository = (*mockMoodLogRepository)(nil)
var _ repository.ExpenseLogRepository = (*mockExpenseLogRepository)(nil)
var _ repository.ActivityLogRepository = (*mockActivityLogRepository)(nil)

func newTestInsightsService(mood *mockMoodLogRepository, expense *mockExpenseLogRepository, activity *mockActivityLogRepository) InsightsService {
	if mood == nil {
		mood = &mockMoodLogRepository{}
	}
	if expense == nil {
		expense = &mockExpenseLogRepository{}
	}
	if activity == nil {
		activity = &mockActivityLogRepository{}
	}
	return NewInsightsService(mood, expense, activity)
}

func TestGetWeeklySummaryAggregatesAllStreams(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	mood := &mockMoodLogRepository{logs: []models.MoodLog{
		{UserID: "u1", Date: yesterday, MoodLabel: "happy"},
		{UserID: "u1", Date: now.Add(-time.Hour), MoodLabel: "neutral"},
	}}
	expense := &mockExpenseLogRepository{logs: []models.ExpenseLog{
		{UserID: "u1", Date: yesterday, FoodExpense: 700, TransportExpense: 400},
	}}
	activity := &mockActivityLogRepository{logs: []models.ActivityLog{
		{UserID: "u1", Date: yesterday, ActivityName: "walk", DurationMinutes: 30, MoodScore: 4},
		{UserID: "u1", Date: now.Add(-2 * time.Hour), ActivityName: "walk", DurationMinutes: 20, MoodScore: 4},
	}}

	svc := newTestInsightsService(mood, expense, activity)
	summary, err := svc.GetWeeklySummary(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("GetWeeklySummary returned error: %v", err)
	}

	// Two days with one scored entry each: (5+3)/2
	if summary.AvgMood7 == nil || *summary.AvgMood7 != 4 {
		t.Errorf("AvgMood7 = %v, want 4", summary.AvgMood7)
	}
	if summary.MoodLabel != models.MoodBandNeutral {
		t.Errorf("MoodLabel = %q, want %q", summary.MoodLabel, models.MoodBandNeutral)
	}
	if summary.TotalExpense7 != 1100 {
		t.Errorf("TotalExpense7 = %v, want 1100", summary.TotalExpense7)
	}
	if summary.TopActivity14 != "walk" {
		t.Errorf("TopActivity14 = %q, want %q", summary.TopActivity14, "walk")
	}
}

func TestGetWeeklySummaryUsesSevenDayFetchWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mood := &mockMoodLogRepository{}

	svc := newTestInsightsService(mood, nil, nil)
	if _, err := svc.GetWeeklySummary(context.Background(), "u1", now); err != nil {
		t.Fatalf("GetWeeklySummary returned error: %v", err)
	}

	want := windowStart(now, MoodWindowDays)
	if !mood.lastSince.Equal(want) {
		t.Errorf("mood fetch since = %v, want %v", mood.lastSince, want)
	}
}

func TestGetWeeklySummaryPropagatesUpstreamFailure(t *testing.T) {
	boom := errors.New("postgrest down")
	mood := &mockMoodLogRepository{err: boom}

	svc := newTestInsightsService(mood, nil, nil)
	summary, err := svc.GetWeeklySummary(context.Background(), "u1", time.Now().UTC())
	if err == nil {
		t.Fatal("GetWeeklySummary = nil error, want upstream failure")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("error %v does not wrap ErrUpstream", err)
	}
	if summary != nil {
		t.Error("expected no partial summary on upstream failure")
	}
}

func TestGetWeeklySummarySkipsMalformedRecords(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mood := &mockMoodLogRepository{logs: []models.MoodLog{
		{UserID: "u1", Date: now.Add(-time.Hour), MoodLabel: "happy"},
	}}
	activity := &mockActivityLogRepository{logs: []models.ActivityLog{
		{UserID: "u1", Date: now.Add(-time.Hour), ActivityName: "walk", DurationMinutes: 30, MoodScore: 4},
		{UserID: "u1", Date: now.Add(-2 * time.Hour), ActivityName: "yoga", DurationMinutes: 30, MoodScore: 9}, // malformed
		{UserID: "u1", Date: now.Add(-3 * time.Hour), ActivityName: "yoga", DurationMinutes: 30, MoodScore: 0}, // malformed
	}}

	svc := newTestInsightsService(mood, nil, activity)
	summary, err := svc.GetWeeklySummary(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("GetWeeklySummary returned error: %v", err)
	}
	if summary.TopActivity14 != "walk" {
		t.Errorf("TopActivity14 = %q, want %q (malformed yoga entries skipped)", summary.TopActivity14, "walk")
	}
}

func TestGetMoodTrendFetches30Days(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	mood := &mockMoodLogRepository{logs: []models.MoodLog{
		{UserID: "u1", Date: now.AddDate(0, 0, -20), MoodLabel: "sad"},
	}}

	svc := newTestInsightsService(mood, nil, nil)
	trend, err := svc.GetMoodTrend(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("GetMoodTrend returned error: %v", err)
	}

	want := windowStart(now, TrendWindowDays)
	if !mood.lastSince.Equal(want) {
		t.Errorf("fetch since = %v, want %v", mood.lastSince, want)
	}
	if len(trend.LineChart) != 1 || trend.PieChart.Sad != 1 {
		t.Errorf("trend = %+v, want one sad point", trend)
	}
}

func TestGetRecentExpenseTotalsOldestFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	expense := &mockExpenseLogRepository{logs: []models.ExpenseLog{
		{UserID: "u1", Date: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), FoodExpense: 30},
		{UserID: "u1", Date: time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC), FoodExpense: 10},
		{UserID: "u1", Date: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC), FoodExpense: 20},
	}}

	svc := newTestInsightsService(nil, expense, nil)
	totals, err := svc.GetRecentExpenseTotals(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("GetRecentExpenseTotals returned error: %v", err)
	}

	want := []float64{10, 20, 30}
	if len(totals) != len(want) {
		t.Fatalf("got %d totals, want %d", len(totals), len(want))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %v, want %v", i, totals[i], want[i])
		}
	}
}

func TestGetRecommendationsMatchesSummary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestInsightsService(nil, nil, nil)

	summary, err := svc.GetWeeklySummary(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("GetWeeklySummary returned error: %v", err)
	}

	recs := svc.GetRecommendations(summary)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	if recs[0] != "No mood data. Please log daily mood to get personalized suggestions." {
		t.Errorf("first recommendation = %q, want the no-mood-data suggestion", recs[0])
	}
}
