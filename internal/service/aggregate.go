package service

import (
	"time"

	"github.com/easyliving/backend/internal/models"
)

// averageMood computes the 7-day average mood as the mean of per-day mood
// averages, so a day with many entries does not outweigh a day with one.
// Returns nil when no day in the window has scored mood data.
func averageMood(records []models.NormalizedRecord, now time.Time) *float64 {
	daily := buildDailyMoodSeries(records, now, MoodWindowDays)
	if len(daily) == 0 {
		return nil
	}

	sum := 0.0
	for _, point := range daily {
		sum += point.MoodScore
	}
	avg := sum / float64(len(daily))
	return &avg
}

// totalExpense sums the recomputed totals of every expense record in the
// trailing 7-day window. Zero when the window is empty, never null.
func totalExpense(records []models.NormalizedRecord, now time.Time) float64 {
	total := 0.0
	for _, r := range selectWindow(records, models.KindExpense, now, ExpenseWindowDays) {
		total += r.Expense.Total
	}
	return total
}

// topActivity finds the most frequent activity name over the trailing
// 14-day window. Ties go to the activity whose first occurrence is earliest;
// a same-instant tie falls back to name order so record ordering can never
// change the result. Returns the "None logged" sentinel on an empty window.
func topActivity(records []models.NormalizedRecord, now time.Time) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]time.Time)

	for _, r := range selectWindow(records, models.KindActivity, now, ActivityWindowDays) {
		name := r.Activity.Name
		counts[name]++
		if first, ok := firstSeen[name]; !ok || r.Timestamp.Before(first) {
			firstSeen[name] = r.Timestamp
		}
	}

	if len(counts) == 0 {
		return models.NoActivityLogged
	}

	top := ""
	for name, count := range counts {
		if top == "" {
			top = name
			continue
		}
		switch {
		case count > counts[top]:
			top = name
		case count == counts[top]:
			if firstSeen[name].Before(firstSeen[top]) ||
				(firstSeen[name].Equal(firstSeen[top]) && name < top) {
				top = name
			}
		}
	}
	return top
}

// buildWeeklySummary assembles the scalar summary from the three normalized
// record sets. Pure given its inputs; safe to call concurrently.
func buildWeeklySummary(mood, expense, activity []models.NormalizedRecord, now time.Time) *models.WeeklySummary {
	avg := averageMood(mood, now)
	return &models.WeeklySummary{
		AvgMood7:      avg,
		MoodLabel:     MoodBand(avg),
		TotalExpense7: totalExpense(expense, now),
		TopActivity14: topActivity(activity, now),
		DailyMood:     buildDailyMoodSeries(mood, now, MoodWindowDays),
	}
}
