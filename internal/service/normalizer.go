package service

import (
	"math"

	"github.com/easyliving/backend/internal/models"
)

// The normalizer converts raw stored logs into the unified record type the
// aggregation engine consumes. Normalization fails per record: a malformed
// entry is skipped and counted, never aborting the batch. An all-malformed
// batch yields an empty record set, not an error.

// finite reports whether every value is a usable number (no NaN, no Inf)
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NormalizeMoodLogs converts stored mood logs into normalized records.
// Returns the records plus the count of skipped malformed entries.
func NormalizeMoodLogs(logs []models.MoodLog) ([]models.NormalizedRecord, int) {
	records := make([]models.NormalizedRecord, 0, len(logs))
	skipped := 0
	for _, l := range logs {
		if l.Date.IsZero() || !finite(l.SleepHours, l.ScreenTimeHours, l.ExerciseMinutes, l.CaffeineMg) {
			skipped++
			continue
		}
		records = append(records, models.NormalizedRecord{
			UserID:    l.UserID,
			Kind:      models.KindMood,
			Timestamp: l.Date,
			Mood: &models.MoodPayload{
				Label:           l.MoodLabel,
				Note:            l.MoodNote,
				SleepHours:      l.SleepHours,
				ScreenTimeHours: l.ScreenTimeHours,
				ExerciseMinutes: l.ExerciseMinutes,
				CaffeineMg:      l.CaffeineMg,
			},
		})
	}
	return records, skipped
}

// NormalizeExpenseLogs converts stored expense logs into normalized records.
// The total is always recomputed from the four category fields; the stored
// total is ignored since upstream writers may have skipped recomputation.
func NormalizeExpenseLogs(logs []models.ExpenseLog) ([]models.NormalizedRecord, int) {
	records := make([]models.NormalizedRecord, 0, len(logs))
	skipped := 0
	for _, l := range logs {
		if l.Date.IsZero() || !finite(l.FoodExpense, l.MedicalExpense, l.TransportExpense, l.PersonalExpense) {
			skipped++
			continue
		}
		if l.FoodExpense < 0 || l.MedicalExpense < 0 || l.TransportExpense < 0 || l.PersonalExpense < 0 {
			skipped++
			continue
		}
		records = append(records, models.NormalizedRecord{
			UserID:    l.UserID,
			Kind:      models.KindExpense,
			Timestamp: l.Date,
			Expense: &models.ExpensePayload{
				Food:      l.FoodExpense,
				Medical:   l.MedicalExpense,
				Transport: l.TransportExpense,
				Personal:  l.PersonalExpense,
				Total:     l.FoodExpense + l.MedicalExpense + l.TransportExpense + l.PersonalExpense,
			},
		})
	}
	return records, skipped
}

// NormalizeActivityLogs converts stored activity logs into normalized
// records. The mood score range [1,5] is closed: out-of-range values are
// rejected here, never clamped.
func NormalizeActivityLogs(logs []models.ActivityLog) ([]models.NormalizedRecord, int) {
	records := make([]models.NormalizedRecord, 0, len(logs))
	skipped := 0
	for _, l := range logs {
		if l.Date.IsZero() || l.ActivityName == "" || !finite(l.DurationMinutes) {
			skipped++
			continue
		}
		if l.MoodScore < 1 || l.MoodScore > 5 {
			skipped++
			continue
		}
		records = append(records, models.NormalizedRecord{
			UserID:    l.UserID,
			Kind:      models.KindActivity,
			Timestamp: l.Date,
			Activity: &models.ActivityPayload{
				Name:            l.ActivityName,
				DurationMinutes: l.DurationMinutes,
				MoodScore:       l.MoodScore,
				Notes:           l.Notes,
			},
		})
	}
	return records, skipped
}
