package service

import (
	"fmt"

	"github.com/easyliving/backend/internal/models"
)

// Recommendation rule thresholds
const (
	lowMoodThreshold   = 3.5
	highSpendThreshold = 1000 // strictly greater-than; exactly 1000 is normal
)

// Recommendation texts. These are part of the API contract with the UI.
const (
	recNoMoodData    = "No mood data. Please log daily mood to get personalized suggestions."
	recLowMood       = "Average mood is low this week. Consider calling a family member or doing a short walk each morning."
	recStableMood    = "Mood looks stable. Continue your routine and keep logging."
	recHighSpend     = "Weekly expenses appear high. Review grocery and transport spending."
	recNormalSpend   = "Expenses are within a normal range this week."
	recNoActivity    = "No routine activities logged frequently. Try adding a short daily walk or activity."
	recActivityShape = "Your most frequent activity: %s. Keep doing it regularly."
)

// Recommend derives the ordered suggestion list from a weekly summary.
// Pure function: no storage, no network, no clock. Identical input always
// yields the identical, identically-ordered list. Rules evaluate per feature
// (mood, expense, activity) and concatenate.
func Recommend(summary *models.WeeklySummary) []string {
	recs := make([]string, 0, 3)

	switch {
	case summary.AvgMood7 == nil:
		recs = append(recs, recNoMoodData)
	case *summary.AvgMood7 < lowMoodThreshold:
		recs = append(recs, recLowMood)
	default:
		recs = append(recs, recStableMood)
	}

	if summary.TotalExpense7 > highSpendThreshold {
		recs = append(recs, recHighSpend)
	} else {
		recs = append(recs, recNormalSpend)
	}

	if summary.TopActivity14 != "" && summary.TopActivity14 != models.NoActivityLogged {
		recs = append(recs, fmt.Sprintf(recActivityShape, summary.TopActivity14))
	} else {
		recs = append(recs, recNoActivity)
	}

	return recs
}
