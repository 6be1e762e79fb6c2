package service

import (
	"sort"
	"strings"
	"time"

	"github.com/easyliving/backend/internal/models"
)

// TopActivityLimit caps the activity frequency chart at the five most
// common activities.
const TopActivityLimit = 5

// buildDailyMoodSeries computes one point per UTC calendar day: the mean of
// per-record mood scores for that day. A record with an unrecognized label
// does not count toward its day, and days with no scored records are
// omitted. The series is sorted ascending by date with no duplicate dates.
func buildDailyMoodSeries(records []models.NormalizedRecord, now time.Time, windowDays int) []models.DailyMoodPoint {
	buckets := bucketByDay(selectWindow(records, models.KindMood, now, windowDays))

	series := make([]models.DailyMoodPoint, 0, len(buckets))
	for day, dayRecords := range buckets {
		sum := 0
		count := 0
		for _, r := range dayRecords {
			score := MoodScore(r.Mood.Label)
			if score == 0 {
				continue
			}
			sum += score
			count++
		}
		if count == 0 {
			continue
		}
		series = append(series, models.DailyMoodPoint{
			Date:        day,
			MoodScore:   float64(sum) / float64(count),
			SampleCount: count,
		})
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// buildMoodDistribution counts mood labels over the window. The label set is
// closed; unrecognized labels are dropped rather than becoming dynamic keys.
func buildMoodDistribution(records []models.NormalizedRecord, now time.Time, windowDays int) models.MoodDistribution {
	var dist models.MoodDistribution
	for _, r := range selectWindow(records, models.KindMood, now, windowDays) {
		switch strings.ToLower(strings.TrimSpace(r.Mood.Label)) {
		case "happy":
			dist.Happy++
		case "neutral":
			dist.Neutral++
		case "sad":
			dist.Sad++
		case "stressed":
			dist.Stressed++
		}
	}
	return dist
}

// BuildMoodTrend assembles the 30-day mood trend: per-day average line
// series plus the period-wide label distribution.
func BuildMoodTrend(records []models.NormalizedRecord, now time.Time) *models.MoodTrend {
	return &models.MoodTrend{
		LineChart: buildDailyMoodSeries(records, now, TrendWindowDays),
		PieChart:  buildMoodDistribution(records, now, TrendWindowDays),
	}
}

// buildDailyExpenseSeries computes per-day category subtotals and a grand
// total, one point per UTC calendar day with at least one expense record,
// sorted ascending by date. Totals come from the recomputed payload total,
// never a stored value.
func buildDailyExpenseSeries(records []models.NormalizedRecord, now time.Time, windowDays int) []models.DailyExpensePoint {
	buckets := bucketByDay(selectWindow(records, models.KindExpense, now, windowDays))

	series := make([]models.DailyExpensePoint, 0, len(buckets))
	for day, dayRecords := range buckets {
		point := models.DailyExpensePoint{Date: day}
		for _, r := range dayRecords {
			point.Food += r.Expense.Food
			point.Medical += r.Expense.Medical
			point.Transport += r.Expense.Transport
			point.Personal += r.Expense.Personal
			point.Total += r.Expense.Total
		}
		series = append(series, point)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// buildExpenseDistribution sums the four expense categories over the window
func buildExpenseDistribution(records []models.NormalizedRecord, now time.Time, windowDays int) models.ExpenseDistribution {
	var dist models.ExpenseDistribution
	for _, r := range selectWindow(records, models.KindExpense, now, windowDays) {
		dist.Food += r.Expense.Food
		dist.Medical += r.Expense.Medical
		dist.Transport += r.Expense.Transport
		dist.Personal += r.Expense.Personal
	}
	return dist
}

// BuildExpenseTrend assembles the 30-day expense trend. The stacked bar
// chart shares the line chart's daily breakdown.
func BuildExpenseTrend(records []models.NormalizedRecord, now time.Time) *models.ExpenseTrend {
	daily := buildDailyExpenseSeries(records, now, TrendWindowDays)
	return &models.ExpenseTrend{
		LineChart:  daily,
		PieChart:   buildExpenseDistribution(records, now, TrendWindowDays),
		StackedBar: daily,
	}
}

// BuildActivityTrend counts activity occurrences over the 14-day window and
// returns the top five, sorted by count descending with ties broken by
// activity name ascending for determinism.
func BuildActivityTrend(records []models.NormalizedRecord, now time.Time) []models.ActivityCount {
	counts := make(map[string]int)
	for _, r := range selectWindow(records, models.KindActivity, now, ActivityWindowDays) {
		counts[r.Activity.Name]++
	}

	ranked := make([]models.ActivityCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, models.ActivityCount{Activity: name, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Activity < ranked[j].Activity
	})

	if len(ranked) > TopActivityLimit {
		ranked = ranked[:TopActivityLimit]
	}
	return ranked
}
