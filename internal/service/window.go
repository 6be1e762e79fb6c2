package service

import (
	"time"

	"github.com/easyliving/backend/internal/models"
)

// Window lengths in calendar days for the rolling aggregates
const (
	MoodWindowDays     = 7
	ExpenseWindowDays  = 7
	ActivityWindowDays = 14
	TrendWindowDays    = 30
)

// All day bucketing uses UTC calendar dates. The zone is pinned process-wide
// so the same record set always produces the same buckets.

// dayKey formats a timestamp as its UTC calendar date (YYYY-MM-DD)
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// windowStart returns the inclusive lower bound of a trailing window of
// windowDays calendar days ending at now. A 7-day window starting "today"
// reaches back 6 days, truncated to start of that UTC day.
func windowStart(now time.Time, windowDays int) time.Time {
	day := now.UTC().AddDate(0, 0, -(windowDays - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

// selectWindow filters records to one kind within [windowStart, now], both
// boundaries inclusive. Records exactly at either boundary are kept.
func selectWindow(records []models.NormalizedRecord, kind models.RecordKind, now time.Time, windowDays int) []models.NormalizedRecord {
	start := windowStart(now, windowDays)
	selected := make([]models.NormalizedRecord, 0, len(records))
	for _, r := range records {
		if r.Kind != kind {
			continue
		}
		if r.Timestamp.Before(start) || r.Timestamp.After(now) {
			continue
		}
		selected = append(selected, r)
	}
	return selected
}

// bucketByDay partitions records into UTC calendar-day groups
func bucketByDay(records []models.NormalizedRecord) map[string][]models.NormalizedRecord {
	buckets := make(map[string][]models.NormalizedRecord)
	for _, r := range records {
		key := dayKey(r.Timestamp)
		buckets[key] = append(buckets[key], r)
	}
	return buckets
}
