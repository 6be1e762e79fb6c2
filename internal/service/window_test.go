package service

import (
	"testing"
	"time"

	"github.com/easyliving/backend/internal/models"
)

func moodRecordAt(ts time.Time, label string) models.NormalizedRecord {
	return models.NormalizedRecord{
		UserID:    "user-1",
		Kind:      models.KindMood,
		Timestamp: ts,
		Mood:      &models.MoodPayload{Label: label},
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	// A 7-day window ending today reaches back 6 calendar days
	got := windowStart(now, 7)
	want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("windowStart(7) = %v, want %v", got, want)
	}

	// A 1-day window is just the start of today
	got = windowStart(now, 1)
	want = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("windowStart(1) = %v, want %v", got, want)
	}
}

func TestWindowStartIgnoresLocalZone(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*3600)
	local := time.Date(2026, 3, 11, 2, 0, 0, 0, zone) // still March 10 in UTC

	got := windowStart(local, 7)
	want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("windowStart with non-UTC now = %v, want %v", got, want)
	}
}

func TestSelectWindowBoundariesInclusive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	start := windowStart(now, 7)

	records := []models.NormalizedRecord{
		moodRecordAt(start, "happy"),                       // exactly at lower bound
		moodRecordAt(now, "sad"),                           // exactly at upper bound
		moodRecordAt(start.Add(-time.Second), "neutral"),   // just before window
		moodRecordAt(now.Add(time.Second), "stressed"),     // just after window
		moodRecordAt(start.Add(48*time.Hour), "neutral"),   // inside
	}

	got := selectWindow(records, models.KindMood, now, 7)
	if len(got) != 3 {
		t.Fatalf("selectWindow returned %d records, want 3", len(got))
	}
	for _, r := range got {
		if r.Timestamp.Before(start) || r.Timestamp.After(now) {
			t.Errorf("record at %v is outside [%v, %v]", r.Timestamp, start, now)
		}
	}
}

func TestSelectWindowFiltersKind(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	records := []models.NormalizedRecord{
		moodRecordAt(now, "happy"),
		{Kind: models.KindExpense, Timestamp: now, Expense: &models.ExpensePayload{Total: 10}},
	}

	got := selectWindow(records, models.KindMood, now, 7)
	if len(got) != 1 || got[0].Kind != models.KindMood {
		t.Errorf("selectWindow(mood) = %d records, want exactly the mood record", len(got))
	}
}

func TestDayKeyUsesUTC(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)
	// 23:30 local on March 9 is 04:30 UTC on March 10
	ts := time.Date(2026, 3, 9, 23, 30, 0, 0, zone)

	if got := dayKey(ts); got != "2026-03-10" {
		t.Errorf("dayKey = %q, want %q", got, "2026-03-10")
	}
}

func TestBucketByDay(t *testing.T) {
	records := []models.NormalizedRecord{
		moodRecordAt(time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC), "happy"),
		moodRecordAt(time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC), "sad"),
		moodRecordAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), "neutral"),
	}

	buckets := bucketByDay(records)
	if len(buckets) != 2 {
		t.Fatalf("bucketByDay produced %d buckets, want 2", len(buckets))
	}
	if len(buckets["2026-03-09"]) != 2 {
		t.Errorf("bucket 2026-03-09 has %d records, want 2", len(buckets["2026-03-09"]))
	}
	if len(buckets["2026-03-10"]) != 1 {
		t.Errorf("bucket 2026-03-10 has %d records, want 1", len(buckets["2026-03-10"]))
	}
}
