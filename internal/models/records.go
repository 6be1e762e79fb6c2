package models

import "time"

// RecordKind discriminates the three log stream types
type RecordKind string

const (
	KindMood     RecordKind = "mood"
	KindExpense  RecordKind = "expense"
	KindActivity RecordKind = "activity"
)

// Valid reports whether the kind is one of the three known streams
func (k RecordKind) Valid() bool {
	switch k {
	case KindMood, KindExpense, KindActivity:
		return true
	}
	return false
}

// NormalizedRecord is the unified time-series record the aggregation engine
// operates on. Exactly one payload pointer is non-nil, matching Kind.
type NormalizedRecord struct {
	UserID    string     `json:"user_id"`
	Kind      RecordKind `json:"kind"`
	Timestamp time.Time  `json:"timestamp"`

	Mood     *MoodPayload     `json:"mood,omitempty"`
	Expense  *ExpensePayload  `json:"expense,omitempty"`
	Activity *ActivityPayload `json:"activity,omitempty"`
}

// MoodPayload carries the mood-specific fields of a normalized record
type MoodPayload struct {
	Label           string  `json:"label"`
	Note            string  `json:"note"`
	SleepHours      float64 `json:"sleep_hours"`
	ScreenTimeHours float64 `json:"screen_time_hours"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
	CaffeineMg      float64 `json:"caffeine_mg"`
}

// ExpensePayload carries the expense-specific fields of a normalized record.
// Total is recomputed by the normalizer from the four categories; the stored
// value is never trusted.
type ExpensePayload struct {
	Food      float64 `json:"food"`
	Medical   float64 `json:"medical"`
	Transport float64 `json:"transport"`
	Personal  float64 `json:"personal"`
	Total     float64 `json:"total"`
}

// ActivityPayload carries the activity-specific fields of a normalized record
type ActivityPayload struct {
	Name            string  `json:"name"`
	DurationMinutes float64 `json:"duration_minutes"`
	MoodScore       int     `json:"mood_score"`
	Notes           string  `json:"notes"`
}
