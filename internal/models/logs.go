package models

import "time"

// User represents a user in the system
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodLog represents a stored mood entry. The label is resolved upstream
// (by the ML predictor or direct user input) before the log is written.
type MoodLog struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            time.Time `json:"date"`
	MoodLabel       string    `json:"mood_label"`
	MoodNote        string    `json:"mood_note"`
	SleepHours      float64   `json:"sleep_hours"`
	ScreenTimeHours float64   `json:"screen_time_hours"`
	ExerciseMinutes float64   `json:"exercise_minutes"`
	CaffeineMg      float64   `json:"caffeine_mg"`
	ModelConfidence float64   `json:"model_confidence"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExpenseLog represents a stored expense entry. TotalExpense is a derived
// column; consumers must never trust it and always recompute from the four
// category fields.
type ExpenseLog struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Date             time.Time `json:"date"`
	FoodExpense      float64   `json:"food_expense"`
	MedicalExpense   float64   `json:"medical_expense"`
	TransportExpense float64   `json:"transport_expense"`
	PersonalExpense  float64   `json:"personal_expense"`
	TotalExpense     float64   `json:"total_expense"`
	CreatedAt        time.Time `json:"created_at"`
}

// ActivityLog represents a stored routine activity entry
type ActivityLog struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            time.Time `json:"date"`
	ActivityName    string    `json:"activity_name"`
	DurationMinutes float64   `json:"duration_minutes"`
	MoodScore       int       `json:"mood_score"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateMoodLogRequest represents the request to create a mood log directly
// (without going through the predictor)
type CreateMoodLogRequest struct {
	Date            time.Time `json:"date" binding:"required"`
	MoodLabel       string    `json:"mood_label" binding:"required"`
	MoodNote        string    `json:"mood_note" binding:"max=50"`
	SleepHours      float64   `json:"sleep_hours" binding:"min=0,max=24"`
	ScreenTimeHours float64   `json:"screen_time_hours" binding:"min=0,max=24"`
	ExerciseMinutes float64   `json:"exercise_minutes" binding:"min=0"`
	CaffeineMg      float64   `json:"caffeine_mg" binding:"min=0"`
}

// CreateExpenseLogRequest represents the request to create an expense log.
// The total is computed server-side; any client-supplied total is ignored.
type CreateExpenseLogRequest struct {
	Date             time.Time `json:"date" binding:"required"`
	FoodExpense      float64   `json:"food_expense" binding:"min=0"`
	MedicalExpense   float64   `json:"medical_expense" binding:"min=0"`
	TransportExpense float64   `json:"transport_expense" binding:"min=0"`
	PersonalExpense  float64   `json:"personal_expense" binding:"min=0"`
}

// CreateActivityLogRequest represents the request to create an activity log
type CreateActivityLogRequest struct {
	Date            time.Time `json:"date" binding:"required"`
	ActivityName    string    `json:"activity_name" binding:"required"`
	DurationMinutes float64   `json:"duration_minutes" binding:"required,min=1"`
	MoodScore       int       `json:"mood_score" binding:"required,min=1,max=5"`
	Notes           string    `json:"notes"`
}
