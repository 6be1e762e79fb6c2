package models

// PredictMoodRequest represents the request to predict and log a mood.
// Zero is a legitimate value for every feature, so none is marked required.
type PredictMoodRequest struct {
	SleepHours      float64 `json:"sleep_hours" binding:"min=0,max=24"`
	ScreenTimeHours float64 `json:"screen_time_hours" binding:"min=0,max=24"`
	ExerciseMinutes float64 `json:"exercise_minutes" binding:"min=0"`
	CaffeineMg      float64 `json:"caffeine_mg" binding:"min=0"`
	TextInput       string  `json:"text_input"`
	MoodNote        string  `json:"mood_note" binding:"max=50"`
}

// PredictMoodResponse represents the response after predicting and saving
// a mood log
type PredictMoodResponse struct {
	PredictedMood   string   `json:"predicted_mood"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	MoodLog         *MoodLog `json:"mood_log"`
}

// PredictExpenseRequest represents the request to project an expense total
// from recent daily history
type PredictExpenseRequest struct {
	RecentExpenses []float64 `json:"recent_expenses"`
	Avg7Total      *float64  `json:"avg7_total"`
	Days           int       `json:"days"`
}

// PredictExpenseResponse represents the expense projection relayed from the
// ML service
type PredictExpenseResponse struct {
	PredictedTotal float64 `json:"predicted_total"`
	Note           string  `json:"note"`
}
