package models

// Sentinel values that are part of the API contract. The UI renders these
// verbatim, so they must never be reworded.
const (
	NoActivityLogged = "None logged"
	NoMoodData       = "No Data"
)

// Mood label bands produced by the classifier
const (
	MoodBandHappy    = "Happy"
	MoodBandNeutral  = "Neutral"
	MoodBandSad      = "Sad"
	MoodBandStressed = "Stressed"
)

// WeeklySummary holds the rolling-window scalar statistics for a user.
// AvgMood7 is nil (rendered as JSON null) when no mood days exist in the
// window; TotalExpense7 is zero, never null, when no expenses exist.
type WeeklySummary struct {
	AvgMood7      *float64         `json:"avg_mood_7days"`
	MoodLabel     string           `json:"mood_label"`
	TotalExpense7 float64          `json:"total_expense_7days"`
	TopActivity14 string           `json:"top_activity_14days"`
	DailyMood     []DailyMoodPoint `json:"daily_mood"`
}

// DailyMoodPoint is one calendar day's mood aggregate
type DailyMoodPoint struct {
	Date        string  `json:"date"` // YYYY-MM-DD, UTC
	MoodScore   float64 `json:"mood_score"`
	SampleCount int     `json:"sample_count"`
}

// MoodDistribution counts mood labels over a window. The key set is closed;
// unrecognized labels are dropped, never added as dynamic keys.
type MoodDistribution struct {
	Happy    int `json:"happy"`
	Neutral  int `json:"neutral"`
	Sad      int `json:"sad"`
	Stressed int `json:"stressed"`
}

// MoodTrend is the 30-day mood trend response: a per-day line series plus a
// label distribution for the pie chart.
type MoodTrend struct {
	LineChart []DailyMoodPoint `json:"line_chart"`
	PieChart  MoodDistribution `json:"pie_chart"`
}

// DailyExpensePoint is one calendar day's expense breakdown. JSON keys match
// the chart contract consumed by the UI.
type DailyExpensePoint struct {
	Date      string  `json:"date"`
	Food      float64 `json:"foodExpense"`
	Medical   float64 `json:"medicalExpense"`
	Transport float64 `json:"transportExpense"`
	Personal  float64 `json:"personalExpense"`
	Total     float64 `json:"total"`
}

// ExpenseDistribution sums expense categories over a window
type ExpenseDistribution struct {
	Food      float64 `json:"foodExpense"`
	Medical   float64 `json:"medicalExpense"`
	Transport float64 `json:"transportExpense"`
	Personal  float64 `json:"personalExpense"`
}

// ExpenseTrend is the 30-day expense trend response: daily totals for the
// line chart, category sums for the pie chart, and the same daily breakdown
// for the stacked bar chart.
type ExpenseTrend struct {
	LineChart  []DailyExpensePoint `json:"line_chart"`
	PieChart   ExpenseDistribution `json:"pie_chart"`
	StackedBar []DailyExpensePoint `json:"stacked_bar"`
}

// ActivityCount is one activity's occurrence count over the activity window
type ActivityCount struct {
	Activity string `json:"activity"`
	Count    int    `json:"count"`
}

// RecommendationsResponse wraps the ordered recommendation list together
// with the summary it was derived from
type RecommendationsResponse struct {
	Recommendations []string       `json:"recommendations"`
	Summary         *WeeklySummary `json:"summary"`
}
