// Package mlapi is a client for the external EasyLiving ML prediction
// service (FastAPI). The service resolves mood labels from lifestyle
// features and projects near-term expense totals; this backend only relays
// its output and never substitutes fabricated predictions on failure.
package mlapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client represents an ML API client
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a new ML API client
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// MoodFeatures is the input to the mood predictor. Field names follow the
// ML service's request schema.
type MoodFeatures struct {
	SleepHours      float64 `json:"sleepHours"`
	ScreenTimeHours float64 `json:"screenTimeHours"`
	ExerciseMinutes float64 `json:"exerciseMinutes"`
	CaffeineMg      float64 `json:"caffeineMg"`
	TextInput       string  `json:"textInput"`
}

// MoodPrediction is the mood predictor's response
type MoodPrediction struct {
	PredictedMood   string   `json:"predicted_mood"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// ExpenseHistory is the input to the expense predictor
type ExpenseHistory struct {
	RecentExpenses []float64 `json:"recent_expenses"`
	Avg7Total      *float64  `json:"avg7_total"`
	Days           int       `json:"days"`
}

// ExpensePrediction is the expense predictor's response
type ExpensePrediction struct {
	PredictedTotal float64 `json:"predicted_total"`
	Note           string  `json:"note"`
}

// PredictMood resolves a mood label and confidence from lifestyle features
func (c *Client) PredictMood(ctx context.Context, features MoodFeatures) (*MoodPrediction, error) {
	var prediction MoodPrediction
	if err := c.post(ctx, "/predict/mood", features, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

// PredictExpense projects an expense total from recent daily history
func (c *Client) PredictExpense(ctx context.Context, history ExpenseHistory) (*ExpensePrediction, error) {
	var prediction ExpensePrediction
	if err := c.post(ctx, "/predict/expense", history, &prediction); err != nil {
		return nil, err
	}
	return &prediction, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("ml api unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ml api error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode ml api response: %w", err)
	}
	return nil
}
