package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/pkg/supabase"
)

type moodLogRepository struct {
	client *supabase.Client
}

// NewMoodLogRepository creates a new mood log repository
func NewMoodLogRepository(client *supabase.Client) MoodLogRepository {
	return &moodLogRepository{client: client}
}

func (r *moodLogRepository) Create(ctx context.Context, log *models.MoodLog) (*models.MoodLog, error) {
	data := map[string]interface{}{
		"user_id":           log.UserID,
		"date":              log.Date,
		"mood_label":        log.MoodLabel,
		"mood_note":         log.MoodNote,
		"sleep_hours":       log.SleepHours,
		"screen_time_hours": log.ScreenTimeHours,
		"exercise_minutes":  log.ExerciseMinutes,
		"caffeine_mg":       log.CaffeineMg,
		"model_confidence":  log.ModelConfidence,
	}

	body, err := r.client.Insert(ctx, "mood_logs", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood log: %w", err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("no mood log returned")
	}

	return &logs[0], nil
}

func (r *moodLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.MoodLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "date.desc",
		"limit":   limit,
	}

	body, err := r.client.Query(ctx, "mood_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood logs: %w", err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *moodLogRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.MoodLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("gte.%s", since.UTC().Format(time.RFC3339)),
		"order":   "date.asc",
	}

	body, err := r.client.Query(ctx, "mood_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood logs: %w", err)
	}

	var logs []models.MoodLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *moodLogRepository) Delete(ctx context.Context, userID, id string) error {
	if err := ownedRecordExists(ctx, r.client, "mood_logs", userID, id); err != nil {
		return err
	}
	if err := r.client.Delete(ctx, "mood_logs", id); err != nil {
		return fmt.Errorf("failed to delete mood log: %w", err)
	}
	return nil
}
