package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/pkg/supabase"
)

type activityLogRepository struct {
	client *supabase.Client
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(client *supabase.Client) ActivityLogRepository {
	return &activityLogRepository{client: client}
}

func (r *activityLogRepository) Create(ctx context.Context, log *models.ActivityLog) (*models.ActivityLog, error) {
	data := map[string]interface{}{
		"user_id":          log.UserID,
		"date":             log.Date,
		"activity_name":    log.ActivityName,
		"duration_minutes": log.DurationMinutes,
		"mood_score":       log.MoodScore,
		"notes":            log.Notes,
	}

	body, err := r.client.Insert(ctx, "activity_logs", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log: %w", err)
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("no activity log returned")
	}

	return &logs[0], nil
}

func (r *activityLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.ActivityLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "date.desc",
		"limit":   limit,
	}

	body, err := r.client.Query(ctx, "activity_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity logs: %w", err)
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *activityLogRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ActivityLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("gte.%s", since.UTC().Format(time.RFC3339)),
		"order":   "date.asc",
	}

	body, err := r.client.Query(ctx, "activity_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity logs: %w", err)
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *activityLogRepository) Delete(ctx context.Context, userID, id string) error {
	if err := ownedRecordExists(ctx, r.client, "activity_logs", userID, id); err != nil {
		return err
	}
	if err := r.client.Delete(ctx, "activity_logs", id); err != nil {
		return fmt.Errorf("failed to delete activity log: %w", err)
	}
	return nil
}

// ownedRecordExists verifies a record exists and belongs to the user before
// a delete, so missing records surface as ErrNotFound instead of a silent
// no-op delete.
func ownedRecordExists(ctx context.Context, client *supabase.Client, table, userID, id string) error {
	query := map[string]interface{}{
		"id":      fmt.Sprintf("eq.%s", id),
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "id",
	}

	body, err := client.Query(ctx, table, query)
	if err != nil {
		return fmt.Errorf("failed to look up record: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}
