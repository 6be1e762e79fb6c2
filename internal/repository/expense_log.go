package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/pkg/supabase"
)

type expenseLogRepository struct {
	client *supabase.Client
}

// NewExpenseLogRepository creates a new expense log repository
func NewExpenseLogRepository(client *supabase.Client) ExpenseLogRepository {
	return &expenseLogRepository{client: client}
}

func (r *expenseLogRepository) Create(ctx context.Context, log *models.ExpenseLog) (*models.ExpenseLog, error) {
	data := map[string]interface{}{
		"user_id":           log.UserID,
		"date":              log.Date,
		"food_expense":      log.FoodExpense,
		"medical_expense":   log.MedicalExpense,
		"transport_expense": log.TransportExpense,
		"personal_expense":  log.PersonalExpense,
		"total_expense":     log.TotalExpense,
	}

	body, err := r.client.Insert(ctx, "expense_logs", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense log: %w", err)
	}

	var logs []models.ExpenseLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("no expense log returned")
	}

	return &logs[0], nil
}

func (r *expenseLogRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]models.ExpenseLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "date.desc",
		"limit":   limit,
	}

	body, err := r.client.Query(ctx, "expense_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense logs: %w", err)
	}

	var logs []models.ExpenseLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *expenseLogRepository) GetByUserIDSince(ctx context.Context, userID string, since time.Time) ([]models.ExpenseLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("gte.%s", since.UTC().Format(time.RFC3339)),
		"order":   "date.asc",
	}

	body, err := r.client.Query(ctx, "expense_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense logs: %w", err)
	}

	var logs []models.ExpenseLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *expenseLogRepository) Delete(ctx context.Context, userID, id string) error {
	if err := ownedRecordExists(ctx, r.client, "expense_logs", userID, id); err != nil {
		return err
	}
	if err := r.client.Delete(ctx, "expense_logs", id); err != nil {
		return fmt.Errorf("failed to delete expense log: %w", err)
	}
	return nil
}
