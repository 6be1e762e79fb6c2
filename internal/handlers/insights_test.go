package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/easyliving/backend/internal/models"
	"github.com/easyliving/backend/internal/service"
)

// stubInsightsService is a stub implementation of service.InsightsService
type stubInsightsService struct {
	totals []float64
	err    error
}

func (s *stubInsightsService) GetWeeklySummary(ctx context.Context, userID string, now time.Time) (*models.WeeklySummary, error) {
	return nil, s.err
}

func (s *stubInsightsService) GetMoodTrend(ctx context.Context, userID string, now time.Time) (*models.MoodTrend, error) {
	return nil, s.err
}

func (s *stubInsightsService) GetExpenseTrend(ctx context.Context, userID string, now time.Time) (*models.ExpenseTrend, error) {
	return nil, s.err
}

func (s *stubInsightsService) GetActivityTrend(ctx context.Context, userID string, now time.Time) ([]models.ActivityCount, error) {
	return nil, s.err
}

func (s *stubInsightsService) GetRecommendations(summary *models.WeeklySummary) []string {
	return nil
}

func (s *stubInsightsService) GetRecentExpenseTotals(ctx context.Context, userID string, now time.Time) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.totals, nil
}

var _ service.InsightsService = (*stubInsightsService)(nil)

func insightsRouter(svc service.InsightsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "u1")
	})
	h := NewInsightsHandler(svc)
	router.GET("/api/insights/recent-expenses", h.GetRecentExpenses)
	return router
}

func TestGetRecentExpensesReturnsTotalsOldestFirst(t *testing.T) {
	router := insightsRouter(&stubInsightsService{totals: []float64{10, 20, 30}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/recent-expenses", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		RecentExpenses []float64 `json:"recent_expenses"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []float64{10, 20, 30}
	if len(body.RecentExpenses) != len(want) {
		t.Fatalf("got %d totals, want %d", len(body.RecentExpenses), len(want))
	}
	for i := range want {
		if body.RecentExpenses[i] != want[i] {
			t.Errorf("recent_expenses[%d] = %v, want %v", i, body.RecentExpenses[i], want[i])
		}
	}
}

func TestGetRecentExpensesEmptyHistory(t *testing.T) {
	router := insightsRouter(&stubInsightsService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/recent-expenses", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		RecentExpenses []float64 `json:"recent_expenses"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.RecentExpenses) != 0 {
		t.Errorf("recent_expenses = %v, want empty", body.RecentExpenses)
	}
}

func TestGetRecentExpensesUpstreamFailure(t *testing.T) {
	err := errors.New("postgrest down")
	router := insightsRouter(&stubInsightsService{
		err: errors.Join(service.ErrUpstream, err),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/insights/recent-expenses", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	if got := w.Header().Get("Retry-After"); got == "" {
		t.Error("expected a Retry-After header on upstream failure")
	}
}
