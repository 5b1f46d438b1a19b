package handler

import (
	"net/http"
	"time"

	"github.com/finsight/finsight-backend/internal/middleware"
	"github.com/finsight/finsight-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// MonthlyBucketResponse represents one month of the spending trend
type MonthlyBucketResponse struct {
	Month        string `json:"month"`
	TotalExpense string `json:"totalExpense"`
}

// DashboardSummaryResponse represents the dashboard summary
type DashboardSummaryResponse struct {
	TotalIncome     string                  `json:"totalIncome"`
	TotalExpense    string                  `json:"totalExpense"`
	MonthlySpending []MonthlyBucketResponse `json:"monthlySpending"`
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	summary, err := h.dashboardService.GetSummary(userID, time.Now())
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get dashboard summary")
		return NewInternalError(c, "Failed to get dashboard summary")
	}

	buckets := make([]MonthlyBucketResponse, len(summary.MonthlySpending))
	for i, b := range summary.MonthlySpending {
		buckets[i] = MonthlyBucketResponse{
			Month:        b.Month,
			TotalExpense: b.TotalExpense.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalIncome:     summary.TotalIncome.StringFixed(2),
		TotalExpense:    summary.TotalExpense.StringFixed(2),
		MonthlySpending: buckets,
	})
}
