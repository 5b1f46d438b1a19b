package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/finsight/finsight-backend/internal/middleware"
	"github.com/finsight/finsight-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RatioNotApplicable is rendered when the income/expense ratio has no
// defined value (no expenses in the window).
const RatioNotApplicable = "N/A"

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportResponse represents a periodic report in API responses
type ReportResponse struct {
	Period                   string                `json:"period"`
	Income                   string                `json:"income"`
	Expense                  string                `json:"expense"`
	NetSavings               string                `json:"netSavings"`
	AvgDailySpending         string                `json:"avgDailySpending"`
	IncomeExpenseRatio       string                `json:"incomeExpenseRatio"`
	BudgetUtilizationPercent string                `json:"budgetUtilizationPercent"`
	TopCategories            []string              `json:"topCategories"`
	HighestExpense           string                `json:"highestExpense"`
	HighestIncome            string                `json:"highestIncome"`
	Transactions             []TransactionResponse `json:"transactions"`
}

// GetReport handles GET /api/v1/reports?period=weekly|monthly|yearly
func (h *ReportHandler) GetReport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	period := domain.ReportPeriod(c.QueryParam("period"))
	if period == "" {
		period = domain.ReportPeriodMonthly
	}

	report, err := h.reportService.GetReport(userID, period, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Invalid period", []ValidationError{
				{Field: "period", Message: "Must be weekly, monthly or yearly"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("period", string(period)).Msg("Failed to build report")
		return NewInternalError(c, "Failed to build report")
	}

	return c.JSON(http.StatusOK, toReportResponse(period, report))
}

// toReportResponse converts a domain report to an API response
func toReportResponse(period domain.ReportPeriod, report *domain.Report) ReportResponse {
	ratio := RatioNotApplicable
	if report.IncomeExpenseRatio != nil {
		ratio = report.IncomeExpenseRatio.StringFixed(2)
	}

	transactions := make([]TransactionResponse, len(report.Transactions))
	for i, tx := range report.Transactions {
		transactions[i] = toTransactionResponse(tx)
	}

	return ReportResponse{
		Period:                   string(period),
		Income:                   report.Income.StringFixed(2),
		Expense:                  report.Expense.StringFixed(2),
		NetSavings:               report.NetSavings.StringFixed(2),
		AvgDailySpending:         report.AvgDailySpending.StringFixed(2),
		IncomeExpenseRatio:       ratio,
		BudgetUtilizationPercent: report.BudgetUtilizationPercent.StringFixed(2),
		TopCategories:            report.TopCategories,
		HighestExpense:           report.HighestExpense.StringFixed(2),
		HighestIncome:            report.HighestIncome.StringFixed(2),
		Transactions:             transactions,
	}
}
