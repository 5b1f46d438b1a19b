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
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the set budget request body
type SetBudgetRequest struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Period    string `json:"period"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// BudgetStatusResponse represents a category's budget progress
type BudgetStatusResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Spent    string `json:"spent"`
}

// SetBudget handles PUT /api/v1/budgets
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount format", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	budget, err := h.budgetService.SetBudget(userID, req.Category, amount, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "category", Message: "Category is required"},
			})
		case errors.Is(err, domain.ErrCategoryTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "category", Message: "Category is too long"},
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must be zero or positive"},
			})
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("category", req.Category).Msg("Failed to set budget")
		return NewInternalError(c, "Failed to set budget")
	}

	log.Info().
		Str("user_id", userID.String()).
		Str("category", budget.Category).
		Str("amount", budget.Amount.String()).
		Msg("Budget set")

	return c.JSON(http.StatusOK, BudgetResponse{
		ID:        budget.ID,
		Category:  budget.Category,
		Amount:    budget.Amount.StringFixed(2),
		Period:    string(budget.Period),
		StartDate: budget.StartDate.Format(time.RFC3339),
		EndDate:   budget.EndDate.Format(time.RFC3339),
	})
}

// GetBudgetStatus handles GET /api/v1/budgets/status
func (h *BudgetHandler) GetBudgetStatus(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	statuses, err := h.budgetService.GetBudgetStatus(userID, time.Now())
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to get budget status")
		return NewInternalError(c, "Failed to get budget status")
	}

	responses := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		responses[i] = BudgetStatusResponse{
			Category: s.Category,
			Amount:   s.Amount.StringFixed(2),
			Spent:    s.Spent.StringFixed(2),
		}
	}

	return c.JSON(http.StatusOK, responses)
}
