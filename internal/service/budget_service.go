package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget business logic
type BudgetService struct {
	budgetRepo domain.BudgetRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

// SetBudget creates or replaces the user's monthly budget for a
// category. The budget runs from now's date for one calendar month.
// The insert-or-update is one atomic store operation keyed on
// (user_id, category, period), so concurrent calls for the same
// category cannot produce duplicate rows.
func (s *BudgetService) SetBudget(userID uuid.UUID, category string, amount decimal.Decimal, now time.Time) (*domain.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domain.ErrCategoryRequired
	}
	if len(category) > domain.MaxCategoryLength {
		return nil, domain.ErrCategoryTooLong
	}
	if amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endDate := startDate.AddDate(0, 1, 0)

	return s.budgetRepo.Upsert(userID, category, amount, domain.BudgetPeriodMonthly, startDate, endDate)
}

// GetBudgetStatus returns, per budgeted category, the budget amount
// and the expense total for the current calendar month.
func (s *BudgetService) GetBudgetStatus(userID uuid.UUID, now time.Time) ([]domain.BudgetStatus, error) {
	window, err := ResolveWindow(domain.ReportPeriodMonthly, now)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.GetByUserAndPeriod(userID, domain.BudgetPeriodMonthly)
	if err != nil {
		return nil, fmt.Errorf("fetch budgets: %w", err)
	}

	spent, err := s.budgetRepo.GetSpentPerCategory(userID, window)
	if err != nil {
		return nil, fmt.Errorf("fetch spent per category: %w", err)
	}

	return BudgetStatusList(budgets, spent), nil
}

// BudgetStatusList pairs budgets with their spent totals. Categories
// with no matching spend report zero, and the list is ordered by
// category name for stable output.
func BudgetStatusList(budgets []*domain.Budget, spent map[string]decimal.Decimal) []domain.BudgetStatus {
	statuses := make([]domain.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, domain.BudgetStatus{
			Category: b.Category,
			Amount:   b.Amount,
			Spent:    spent[b.Category],
		})
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Category < statuses[j].Category
	})
	return statuses
}
