package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService assembles periodic financial reports
type ReportService struct {
	transactionRepo domain.TransactionRepository
	budgetRepo      domain.BudgetRepository
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository, budgetRepo domain.BudgetRepository) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// GetReport resolves the window for the period at now, fetches the
// user's rows and assembles the report.
func (s *ReportService) GetReport(userID uuid.UUID, period domain.ReportPeriod, now time.Time) (*domain.Report, error) {
	window, err := ResolveWindow(period, now)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByUser(userID, &domain.TransactionFilters{Window: &window})
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	budgets, err := s.budgetRepo.GetByUserAndPeriod(userID, domain.BudgetPeriodMonthly)
	if err != nil {
		return nil, fmt.Errorf("fetch budgets: %w", err)
	}

	return s.BuildReport(window, transactions, budgets), nil
}

// BuildReport is pure composition over already-materialized rows: no
// I/O, no hidden state, safe to call concurrently. Transactions are
// re-filtered against the window rather than trusted as pre-filtered.
func (s *ReportService) BuildReport(window domain.TimeWindow, transactions []*domain.Transaction, budgets []*domain.Budget) *domain.Report {
	income := sumByType(transactions, window, domain.TransactionTypeIncome)
	expense := sumByType(transactions, window, domain.TransactionTypeExpense)

	// Budget utilization measures spend against the budgets whose
	// validity range falls inside the window.
	totalBudget := decimal.Zero
	for _, b := range budgets {
		if !b.StartDate.Before(window.Start) && !b.EndDate.After(window.End) {
			totalBudget = totalBudget.Add(b.Amount)
		}
	}

	listed := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if window.Contains(tx.CreatedAt) {
			listed = append(listed, tx)
		}
	}
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].CreatedAt.After(listed[j].CreatedAt)
	})

	return &domain.Report{
		Income:                   income,
		Expense:                  expense,
		NetSavings:               income.Sub(expense),
		AvgDailySpending:         averageDailySpending(expense, window),
		IncomeExpenseRatio:       incomeExpenseRatio(income, expense),
		BudgetUtilizationPercent: budgetUtilization(expense, totalBudget),
		TopCategories:            topCategories(transactions, window, domain.TransactionTypeExpense, domain.MaxTopCategories),
		HighestExpense:           maxByType(transactions, window, domain.TransactionTypeExpense),
		HighestIncome:            maxByType(transactions, window, domain.TransactionTypeIncome),
		Transactions:             listed,
	}
}
