package service

import (
	"testing"
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/finsight/finsight-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReport_MonthlyScenario(t *testing.T) {
	transactionRepo := testutil.NewMockTransactionRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	svc := NewReportService(transactionRepo, budgetRepo)

	userID := uuid.New()
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	desc := "groceries"
	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 1, UserID: userID, Category: "food",
		Amount: decimal.NewFromInt(50), Type: domain.TransactionTypeExpense,
		Description: &desc,
		CreatedAt:   time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 2, UserID: userID, Category: "food",
		Amount: decimal.NewFromInt(30), Type: domain.TransactionTypeExpense,
		CreatedAt: time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC),
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 3, UserID: userID, Category: "salary",
		Amount: decimal.NewFromInt(1000), Type: domain.TransactionTypeIncome,
		CreatedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
	})

	report, err := svc.GetReport(userID, domain.ReportPeriodMonthly, now)
	require.NoError(t, err)

	assert.Equal(t, "1000.00", report.Income.StringFixed(2))
	assert.Equal(t, "80.00", report.Expense.StringFixed(2))
	assert.Equal(t, "920.00", report.NetSavings.StringFixed(2))
	assert.Equal(t, []string{"food"}, report.TopCategories)
	assert.Equal(t, "50.00", report.HighestExpense.StringFixed(2))
	assert.Equal(t, "1000.00", report.HighestIncome.StringFixed(2))

	require.NotNil(t, report.IncomeExpenseRatio)
	assert.Equal(t, "12.50", report.IncomeExpenseRatio.StringFixed(2))

	// 80 spent over 29 days of February 2024
	assert.Equal(t, "2.76", report.AvgDailySpending.StringFixed(2))

	// Transactions newest first
	require.Len(t, report.Transactions, 3)
	assert.Equal(t, int64(2), report.Transactions[0].ID)
	assert.Equal(t, int64(1), report.Transactions[1].ID)
	assert.Equal(t, int64(3), report.Transactions[2].ID)
}

func TestGetReport_InvalidPeriod(t *testing.T) {
	svc := NewReportService(testutil.NewMockTransactionRepository(), testutil.NewMockBudgetRepository())

	_, err := svc.GetReport(uuid.New(), domain.ReportPeriod("daily"), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestGetReport_NoData(t *testing.T) {
	svc := NewReportService(testutil.NewMockTransactionRepository(), testutil.NewMockBudgetRepository())

	report, err := svc.GetReport(uuid.New(), domain.ReportPeriodWeekly, time.Now())
	require.NoError(t, err)

	// Absence of data is never an error: everything defaults to zero.
	assert.True(t, report.Income.IsZero())
	assert.True(t, report.Expense.IsZero())
	assert.True(t, report.NetSavings.IsZero())
	assert.Nil(t, report.IncomeExpenseRatio)
	assert.True(t, report.BudgetUtilizationPercent.IsZero())
	assert.Empty(t, report.TopCategories)
	assert.Empty(t, report.Transactions)
}

func TestBuildReport_BudgetUtilization(t *testing.T) {
	svc := NewReportService(testutil.NewMockTransactionRepository(), testutil.NewMockBudgetRepository())

	userID := uuid.New()
	window := domain.TimeWindow{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	txs := []*domain.Transaction{
		{UserID: userID, Category: "food", Amount: decimal.NewFromInt(50),
			Type: domain.TransactionTypeExpense, CreatedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
	}
	budgets := []*domain.Budget{
		{UserID: userID, Category: "food", Amount: decimal.NewFromInt(200),
			Period:    domain.BudgetPeriodMonthly,
			StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	report := svc.BuildReport(window, txs, budgets)
	assert.Equal(t, "25.00", report.BudgetUtilizationPercent.StringFixed(2))
}

func TestBuildReport_BudgetOutsideWindowIgnored(t *testing.T) {
	svc := NewReportService(testutil.NewMockTransactionRepository(), testutil.NewMockBudgetRepository())

	window := domain.TimeWindow{
		Start: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC),
	}

	// A month-long budget cannot fit inside a weekly window, so
	// utilization falls back to zero.
	budgets := []*domain.Budget{
		{Category: "food", Amount: decimal.NewFromInt(200),
			Period:    domain.BudgetPeriodMonthly,
			StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	report := svc.BuildReport(window, nil, budgets)
	assert.True(t, report.BudgetUtilizationPercent.IsZero())
}

func TestBuildReport_NegativeNetSavingsNotClamped(t *testing.T) {
	svc := NewReportService(testutil.NewMockTransactionRepository(), testutil.NewMockBudgetRepository())

	window := domain.TimeWindow{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	txs := []*domain.Transaction{
		{Category: "rent", Amount: decimal.NewFromInt(900),
			Type: domain.TransactionTypeExpense, CreatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
		{Category: "salary", Amount: decimal.NewFromInt(500),
			Type: domain.TransactionTypeIncome, CreatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
	}

	report := svc.BuildReport(window, txs, nil)
	assert.Equal(t, "-400.00", report.NetSavings.StringFixed(2))
}

func TestBuildReport_DropsOutOfWindowTransactionsFromListing(t *testing.T) {
	svc := NewReportService(testutil.NewMockTransactionRepository(), testutil.NewMockBudgetRepository())

	window := domain.TimeWindow{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	txs := []*domain.Transaction{
		{ID: 1, Category: "food", Amount: decimal.NewFromInt(10),
			Type: domain.TransactionTypeExpense, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Category: "food", Amount: decimal.NewFromInt(20),
			Type: domain.TransactionTypeExpense, CreatedAt: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)},
	}

	report := svc.BuildReport(window, txs, nil)
	require.Len(t, report.Transactions, 1)
	assert.Equal(t, int64(2), report.Transactions[0].ID)
	assert.Equal(t, "20.00", report.Expense.StringFixed(2))
}
