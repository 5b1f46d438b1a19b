package service

import (
	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// incomeExpenseRatio returns income/expense rounded to two decimal
// places, or nil when expense is zero: the ratio is then not
// applicable, which is distinct from both zero and an error.
func incomeExpenseRatio(income, expense decimal.Decimal) *decimal.Decimal {
	if !expense.IsPositive() {
		return nil
	}
	ratio := income.Div(expense).Round(2)
	return &ratio
}

// averageDailySpending divides expense across the days of the window,
// rounded to two decimal places. A degenerate window yields zero.
func averageDailySpending(expense decimal.Decimal, window domain.TimeWindow) decimal.Decimal {
	days := window.Days()
	if days <= 0 {
		return decimal.Zero
	}
	return expense.Div(decimal.NewFromInt(int64(days))).Round(2)
}

// budgetUtilization returns spent/budget as a percentage rounded to
// two decimal places. A zero budget means zero utilization by
// convention — unlike the income/expense ratio, this is not a
// "not applicable" case.
func budgetUtilization(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(budget).Mul(hundred).Round(2)
}
