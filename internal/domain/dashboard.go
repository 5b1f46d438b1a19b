package domain

import "github.com/shopspring/decimal"

// TrailingMonths is how many calendar months the dashboard trend
// series covers, including the current one.
const TrailingMonths = 3

// MonthlyBucket is one calendar month's accumulated expense total,
// labeled "YYYY-MM".
type MonthlyBucket struct {
	Month        string          `json:"month"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}

// DashboardSummary contains the main dashboard metrics: lifetime
// totals plus the trailing-month spending trend, oldest month first.
type DashboardSummary struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	MonthlySpending []MonthlyBucket `json:"monthlySpending"`
}
