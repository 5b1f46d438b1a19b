package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportPeriod string

const (
	ReportPeriodWeekly  ReportPeriod = "weekly"
	ReportPeriodMonthly ReportPeriod = "monthly"
	ReportPeriodYearly  ReportPeriod = "yearly"
)

// TimeWindow is a half-open interval [Start, End) used to scope
// aggregation. End is always strictly after Start.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days returns the whole number of days spanned by the window.
func (w TimeWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

// MaxTopCategories caps the ranked category list in a report.
const MaxTopCategories = 3

// Report is the derived summary for one user and window. It is never
// persisted; the presentation layer renders it as JSON or a printable
// document. IncomeExpenseRatio is nil when expense is zero — the ratio
// is "not applicable" rather than an error or a fake zero.
type Report struct {
	Income                   decimal.Decimal  `json:"income"`
	Expense                  decimal.Decimal  `json:"expense"`
	NetSavings               decimal.Decimal  `json:"netSavings"`
	AvgDailySpending         decimal.Decimal  `json:"avgDailySpending"`
	IncomeExpenseRatio       *decimal.Decimal `json:"incomeExpenseRatio"`
	BudgetUtilizationPercent decimal.Decimal  `json:"budgetUtilizationPercent"`
	TopCategories            []string         `json:"topCategories"`
	HighestExpense           decimal.Decimal  `json:"highestExpense"`
	HighestIncome            decimal.Decimal  `json:"highestIncome"`
	Transactions             []*Transaction   `json:"transactions"`
}
