package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetPeriod string

// Monthly is the only supported budget period for now.
const BudgetPeriodMonthly BudgetPeriod = "monthly"

// Budget is a per-category spending cap. At most one active budget
// exists per (user, category, period); the repository enforces this
// with a uniqueness constraint so that concurrent SetBudget calls
// cannot produce duplicate rows.
type Budget struct {
	ID        int64           `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    BudgetPeriod    `json:"period"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
}

// BudgetStatus pairs a budget with the amount spent against it.
type BudgetStatus struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Spent    decimal.Decimal `json:"spent"`
}

type BudgetRepository interface {
	// Upsert inserts or replaces the budget keyed on
	// (user_id, category, period) as a single atomic statement.
	Upsert(userID uuid.UUID, category string, amount decimal.Decimal, period BudgetPeriod, startDate, endDate time.Time) (*Budget, error)
	GetByUserAndPeriod(userID uuid.UUID, period BudgetPeriod) ([]*Budget, error)
	// GetSpentPerCategory sums expense transactions per category inside
	// the window.
	GetSpentPerCategory(userID uuid.UUID, window TimeWindow) (map[string]decimal.Decimal, error)
}
