package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Upsert creates a budget or replaces the amount and window of an
// existing one in a single statement. The unique index on
// (user_id, category, period) makes concurrent calls converge on one row.
func (r *BudgetRepository) Upsert(userID uuid.UUID, category string, amount decimal.Decimal, period domain.BudgetPeriod, startDate, endDate time.Time) (*domain.Budget, error) {
	ctx := context.Background()

	pgAmount, err := decimalToPgNumeric(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	budget := &domain.Budget{}
	var scannedAmount pgtype.Numeric
	var scannedPeriod string

	err = r.pool.QueryRow(ctx,
		`INSERT INTO budgets (user_id, category, amount, period, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, category, period)
		 DO UPDATE SET amount = EXCLUDED.amount,
		               start_date = EXCLUDED.start_date,
		               end_date = EXCLUDED.end_date
		 RETURNING id, user_id, category, amount, period, start_date, end_date`,
		userID, category, pgAmount, string(period), startDate, endDate,
	).Scan(&budget.ID, &budget.UserID, &budget.Category, &scannedAmount, &scannedPeriod, &budget.StartDate, &budget.EndDate)
	if err != nil {
		return nil, err
	}

	budget.Amount = pgNumericToDecimal(scannedAmount)
	budget.Period = domain.BudgetPeriod(scannedPeriod)

	return budget, nil
}

// GetByUserAndPeriod retrieves a user's budgets for the given period
func (r *BudgetRepository) GetByUserAndPeriod(userID uuid.UUID, period domain.BudgetPeriod) ([]*domain.Budget, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, category, amount, period, start_date, end_date
		 FROM budgets
		 WHERE user_id = $1 AND period = $2
		 ORDER BY category`,
		userID, string(period),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]*domain.Budget, 0)
	for rows.Next() {
		budget := &domain.Budget{}
		var amount pgtype.Numeric
		var scannedPeriod string

		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &amount, &scannedPeriod, &budget.StartDate, &budget.EndDate); err != nil {
			return nil, err
		}

		budget.Amount = pgNumericToDecimal(amount)
		budget.Period = domain.BudgetPeriod(scannedPeriod)
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return budgets, nil
}

// GetSpentPerCategory sums the user's expense transactions per category
// inside the [start, end) window.
func (r *BudgetRepository) GetSpentPerCategory(userID uuid.UUID, window domain.TimeWindow) (map[string]decimal.Decimal, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx,
		`SELECT category, COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE user_id = $1
		   AND type = 'expense'
		   AND created_at >= $2
		   AND created_at < $3
		 GROUP BY category`,
		userID, window.Start, window.End,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spent := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var total pgtype.Numeric

		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		spent[category] = pgNumericToDecimal(total)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return spent, nil
}
