package service

import (
	"fmt"
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/finsight/finsight-backend/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService handles dashboard-related business logic
type DashboardService struct {
	transactionRepo domain.TransactionRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(transactionRepo domain.TransactionRepository) *DashboardService {
	return &DashboardService{transactionRepo: transactionRepo}
}

// GetSummary returns lifetime income/expense totals plus the
// trailing-month spending trend for the user.
func (s *DashboardService) GetSummary(userID uuid.UUID, now time.Time) (*domain.DashboardSummary, error) {
	transactions, err := s.transactionRepo.GetByUser(userID, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	return s.BuildSummary(now, transactions), nil
}

// BuildSummary is pure composition over an in-memory snapshot.
func (s *DashboardService) BuildSummary(now time.Time, transactions []*domain.Transaction) *domain.DashboardSummary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionTypeIncome:
			totalIncome = totalIncome.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	return &domain.DashboardSummary{
		TotalIncome:     totalIncome,
		TotalExpense:    totalExpense,
		MonthlySpending: bucketizeMonthly(now, transactions),
	}
}

// bucketizeMonthly assigns expense transactions to trailing
// calendar-month buckets, oldest first. Labels come from real calendar
// arithmetic, never fixed day counts, so days near month boundaries
// land in the right bucket. A transaction whose month is outside the
// label set contributes nothing: the store-side prefilter should have
// excluded it, but the bucketizer stays defensive.
func bucketizeMonthly(now time.Time, transactions []*domain.Transaction) []domain.MonthlyBucket {
	labels := util.TrailingMonthLabels(now, domain.TrailingMonths)

	index := make(map[string]int, len(labels))
	buckets := make([]domain.MonthlyBucket, len(labels))
	for i, label := range labels {
		buckets[i] = domain.MonthlyBucket{Month: label, TotalExpense: decimal.Zero}
		index[label] = i
	}

	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		if i, ok := index[util.MonthLabel(tx.CreatedAt)]; ok {
			buckets[i].TotalExpense = buckets[i].TotalExpense.Add(tx.Amount)
		}
	}

	return buckets
}
