package service

import (
	"sort"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// The aggregation helpers below are pure functions over an
// in-memory transaction snapshot. They re-check window membership
// themselves rather than trusting the store to have pre-filtered.

// sumByType sums the amounts of in-window transactions of the given
// type. Returns zero when nothing matches.
func sumByType(txs []*domain.Transaction, window domain.TimeWindow, txType domain.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type == txType && window.Contains(tx.CreatedAt) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// maxByType returns the largest single amount among in-window
// transactions of the given type. Absence is a valid zero result, not
// an error.
func maxByType(txs []*domain.Transaction, window domain.TimeWindow, txType domain.TransactionType) decimal.Decimal {
	max := decimal.Zero
	for _, tx := range txs {
		if tx.Type == txType && window.Contains(tx.CreatedAt) && tx.Amount.GreaterThan(max) {
			max = tx.Amount
		}
	}
	return max
}

// topCategories ranks categories of in-window transactions of the
// given type by summed amount, descending. Equal sums are broken by
// category name ascending so the ranking is reproducible. The result
// is truncated to k.
func topCategories(txs []*domain.Transaction, window domain.TimeWindow, txType domain.TransactionType, k int) []string {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type == txType && window.Contains(tx.CreatedAt) {
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}

	type categoryTotal struct {
		name  string
		total decimal.Decimal
	}
	ranked := make([]categoryTotal, 0, len(totals))
	for name, total := range totals {
		ranked = append(ranked, categoryTotal{name: name, total: total})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].total.Equal(ranked[j].total) {
			return ranked[i].total.GreaterThan(ranked[j].total)
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	names := make([]string, len(ranked))
	for i, ct := range ranked {
		names[i] = ct.name
	}
	return names
}
