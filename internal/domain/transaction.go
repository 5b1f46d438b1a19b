package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a recognized transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense entry. Transactions are
// immutable once recorded; reporting only ever reads them.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionFilters narrows a transaction fetch. A nil field means
// "no constraint".
type TransactionFilters struct {
	Type   *TransactionType
	Window *TimeWindow
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	// GetByUser returns the user's transactions ordered by created_at
	// descending, optionally narrowed by type and time window.
	GetByUser(userID uuid.UUID, filters *TransactionFilters) ([]*Transaction, error)
}
