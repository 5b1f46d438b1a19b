package service

import (
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// CreateTransactionInput carries the fields for a new transaction.
// CreatedAt may be backdated; aggregation handles arbitrary timestamps.
type CreateTransactionInput struct {
	Category    string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Description *string
	CreatedAt   *time.Time
}

// CreateTransaction validates and records a transaction for the user
func (s *TransactionService) CreateTransaction(userID uuid.UUID, input CreateTransactionInput) (*domain.Transaction, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domain.ErrCategoryRequired
	}
	if len(category) > domain.MaxCategoryLength {
		return nil, domain.ErrCategoryTooLong
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}
	if input.Description != nil && len(*input.Description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}

	createdAt := time.Now()
	if input.CreatedAt != nil {
		createdAt = *input.CreatedAt
	}

	transaction := &domain.Transaction{
		UserID:      userID,
		Category:    category,
		Amount:      input.Amount,
		Type:        input.Type,
		Description: input.Description,
		CreatedAt:   createdAt,
	}

	return s.transactionRepo.Create(transaction)
}

// GetTransactions returns all of the user's transactions, newest first
func (s *TransactionService) GetTransactions(userID uuid.UUID) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetByUser(userID, nil)
}
