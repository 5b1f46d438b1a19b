package postgres

import (
	"context"
	"fmt"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var description pgtype.Text
	if transaction.Description != nil {
		description.String = *transaction.Description
		description.Valid = true
	}

	err = r.pool.QueryRow(ctx,
		`INSERT INTO transactions (user_id, category, amount, type, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		transaction.UserID, transaction.Category, amount, string(transaction.Type), description, transaction.CreatedAt,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetByUser retrieves a user's transactions newest first, optionally
// narrowed by type and [start, end) window.
func (r *TransactionRepository) GetByUser(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	ctx := context.Background()

	query := `SELECT id, user_id, category, amount, type, description, created_at
	          FROM transactions
	          WHERE user_id = $1`
	args := []interface{}{userID}

	if filters != nil {
		if filters.Type != nil {
			args = append(args, string(*filters.Type))
			query += fmt.Sprintf(" AND type = $%d", len(args))
		}
		if filters.Window != nil {
			args = append(args, filters.Window.Start)
			query += fmt.Sprintf(" AND created_at >= $%d", len(args))
			args = append(args, filters.Window.End)
			query += fmt.Sprintf(" AND created_at < $%d", len(args))
		}
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx := &domain.Transaction{}
		var amount pgtype.Numeric
		var txType string
		var description pgtype.Text

		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Category, &amount, &txType, &description, &tx.CreatedAt); err != nil {
			return nil, err
		}

		tx.Amount = pgNumericToDecimal(amount)
		tx.Type = domain.TransactionType(txType)
		if description.Valid {
			tx.Description = &description.String
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
