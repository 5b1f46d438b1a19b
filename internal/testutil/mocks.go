package testutil

import (
	"time"

	"github.com/finsight/finsight-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	ByID     map[uuid.UUID]*domain.User
	ByEmail  map[string]*domain.User
	CreateFn func(user *domain.User) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByID:    make(map[uuid.UUID]*domain.User),
		ByEmail: make(map[string]*domain.User),
	}
}

// Create creates a new user, enforcing email uniqueness like the store
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	if _, ok := m.ByEmail[user.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	m.ByID[user.ID] = user
	m.ByEmail[user.Email] = user
	return user, nil
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(email string) (*domain.User, error) {
	if user, ok := m.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByID[user.ID] = user
	m.ByEmail[user.Email] = user
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions []*domain.Transaction
	NextID       int64
	CreateFn     func(transaction *domain.Transaction) (*domain.Transaction, error)
	GetByUserFn  func(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{NextID: 1}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	transaction.ID = m.NextID
	m.NextID++
	m.Transactions = append(m.Transactions, transaction)
	return transaction, nil
}

// GetByUser retrieves a user's transactions newest first, honoring filters
func (m *MockTransactionRepository) GetByUser(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if m.GetByUserFn != nil {
		return m.GetByUserFn(userID, filters)
	}

	result := make([]*domain.Transaction, 0)
	for _, tx := range m.Transactions {
		if tx.UserID != userID {
			continue
		}
		if filters != nil {
			if filters.Type != nil && tx.Type != *filters.Type {
				continue
			}
			if filters.Window != nil && !filters.Window.Contains(tx.CreatedAt) {
				continue
			}
		}
		result = append(result, tx)
	}

	// Newest first, matching the store's ORDER BY created_at DESC
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].CreatedAt.After(result[i].CreatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}

	return result, nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	m.Transactions = append(m.Transactions, transaction)
}

// budgetKey identifies a budget row the way the store's uniqueness
// constraint does.
type budgetKey struct {
	UserID   uuid.UUID
	Category string
	Period   domain.BudgetPeriod
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets               map[budgetKey]*domain.Budget
	NextID                int64
	UpsertFn              func(userID uuid.UUID, category string, amount decimal.Decimal, period domain.BudgetPeriod, startDate, endDate time.Time) (*domain.Budget, error)
	GetSpentPerCategoryFn func(userID uuid.UUID, window domain.TimeWindow) (map[string]decimal.Decimal, error)
	Spent                 map[string]decimal.Decimal
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[budgetKey]*domain.Budget),
		NextID:  1,
		Spent:   make(map[string]decimal.Decimal),
	}
}

// Upsert inserts or replaces the budget keyed on (user, category, period)
func (m *MockBudgetRepository) Upsert(userID uuid.UUID, category string, amount decimal.Decimal, period domain.BudgetPeriod, startDate, endDate time.Time) (*domain.Budget, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(userID, category, amount, period, startDate, endDate)
	}

	key := budgetKey{UserID: userID, Category: category, Period: period}
	if existing, ok := m.Budgets[key]; ok {
		existing.Amount = amount
		existing.StartDate = startDate
		existing.EndDate = endDate
		return existing, nil
	}

	budget := &domain.Budget{
		ID:        m.NextID,
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    period,
		StartDate: startDate,
		EndDate:   endDate,
	}
	m.NextID++
	m.Budgets[key] = budget
	return budget, nil
}

// GetByUserAndPeriod retrieves a user's budgets for a period
func (m *MockBudgetRepository) GetByUserAndPeriod(userID uuid.UUID, period domain.BudgetPeriod) ([]*domain.Budget, error) {
	result := make([]*domain.Budget, 0)
	for key, budget := range m.Budgets {
		if key.UserID == userID && key.Period == period {
			result = append(result, budget)
		}
	}
	return result, nil
}

// GetSpentPerCategory returns the configured spent totals
func (m *MockBudgetRepository) GetSpentPerCategory(userID uuid.UUID, window domain.TimeWindow) (map[string]decimal.Decimal, error) {
	if m.GetSpentPerCategoryFn != nil {
		return m.GetSpentPerCategoryFn(userID, window)
	}
	return m.Spent, nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	key := budgetKey{UserID: budget.UserID, Category: budget.Category, Period: budget.Period}
	m.Budgets[key] = budget
}
