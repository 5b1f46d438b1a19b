package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidPeriod          = errors.New("invalid report period")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrCategoryRequired       = errors.New("category is required")
	ErrCategoryTooLong        = errors.New("category exceeds maximum length")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrBudgetNotFound         = errors.New("budget not found")
)

// Validation constants
const (
	MaxCategoryLength    = 100
	MaxDescriptionLength = 500
)
