package service

import (
	"errors"
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/auth"
	"github.com/finsight/finsight-backend/internal/domain"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a user with a bcrypt-hashed password
func (s *AuthService) Register(email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(&domain.User{
		Email:        email,
		PasswordHash: hash,
	})
}

// Login verifies credentials and issues an access token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, time.Time, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", time.Time{}, nil, domain.ErrInvalidCredentials
		}
		return "", time.Time{}, nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", time.Time{}, nil, err
	}

	return token, expiresAt, user, nil
}
