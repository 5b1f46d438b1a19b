package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/finsight/finsight-backend/internal/auth"
	"github.com/finsight/finsight-backend/internal/service"
	"github.com/finsight/finsight-backend/internal/testutil"
)

func newAuthHandler() (*AuthHandler, *testutil.MockUserRepository) {
	userRepo := testutil.NewMockUserRepository()
	tokens := auth.NewTokenManager("test-secret", "finsight", time.Hour)
	return NewAuthHandler(service.NewAuthService(userRepo, tokens)), userRepo
}

func TestRegister_Created(t *testing.T) {
	e := newTestEcho()
	handler, _ := newAuthHandler()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"s3cret-password"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	requireStatus(t, rec, http.StatusCreated)

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Email != "alice@example.com" {
		t.Errorf("Expected email 'alice@example.com', got %s", response.Email)
	}
	if response.ID == "" {
		t.Error("Expected user ID to be set")
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	handler, _ := newAuthHandler()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"not-an-email","password":"s3cret-password"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRegister_ShortPassword(t *testing.T) {
	e := newTestEcho()
	handler, _ := newAuthHandler()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"short"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	e := newTestEcho()
	handler, _ := newAuthHandler()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"s3cret-password"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	requireStatus(t, rec, http.StatusCreated)

	c, rec = newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"another-password"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	requireStatus(t, rec, http.StatusConflict)
}

func TestLogin_ReturnsToken(t *testing.T) {
	e := newTestEcho()
	handler, _ := newAuthHandler()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"s3cret-password"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	requireStatus(t, rec, http.StatusCreated)

	c, rec = newJSONContext(e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"s3cret-password"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	requireStatus(t, rec, http.StatusOK)

	var response LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Token == "" {
		t.Error("Expected token to be set")
	}
	if response.User.Email != "alice@example.com" {
		t.Errorf("Expected email 'alice@example.com', got %s", response.User.Email)
	}
	if _, err := time.Parse(time.RFC3339, response.ExpiresAt); err != nil {
		t.Errorf("Expected RFC 3339 expiry, got %s", response.ExpiresAt)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newTestEcho()
	handler, _ := newAuthHandler()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"s3cret-password"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	requireStatus(t, rec, http.StatusCreated)

	c, rec = newJSONContext(e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"wrong-password"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	e := newTestEcho()
	handler, _ := newAuthHandler()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"nobody@example.com","password":"s3cret-password"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	requireStatus(t, rec, http.StatusUnauthorized)
}
