package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finsight/finsight-backend/internal/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) (*AuthMiddleware, *auth.TokenManager) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", "finsight", time.Hour)
	return NewAuthMiddleware(tokens), tokens
}

func runAuthenticated(t *testing.T, m *AuthMiddleware, header string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID uuid.UUID
	next := func(c echo.Context) error {
		seenUserID = GetUserID(c)
		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate()(next)(c)
	require.NoError(t, err)
	return rec, seenUserID
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m, tokens := newTestAuth(t)

	userID := uuid.New()
	token, _, err := tokens.Issue(userID)
	require.NoError(t, err)

	rec, seenUserID := runAuthenticated(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenUserID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestAuth(t)

	rec, _ := runAuthenticated(t, m, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_BadHeaderFormat(t *testing.T) {
	m, tokens := newTestAuth(t)

	token, _, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	rec, _ := runAuthenticated(t, m, "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	m, _ := newTestAuth(t)

	rec, _ := runAuthenticated(t, m, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	m, _ := newTestAuth(t)

	other := auth.NewTokenManager("other-secret", "finsight", time.Hour)
	token, _, err := other.Issue(uuid.New())
	require.NoError(t, err)

	rec, _ := runAuthenticated(t, m, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_Unauthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, uuid.Nil, GetUserID(c))
}
