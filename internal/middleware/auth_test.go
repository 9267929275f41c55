package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-platform/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, tokens *auth.TokenManager, header string) (string, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var seen string
	h := AuthMiddleware(tokens)(func(c echo.Context) error {
		seen = UserID(c)
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	return seen, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("k", 0)
	tok, err := tokens.Issue("user-1", "u@x.com")
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + tok, "bearer " + tok} {
		userID, err := runAuth(t, tokens, header)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tokens := auth.NewTokenManager("k", 0)
	foreign, err := auth.NewTokenManager("other", 0).Issue("user-1", "u@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing", header: "", message: "Access token required"},
		{name: "no scheme", header: foreign, message: "Access token required"},
		{name: "basic scheme", header: "Basic dXNlcjpwdw==", message: "Access token required"},
		{name: "empty bearer", header: "Bearer ", message: "Access token required"},
		{name: "garbage", header: "Bearer garbage", message: "Invalid token"},
		{name: "foreign signer", header: "Bearer " + foreign, message: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := runAuth(t, tokens, tt.header)
			assert.Empty(t, userID)

			var he *echo.HTTPError
			require.True(t, errors.As(err, &he))
			assert.Equal(t, http.StatusUnauthorized, he.Code)
			assert.Equal(t, tt.message, he.Message)
		})
	}
}

func TestAuthMiddleware_SetsOnlyUserID(t *testing.T) {
	tokens := auth.NewTokenManager("k", 0)
	tok, err := tokens.Issue("user-1", "u@x.com")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	c := e.NewContext(req, httptest.NewRecorder())

	require.NoError(t, AuthMiddleware(tokens)(func(c echo.Context) error { return nil })(c))
	assert.Equal(t, "user-1", c.Get(userIDKey))
	assert.Nil(t, c.Get("email"))
}
