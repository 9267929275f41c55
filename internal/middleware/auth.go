package middleware

import (
	"net/http"
	"strings"

	"ecommerce-platform/internal/auth"

	"github.com/labstack/echo/v4"
)

const userIDKey = "user_id"

// AuthMiddleware requires an "Authorization: Bearer <token>" header and
// stores the verified user id on the echo context.
func AuthMiddleware(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token").SetInternal(err)
			}

			c.Set(userIDKey, claims.UserID)
			return next(c)
		}
	}
}

// UserID returns the identity set by AuthMiddleware, or "".
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
