package middleware

import (
	"net/http"
	"strings"

	"foundercompass/internal/repository"
	"foundercompass/internal/utils"

	"github.com/labstack/echo/v4"
)

const AccessTokenCookie = "access_token"

type AuthMiddleware struct {
	JWT   *utils.JWTManager
	Users repository.UserRepository
}

// RequireAuth resolves the caller's identity. The cookie the login handler
// sets takes priority; an Authorization bearer header is the fallback for
// non-browser clients. The token subject must still resolve to an active
// user row.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil || m.Users == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
		}
		token := tokenFromCookie(c)
		if token == "" {
			token = extractBearerToken(c.Request())
		}
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
		}
		claims, err := m.JWT.ParseAccessToken(token)
		if err != nil || claims.Subject == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
		}
		user, err := m.Users.FindByEmail(c.Request().Context(), claims.Subject)
		if err != nil || user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
		}
		SetCurrentUser(c, user)
		return next(c)
	}
}

func tokenFromCookie(c echo.Context) string {
	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return strings.TrimPrefix(cookie.Value, "Bearer ")
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
