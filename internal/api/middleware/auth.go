package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// Context keys set by Auth.
const (
	CtxSession   = "session"
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// SessionResolver turns a bearer token into a live session.
type SessionResolver interface {
	CurrentSession(ctx context.Context, accessToken string) (*domain.Session, error)
}

// Auth resolves the bearer token into a session and injects it into context.
func Auth(sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			session, err := sessions.CurrentSession(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set(CtxSession, session)
			c.Set(CtxAccountID, session.Account.ID)
			c.Set(CtxRole, session.Account.Role)

			return next(c)
		}
	}
}

// OptionalAuth behaves like Auth when an Authorization header is present and
// passes anonymous requests through untouched.
func OptionalAuth(sessions SessionResolver) echo.MiddlewareFunc {
	authenticate := Auth(sessions)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withSession := authenticate(next)
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			return withSession(c)
		}
	}
}
