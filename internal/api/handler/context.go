package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mealwise/mealplanner/internal/api/middleware"
	"github.com/mealwise/mealplanner/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. A missing
// session means the route was mounted without Auth; reject with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.CtxSession).(*domain.Session)
	if session == nil || session.Account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return session, nil
}

// ctxAccountID returns the signed-in account id, or "" for anonymous callers.
func ctxAccountID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxAccountID).(string)
	return id
}
