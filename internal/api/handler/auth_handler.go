package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mealwise/mealplanner/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionStore
}

func NewAuthHandler(sessions ports.SessionStore) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates an account and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := h.sessions.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session, true))
}

// Logout revokes the caller's access token.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.SignOut(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the caller's session without echoing the token.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session, false))
}
