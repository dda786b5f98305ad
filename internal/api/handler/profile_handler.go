package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mealwise/mealplanner/internal/core/ports"
)

// ProfileHandler serves the signed-in account's own profile.
type ProfileHandler struct {
	sessions ports.SessionStore
}

func NewProfileHandler(sessions ports.SessionStore) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

// Get handles GET /api/profile.
//
// @Summary      Get my profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	profile, err := h.sessions.GetProfile(c.Request().Context(), session.Account.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Put handles PUT /api/profile. The whole attribute set is replaced.
//
// @Summary      Replace my profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile attributes"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Put(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	profile := toProfile(req, session.Account)
	if err := h.sessions.UpsertProfile(ctx, &profile); err != nil {
		return err
	}

	saved, err := h.sessions.GetProfile(ctx, session.Account.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}
