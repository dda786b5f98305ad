package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
	"github.com/mealwise/mealplanner/internal/pkg/metrics"
)

// WizardHandler exposes the registration wizard. Every response that carries
// a wizard shows it as it is after the call, including field errors and the
// submit message of a failed registration.
type WizardHandler struct {
	service ports.WizardService
}

func NewWizardHandler(service ports.WizardService) *WizardHandler {
	return &WizardHandler{service: service}
}

// Start handles POST /api/register/wizard.
//
// @Summary      Start a registration wizard
// @Tags         register
// @Produce      json
// @Success      201  {object}  wizardResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/register/wizard [post]
func (h *WizardHandler) Start(c echo.Context) error {
	w, err := h.service.Start(c.Request().Context())
	if err != nil {
		metrics.WizardTransitionsTotal.WithLabelValues("start", "rejected").Inc()
		return err
	}
	metrics.WizardTransitionsTotal.WithLabelValues("start", "ok").Inc()
	return c.JSON(http.StatusCreated, toWizardResponse(w))
}

// Get handles GET /api/register/wizard/:id.
//
// @Summary      Get a registration wizard
// @Tags         register
// @Produce      json
// @Param        id   path      string  true  "Wizard id"
// @Success      200  {object}  wizardResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/register/wizard/{id} [get]
func (h *WizardHandler) Get(c echo.Context) error {
	w, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWizardResponse(w))
}

// Update handles PATCH /api/register/wizard/:id.
//
// @Summary      Change draft fields
// @Tags         register
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Wizard id"
// @Param        body  body      wizardPatchRequest  true  "Changed fields"
// @Success      200   {object}  wizardResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/register/wizard/{id} [patch]
func (h *WizardHandler) Update(c echo.Context) error {
	var req wizardPatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	w, err := h.service.Update(c.Request().Context(), c.Param("id"), toDraftPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWizardResponse(w))
}

// Next handles POST /api/register/wizard/:id/next.
//
// @Summary      Validate the current step and advance
// @Tags         register
// @Produce      json
// @Param        id   path      string  true  "Wizard id"
// @Success      200  {object}  wizardResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  wizardResponse  "Step has invalid fields"
// @Router       /api/register/wizard/{id}/next [post]
func (h *WizardHandler) Next(c echo.Context) error {
	w, err := h.service.Next(c.Request().Context(), c.Param("id"))
	return h.respond(c, "next", w, err)
}

// Back handles POST /api/register/wizard/:id/back.
//
// @Summary      Return to the previous step
// @Tags         register
// @Produce      json
// @Param        id   path      string  true  "Wizard id"
// @Success      200  {object}  wizardResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/register/wizard/{id}/back [post]
func (h *WizardHandler) Back(c echo.Context) error {
	w, err := h.service.Back(c.Request().Context(), c.Param("id"))
	return h.respond(c, "back", w, err)
}

// Resume handles POST /api/register/wizard/:id/resume.
//
// @Summary      Reopen a failed registration on step 1
// @Tags         register
// @Produce      json
// @Param        id   path      string  true  "Wizard id"
// @Success      200  {object}  wizardResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/register/wizard/{id}/resume [post]
func (h *WizardHandler) Resume(c echo.Context) error {
	w, err := h.service.Resume(c.Request().Context(), c.Param("id"))
	return h.respond(c, "resume", w, err)
}

// Submit handles POST /api/register/wizard/:id/submit.
//
// @Summary      Create the account
// @Description  Re-validates the whole draft. A rejected registration returns the
// @Description  failed wizard with its user-facing submitError; the draft is kept.
// @Tags         register
// @Produce      json
// @Param        id   path      string  true  "Wizard id"
// @Success      200  {object}  wizardResponse
// @Failure      409  {object}  wizardResponse  "Account already exists"
// @Failure      422  {object}  wizardResponse  "Invalid fields or email rejected"
// @Failure      429  {object}  wizardResponse  "Too many sign-up attempts"
// @Failure      502  {object}  wizardResponse  "Account could not be created"
// @Router       /api/register/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c echo.Context) error {
	w, err := h.service.Submit(c.Request().Context(), c.Param("id"))
	if err == nil {
		metrics.RegistrationsTotal.WithLabelValues("success").Inc()
		metrics.WizardTransitionsTotal.WithLabelValues("submit", "ok").Inc()
		return c.JSON(http.StatusOK, toWizardResponse(w))
	}
	if !accountRejected(w, err) {
		return h.respond(c, "submit", w, err)
	}

	status, outcome := submitStatus(err)
	metrics.RegistrationsTotal.WithLabelValues(outcome).Inc()
	metrics.WizardTransitionsTotal.WithLabelValues("submit", "rejected").Inc()
	return c.JSON(status, toWizardResponse(w))
}

// Abandon handles DELETE /api/register/wizard/:id.
//
// @Summary      Discard a registration wizard
// @Tags         register
// @Param        id   path  string  true  "Wizard id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/register/wizard/{id} [delete]
func (h *WizardHandler) Abandon(c echo.Context) error {
	if err := h.service.Abandon(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.WizardTransitionsTotal.WithLabelValues("abandon", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

// respond renders a navigation result. A step validation failure is a 422
// carrying the wizard and its field errors; other failures go to the error
// handler.
func (h *WizardHandler) respond(c echo.Context, action string, w domain.Wizard, err error) error {
	switch {
	case err == nil:
		metrics.WizardTransitionsTotal.WithLabelValues(action, "ok").Inc()
		return c.JSON(http.StatusOK, toWizardResponse(w))
	case errors.Is(err, domain.ErrStepInvalid):
		metrics.WizardTransitionsTotal.WithLabelValues(action, "invalid").Inc()
		return c.JSON(http.StatusUnprocessableEntity, toWizardResponse(w))
	default:
		metrics.WizardTransitionsTotal.WithLabelValues(action, "rejected").Inc()
		return err
	}
}

// accountRejected reports whether err came from the account call of this
// submit. A wizard that was already Failed fails BeginSubmit with an invalid
// transition and never reaches the account call.
func accountRejected(w domain.Wizard, err error) bool {
	if w.State != domain.StateFailed {
		return false
	}
	return !errors.Is(err, domain.ErrInvalidTransition) && !errors.Is(err, domain.ErrWizardClosed)
}

func submitStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusUnprocessableEntity, "invalid_email"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, "duplicate"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	default:
		return http.StatusBadGateway, "error"
	}
}
