package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
	"github.com/mealwise/mealplanner/internal/pkg/metrics"
)

// MealHandler proxies generation requests to the meal service. Callers may be
// anonymous; a signed-in caller is attributed in the generation log.
type MealHandler struct {
	service ports.MealService
}

func NewMealHandler(service ports.MealService) *MealHandler {
	return &MealHandler{service: service}
}

// GenerateMeal handles POST /api/generate-meal.
//
// @Summary      Generate a single meal
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        apikey  header    string               false  "Public client key"
// @Param        body    body      generateMealRequest  true   "Meal preferences"
// @Success      200     {object}  domain.Meal
// @Failure      400     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Failure      429     {object}  errorResponse
// @Failure      502     {object}  errorResponse  "Provider error, verbatim"
// @Router       /api/generate-meal [post]
func (h *MealHandler) GenerateMeal(c echo.Context) error {
	var req generateMealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	defer observe(domain.KindMeal)()
	meal, err := h.service.GenerateMeal(c.Request().Context(), ctxAccountID(c), toPreferences(req))
	countGeneration(domain.KindMeal, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meal)
}

// GeneratePlan handles POST /api/generate-meal-plan.
//
// @Summary      Generate a multi-day meal plan
// @Description  Days default to 7 (1..7) and meals per day to 3 (1..6). Daily
// @Description  totals are computed from the meals.
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        apikey  header    string               false  "Public client key"
// @Param        body    body      generatePlanRequest  true   "Plan parameters"
// @Success      200     {object}  domain.WeeklyPlan
// @Failure      400     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Failure      429     {object}  errorResponse
// @Failure      502     {object}  errorResponse  "Provider error, verbatim"
// @Router       /api/generate-meal-plan [post]
func (h *MealHandler) GeneratePlan(c echo.Context) error {
	var req generatePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	defer observe(domain.KindPlan)()
	plan, err := h.service.GeneratePlan(c.Request().Context(), ctxAccountID(c), toPlanRequest(req))
	countGeneration(domain.KindPlan, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// GenerateImage handles POST /api/generate-meal-image.
//
// @Summary      Generate a picture of a meal
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        apikey  header    string                false  "Public client key"
// @Param        body    body      generateImageRequest  true   "Meal to picture"
// @Success      200     {object}  imageResponse
// @Failure      400     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Failure      502     {object}  errorResponse  "Provider error, verbatim"
// @Router       /api/generate-meal-image [post]
func (h *MealHandler) GenerateImage(c echo.Context) error {
	var req generateImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	defer observe(domain.KindImage)()
	url, err := h.service.GenerateImage(c.Request().Context(), ctxAccountID(c), req.Title, req.Description)
	countGeneration(domain.KindImage, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, imageResponse{ImageURL: url})
}

func observe(kind domain.GenerationKind) func() {
	start := time.Now()
	return func() {
		metrics.GenerationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}
}

func countGeneration(kind domain.GenerationKind, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.GenerationsTotal.WithLabelValues(string(kind), result).Inc()
}
