package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
)

type MealService struct {
	gateway ports.GenerationGateway
	history ports.GenerationLog
	logger  zerolog.Logger
	now     func() time.Time
}

func NewMealService(gateway ports.GenerationGateway, history ports.GenerationLog, logger zerolog.Logger) *MealService {
	return &MealService{
		gateway: gateway,
		history: history,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GenerateMeal asks the gateway for a single meal matching prefs.
func (s *MealService) GenerateMeal(ctx context.Context, accountID string, prefs domain.MealPreferences) (*domain.Meal, error) {
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}

	meal, err := s.gateway.GenerateMeal(ctx, prefs)
	if err != nil {
		return nil, generationError(err)
	}
	if meal.MealType == "" {
		meal.MealType = prefs.MealType
	}

	s.record(ctx, accountID, domain.KindMeal, meal.Title)
	return meal, nil
}

// GeneratePlan asks the gateway for a multi-day plan. Missing day and meal
// counts fall back to a full week of three meals. The returned plan is trimmed
// to the requested span and its totals are recomputed from the meals.
func (s *MealService) GeneratePlan(ctx context.Context, accountID string, req domain.PlanRequest) (*domain.WeeklyPlan, error) {
	if err := validatePreferences(req.Preferences); err != nil {
		return nil, err
	}
	if req.Days == 0 {
		req.Days = domain.DefaultPlanDays
	}
	if req.MealsPerDay == 0 {
		req.MealsPerDay = domain.DefaultMealsPerDay
	}
	if req.Days < 1 || req.Days > domain.MaxPlanDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", domain.ErrInvalidMealRequest, domain.MaxPlanDays)
	}
	if req.MealsPerDay < 1 || req.MealsPerDay > domain.MaxMealsPerDay {
		return nil, fmt.Errorf("%w: meals per day must be between 1 and %d", domain.ErrInvalidMealRequest, domain.MaxMealsPerDay)
	}
	if req.DailyCalorieTarget < 0 {
		return nil, fmt.Errorf("%w: daily calorie target must not be negative", domain.ErrInvalidMealRequest)
	}

	plan, err := s.gateway.GeneratePlan(ctx, req)
	if err != nil {
		return nil, generationError(err)
	}
	if len(plan.Days) == 0 {
		return nil, &domain.GenerationError{Message: "the generated plan has no days"}
	}
	if len(plan.Days) > req.Days {
		plan.Days = plan.Days[:req.Days]
	}
	for i := range plan.Days {
		plan.Days[i].Day = i + 1
		if strings.TrimSpace(plan.Days[i].Label) == "" {
			plan.Days[i].Label = fmt.Sprintf("Day %d", i+1)
		}
	}
	plan.DailyCalorieTarget = req.DailyCalorieTarget
	plan.Recalculate()

	s.record(ctx, accountID, domain.KindPlan, fmt.Sprintf("%d-day plan", len(plan.Days)))
	return plan, nil
}

// GenerateImage returns the URL of a generated picture of the meal.
func (s *MealService) GenerateImage(ctx context.Context, accountID, title, description string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", domain.ErrInvalidMealRequest)
	}

	url, err := s.gateway.GenerateImage(ctx, title, strings.TrimSpace(description))
	if err != nil {
		return "", generationError(err)
	}

	s.record(ctx, accountID, domain.KindImage, title)
	return url, nil
}

func (s *MealService) record(ctx context.Context, accountID string, kind domain.GenerationKind, title string) {
	if s.history == nil {
		return
	}
	rec := domain.GenerationRecord{
		AccountID: accountID,
		Kind:      kind,
		Title:     title,
		CreatedAt: s.now(),
	}
	if err := s.history.Record(ctx, rec); err != nil {
		s.logger.Warn().Err(err).Str("kind", string(kind)).Msg("failed to record generation")
	}
}

func validatePreferences(p domain.MealPreferences) error {
	if !p.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal type %q", domain.ErrInvalidMealRequest, p.MealType)
	}
	if p.CalorieTarget < 0 {
		return fmt.Errorf("%w: calorie target must not be negative", domain.ErrInvalidMealRequest)
	}
	return nil
}

// generationError makes sure every gateway failure matches domain.ErrGeneration
// while keeping the provider message intact.
func generationError(err error) error {
	if errors.Is(err, domain.ErrGeneration) || errors.Is(err, context.Canceled) {
		return err
	}
	return &domain.GenerationError{Message: err.Error(), Err: err}
}
