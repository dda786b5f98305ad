package ports

import (
	"context"
	"time"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// GenerationGateway is the hosted language/image model.
type GenerationGateway interface {
	GenerateMeal(ctx context.Context, prefs domain.MealPreferences) (*domain.Meal, error)
	GeneratePlan(ctx context.Context, req domain.PlanRequest) (*domain.WeeklyPlan, error)
	GenerateImage(ctx context.Context, title, description string) (string, error)
}

// GenerationLog records successful generations for statistics.
type GenerationLog interface {
	Record(ctx context.Context, rec domain.GenerationRecord) error
	CountByKind(ctx context.Context, since time.Time) ([]domain.CountBy, error)
}
