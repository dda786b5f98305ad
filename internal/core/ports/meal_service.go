package ports

import (
	"context"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// MealService defines the generation use cases.
type MealService interface {
	GenerateMeal(ctx context.Context, accountID string, prefs domain.MealPreferences) (*domain.Meal, error)
	GeneratePlan(ctx context.Context, accountID string, req domain.PlanRequest) (*domain.WeeklyPlan, error)
	GenerateImage(ctx context.Context, accountID, title, description string) (string, error)
}

// AdminService defines the admin dashboard use cases.
type AdminService interface {
	Stats(ctx context.Context) (*domain.AdminStats, error)
	ListUsers(ctx context.Context, filter domain.ProfileFilter) ([]*domain.Profile, error)
	WatchProfiles(ctx context.Context) (<-chan domain.ProfileChange, error)
	EnsureProfileColumns(ctx context.Context) []domain.ColumnResult
	EnsureMembershipColumn(ctx context.Context) []domain.ColumnResult
}
