package domain

import (
	"errors"
	"time"
)

// MealType is the slot a generated meal is meant for.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

const (
	DefaultPlanDays    = 7
	MaxPlanDays        = 7
	DefaultMealsPerDay = 3
	MaxMealsPerDay     = 6
)

// ErrGeneration matches every failure of the generation gateway.
var ErrGeneration = errors.New("generation failed")

// GenerationError carries the provider's failure message, which is shown to the
// user as-is. It matches ErrGeneration under errors.Is.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string { return e.Message }

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }

// ErrInvalidMealRequest reports generation parameters outside their allowed range.
var ErrInvalidMealRequest = errors.New("invalid meal request")

// Valid reports whether t is a known meal type. The empty type means "any".
func (t MealType) Valid() bool {
	switch t {
	case "", MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealPreferences describes what the user wants generated.
type MealPreferences struct {
	DietaryPreference   string
	Allergies           string
	DislikedIngredients string
	MealType            MealType
	HealthGoal          string
	CalorieTarget       float64
}

// Nutrition is a per-serving (or aggregated) macro estimate.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

// Meal is a generated meal suggestion. It is never stored as authoritative data.
type Meal struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MealType    MealType  `json:"mealType,omitempty"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Nutrition   Nutrition `json:"nutrition"`
	PrepTime    string    `json:"prepTime"`
	Difficulty  string    `json:"difficulty"`
	Servings    int       `json:"servings"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// PlanRequest asks for a multi-day plan.
type PlanRequest struct {
	Preferences        MealPreferences
	Days               int
	MealsPerDay        int
	DailyCalorieTarget float64
}

// DayPlan is one day of a generated plan.
type DayPlan struct {
	Day    int       `json:"day"`
	Label  string    `json:"label"`
	Meals  []Meal    `json:"meals"`
	Totals Nutrition `json:"totals"`
}

// WeeklyPlan is a generated multi-day plan.
type WeeklyPlan struct {
	Days                 []DayPlan `json:"days"`
	DailyCalorieTarget   float64   `json:"dailyCalorieTarget,omitempty"`
	AverageDailyCalories float64   `json:"averageDailyCalories"`
}

// Recalculate recomputes every day's totals from its meals and the average
// daily calories over the plan.
func (p *WeeklyPlan) Recalculate() {
	var sum float64
	for i := range p.Days {
		var totals Nutrition
		for _, m := range p.Days[i].Meals {
			totals = totals.Add(m.Nutrition)
		}
		p.Days[i].Totals = totals
		sum += totals.Calories
	}
	if len(p.Days) > 0 {
		p.AverageDailyCalories = sum / float64(len(p.Days))
	} else {
		p.AverageDailyCalories = 0
	}
}

// GenerationKind labels generation log entries and metrics.
type GenerationKind string

const (
	KindMeal  GenerationKind = "meal"
	KindPlan  GenerationKind = "plan"
	KindImage GenerationKind = "image"
)

// GenerationRecord is one successful generation, kept for admin statistics.
type GenerationRecord struct {
	AccountID string
	Kind      GenerationKind
	Title     string
	CreatedAt time.Time
}
