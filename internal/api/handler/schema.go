package handler

import (
	"time"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Wizard ---

// wizardPatchRequest carries the fields the client changed. Absent fields are
// left untouched; a present empty list clears the tags.
type wizardPatchRequest struct {
	FirstName           *string  `json:"firstName"           validate:"omitempty,max=100"`
	LastName            *string  `json:"lastName"            validate:"omitempty,max=100"`
	Email               *string  `json:"email"               validate:"omitempty,max=254"`
	Password            *string  `json:"password"            validate:"omitempty,max=72"`
	ConfirmPassword     *string  `json:"confirmPassword"     validate:"omitempty,max=72"`
	DietaryRestrictions []string `json:"dietaryRestrictions" validate:"omitempty,max=50,dive,max=100"`
	Allergies           []string `json:"allergies"           validate:"omitempty,max=50,dive,max=100"`
	DislikedIngredients []string `json:"dislikedIngredients" validate:"omitempty,max=50,dive,max=100"`
	HealthGoals         []string `json:"healthGoals"         validate:"omitempty,max=20,dive,max=100"`
	ActivityLevel       *string  `json:"activityLevel"       validate:"omitempty,oneof=sedentary light moderate active very_active"`
	CurrentWeight       *string  `json:"currentWeight"       validate:"omitempty,max=16"`
	TargetWeight        *string  `json:"targetWeight"        validate:"omitempty,max=16"`
	Membership          *string  `json:"membership"          validate:"omitempty,max=32"`
}

// draftResponse is the draft as shown to the client. Passwords never leave
// the server; HasPassword tells the form whether one was entered.
type draftResponse struct {
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	HasPassword         bool     `json:"hasPassword"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           []string `json:"allergies"`
	DislikedIngredients []string `json:"dislikedIngredients"`
	HealthGoals         []string `json:"healthGoals"`
	ActivityLevel       string   `json:"activityLevel"`
	CurrentWeight       string   `json:"currentWeight"`
	TargetWeight        string   `json:"targetWeight"`
	Membership          string   `json:"membership"`
}

type wizardResponse struct {
	ID          string             `json:"id"`
	State       domain.WizardState `json:"state"`
	Step        int                `json:"step"`
	TotalSteps  int                `json:"totalSteps"`
	Direction   domain.Direction   `json:"direction"`
	Draft       draftResponse      `json:"draft"`
	Errors      domain.FieldErrors `json:"errors"`
	SubmitError string             `json:"submitError,omitempty"`
	AccountID   string             `json:"accountId,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	AccessToken string          `json:"accessToken,omitempty"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Account     *domain.Account `json:"account"`
}

// --- Profile ---

type profileRequest struct {
	FirstName           string   `json:"firstName"           validate:"required,max=100"`
	LastName            string   `json:"lastName"            validate:"required,max=100"`
	DietaryRestrictions []string `json:"dietaryRestrictions" validate:"max=50,dive,max=100"`
	Allergies           []string `json:"allergies"           validate:"max=50,dive,max=100"`
	DislikedIngredients []string `json:"dislikedIngredients" validate:"max=50,dive,max=100"`
	HealthGoals         []string `json:"healthGoals"         validate:"max=20,dive,max=100"`
	ActivityLevel       string   `json:"activityLevel"       validate:"omitempty,oneof=sedentary light moderate active very_active"`
	CurrentWeight       *float64 `json:"currentWeight"       validate:"omitempty,gt=0,lt=1000"`
	TargetWeight        *float64 `json:"targetWeight"        validate:"omitempty,gt=0,lt=1000"`
	Membership          string   `json:"membership"          validate:"omitempty,oneof=basic pro ultimate"`
}

// --- Meals ---

type generateMealRequest struct {
	DietaryPreference   string  `json:"dietaryPreference"   validate:"max=200"`
	Allergies           string  `json:"allergies"           validate:"max=500"`
	DislikedIngredients string  `json:"dislikedIngredients" validate:"max=500"`
	MealType            string  `json:"mealType"            validate:"omitempty,oneof=breakfast lunch dinner snack"`
	HealthGoal          string  `json:"healthGoal"          validate:"max=200"`
	CalorieTarget       float64 `json:"calorieTarget"       validate:"gte=0,lte=10000"`
}

type generatePlanRequest struct {
	generateMealRequest
	Days               int     `json:"days"               validate:"omitempty,min=1,max=7"`
	MealsPerDay        int     `json:"mealsPerDay"        validate:"omitempty,min=1,max=6"`
	DailyCalorieTarget float64 `json:"dailyCalorieTarget" validate:"gte=0,lte=20000"`
}

type generateImageRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}
