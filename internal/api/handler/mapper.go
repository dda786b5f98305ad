package handler

import (
	"github.com/mealwise/mealplanner/internal/core/domain"
)

// --- Request → domain ---

func toDraftPatch(req wizardPatchRequest) domain.DraftPatch {
	p := domain.DraftPatch{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Password:            req.Password,
		ConfirmPassword:     req.ConfirmPassword,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		DislikedIngredients: req.DislikedIngredients,
		HealthGoals:         req.HealthGoals,
		CurrentWeight:       req.CurrentWeight,
		TargetWeight:        req.TargetWeight,
	}
	if req.ActivityLevel != nil {
		level := domain.ActivityLevel(*req.ActivityLevel)
		p.ActivityLevel = &level
	}
	if req.Membership != nil {
		tier := domain.MembershipTier(*req.Membership)
		p.Membership = &tier
	}
	return p
}

func toProfile(req profileRequest, account *domain.Account) domain.Profile {
	return domain.Profile{
		AccountID:           account.ID,
		Email:               account.Email,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DietaryRestrictions: req.DietaryRestrictions,
		Allergies:           req.Allergies,
		DislikedIngredients: req.DislikedIngredients,
		HealthGoals:         req.HealthGoals,
		ActivityLevel:       domain.ActivityLevel(req.ActivityLevel),
		CurrentWeight:       req.CurrentWeight,
		TargetWeight:        req.TargetWeight,
		Membership:          domain.MembershipTier(req.Membership),
	}
}

func toPreferences(req generateMealRequest) domain.MealPreferences {
	return domain.MealPreferences{
		DietaryPreference:   req.DietaryPreference,
		Allergies:           req.Allergies,
		DislikedIngredients: req.DislikedIngredients,
		MealType:            domain.MealType(req.MealType),
		HealthGoal:          req.HealthGoal,
		CalorieTarget:       req.CalorieTarget,
	}
}

func toPlanRequest(req generatePlanRequest) domain.PlanRequest {
	return domain.PlanRequest{
		Preferences:        toPreferences(req.generateMealRequest),
		Days:               req.Days,
		MealsPerDay:        req.MealsPerDay,
		DailyCalorieTarget: req.DailyCalorieTarget,
	}
}

// --- domain → Response ---

func toWizardResponse(w domain.Wizard) wizardResponse {
	errs := w.Errors
	if errs == nil {
		errs = domain.FieldErrors{}
	}
	d := w.Draft
	return wizardResponse{
		ID:         w.ID,
		State:      w.State,
		Step:       w.Step(),
		TotalSteps: domain.StepCount,
		Direction:  w.Direction,
		Draft: draftResponse{
			FirstName:           d.FirstName,
			LastName:            d.LastName,
			Email:               d.Email,
			HasPassword:         d.Password != "",
			DietaryRestrictions: nonNil(d.DietaryRestrictions),
			Allergies:           nonNil(d.Allergies),
			DislikedIngredients: nonNil(d.DislikedIngredients),
			HealthGoals:         nonNil(d.HealthGoals),
			ActivityLevel:       string(d.ActivityLevel),
			CurrentWeight:       d.CurrentWeight,
			TargetWeight:        d.TargetWeight,
			Membership:          string(d.Membership),
		},
		Errors:      errs,
		SubmitError: w.SubmitError,
		AccountID:   w.AccountID,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func toSessionResponse(s *domain.Session, withToken bool) sessionResponse {
	resp := sessionResponse{ExpiresAt: s.ExpiresAt, Account: s.Account}
	if withToken {
		resp.AccessToken = s.AccessToken
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
