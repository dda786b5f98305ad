package llm

import (
	"fmt"
	"strings"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

const systemPrompt = "You are a professional nutritionist and recipe developer. " +
	"You answer with a single JSON object and nothing else."

const mealSchema = `{"title": string, "description": string, "mealType": "breakfast"|"lunch"|"dinner"|"snack", ` +
	`"ingredients": [string], "steps": [string], ` +
	`"nutrition": {"calories": number, "protein": number, "carbs": number, "fat": number}, ` +
	`"prepTime": string, "difficulty": "easy"|"medium"|"hard", "servings": number}`

func writePreferences(b *strings.Builder, p domain.MealPreferences) {
	b.WriteString("USER PREFERENCES:\n")
	if p.DietaryPreference != "" {
		fmt.Fprintf(b, "- Diet: %s\n", p.DietaryPreference)
	}
	if p.HealthGoal != "" {
		fmt.Fprintf(b, "- Health goal: %s\n", p.HealthGoal)
	}
	if p.MealType != "" {
		fmt.Fprintf(b, "- Meal type: %s\n", p.MealType)
	}
	if p.CalorieTarget > 0 {
		fmt.Fprintf(b, "- Calories per meal: about %.0f kcal\n", p.CalorieTarget)
	}
	b.WriteString("\n")

	if p.Allergies != "" {
		fmt.Fprintf(b, "ALLERGIES (never include): %s\n\n", p.Allergies)
	}
	if p.DislikedIngredients != "" {
		fmt.Fprintf(b, "DISLIKED INGREDIENTS (avoid): %s\n\n", p.DislikedIngredients)
	}
}

func mealPrompt(p domain.MealPreferences) string {
	var b strings.Builder
	writePreferences(&b, p)

	b.WriteString("TASK:\nSuggest one meal that fits the preferences above. ")
	b.WriteString("Nutrition values are per serving; macros are in grams.\n\n")
	b.WriteString("OUTPUT FORMAT (strict JSON):\n")
	b.WriteString(mealSchema)
	return b.String()
}

func planPrompt(r domain.PlanRequest) string {
	var b strings.Builder
	writePreferences(&b, r.Preferences)

	b.WriteString("PLAN REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Number of days: %d\n", r.Days)
	fmt.Fprintf(&b, "- Meals per day: %d\n", r.MealsPerDay)
	if r.DailyCalorieTarget > 0 {
		fmt.Fprintf(&b, "- Daily calories: about %.0f kcal (about %.0f kcal per meal)\n",
			r.DailyCalorieTarget, r.DailyCalorieTarget/float64(r.MealsPerDay))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "TASK:\nCreate a meal plan for %d days with %d meals per day. ", r.Days, r.MealsPerDay)
	b.WriteString("Vary the meals across days.\n\n")
	b.WriteString("OUTPUT FORMAT (strict JSON):\n")
	fmt.Fprintf(&b, `{"days": [{"day": number, "label": string, "meals": [%s]}]}`, mealSchema)
	return b.String()
}

func imagePrompt(title, description string) string {
	prompt := fmt.Sprintf("A realistic, appetizing overhead food photograph of %s", title)
	if description != "" {
		prompt += ": " + description
	}
	return prompt + ". Natural light, plated on a simple table, no text."
}
