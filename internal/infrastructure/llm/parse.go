package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// cleanJSON strips markdown code fences and any prose around the outermost
// JSON object.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if start, end := strings.Index(s, "{"), strings.LastIndex(s, "}"); start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

// number accepts 12, 12.5, "12" and "12g".
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] == '.' || s[end] == '-' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end == 0 {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", b)
	}
	*n = number(f)
	return nil
}

// text accepts a string or a number ("20 minutes" or 20).
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*t = text(fmt.Sprintf("%g minutes", f))
		return nil
	}
	*t = ""
	return nil
}

type nutritionPayload struct {
	Calories number `json:"calories"`
	Protein  number `json:"protein"`
	Carbs    number `json:"carbs"`
	Fat      number `json:"fat"`
}

type mealPayload struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	MealType     string           `json:"mealType"`
	Ingredients  []string         `json:"ingredients"`
	Steps        []string         `json:"steps"`
	Instructions []string         `json:"instructions"`
	Nutrition    nutritionPayload `json:"nutrition"`
	PrepTime     text             `json:"prepTime"`
	Difficulty   string           `json:"difficulty"`
	Servings     number           `json:"servings"`
}

func (m mealPayload) toDomain() domain.Meal {
	steps := m.Steps
	if len(steps) == 0 {
		steps = m.Instructions
	}
	servings := int(m.Servings)
	if servings <= 0 {
		servings = 1
	}
	mt := domain.MealType(strings.ToLower(strings.TrimSpace(m.MealType)))
	if !mt.Valid() {
		mt = ""
	}
	return domain.Meal{
		Title:       strings.TrimSpace(m.Title),
		Description: strings.TrimSpace(m.Description),
		MealType:    mt,
		Ingredients: nonEmpty(m.Ingredients),
		Steps:       nonEmpty(steps),
		Nutrition: domain.Nutrition{
			Calories: float64(m.Nutrition.Calories),
			Protein:  float64(m.Nutrition.Protein),
			Carbs:    float64(m.Nutrition.Carbs),
			Fat:      float64(m.Nutrition.Fat),
		},
		PrepTime:   string(m.PrepTime),
		Difficulty: strings.ToLower(strings.TrimSpace(m.Difficulty)),
		Servings:   servings,
	}
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseMeal(content string) (*domain.Meal, error) {
	var p mealPayload
	if err := json.Unmarshal([]byte(cleanJSON(content)), &p); err != nil {
		return nil, &domain.GenerationError{Message: "the meal service returned an unreadable answer", Err: err}
	}
	m := p.toDomain()
	if m.Title == "" {
		return nil, &domain.GenerationError{Message: "the meal service returned a meal without a title"}
	}
	return &m, nil
}

type planPayload struct {
	Days []struct {
		Day   number        `json:"day"`
		Label string        `json:"label"`
		Meals []mealPayload `json:"meals"`
	} `json:"days"`
}

func parsePlan(content string) (*domain.WeeklyPlan, error) {
	var p planPayload
	if err := json.Unmarshal([]byte(cleanJSON(content)), &p); err != nil {
		return nil, &domain.GenerationError{Message: "the meal service returned an unreadable plan", Err: err}
	}

	plan := &domain.WeeklyPlan{Days: make([]domain.DayPlan, 0, len(p.Days))}
	for i, d := range p.Days {
		day := domain.DayPlan{Day: i + 1, Label: strings.TrimSpace(d.Label), Meals: make([]domain.Meal, 0, len(d.Meals))}
		for _, m := range d.Meals {
			day.Meals = append(day.Meals, m.toDomain())
		}
		plan.Days = append(plan.Days, day)
	}
	return plan, nil
}
