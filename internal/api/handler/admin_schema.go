package handler

import "github.com/mealwise/mealplanner/internal/core/domain"

type usersResponse struct {
	Users []*domain.Profile `json:"users"`
	Count int               `json:"count"`
}

type columnsResponse struct {
	Results []domain.ColumnResult `json:"results"`
}

type usersQuery struct {
	Membership string `query:"membership" validate:"omitempty,oneof=basic pro ultimate"`
	HealthGoal string `query:"goal"       validate:"max=100"`
	Search     string `query:"search"     validate:"max=100"`
	Limit      int    `query:"limit"      validate:"gte=0"`
}
