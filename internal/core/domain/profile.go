package domain

import (
	"errors"
	"strings"
	"time"
)

// MembershipTier is the subscription level attached to an account.
type MembershipTier string

const (
	TierBasic    MembershipTier = "basic"
	TierPro      MembershipTier = "pro"
	TierUltimate MembershipTier = "ultimate"
)

// Valid reports whether t is one of the known tiers.
func (t MembershipTier) Valid() bool {
	switch t {
	case TierBasic, TierPro, TierUltimate:
		return true
	}
	return false
}

// ActivityLevel is the self-reported activity of a user.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Valid reports whether a is a known activity level. The empty level is valid (not provided).
func (a ActivityLevel) Valid() bool {
	switch a {
	case "", ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

var ErrProfileNotFound = errors.New("profile not found")

// Profile holds the extended attributes of an account.
type Profile struct {
	AccountID           string         `json:"accountId"`
	Email               string         `json:"email"`
	FirstName           string         `json:"firstName"`
	LastName            string         `json:"lastName"`
	DietaryRestrictions []string       `json:"dietaryRestrictions"`
	Allergies           []string       `json:"allergies"`
	DislikedIngredients []string       `json:"dislikedIngredients"`
	HealthGoals         []string       `json:"healthGoals"`
	ActivityLevel       ActivityLevel  `json:"activityLevel,omitempty"`
	CurrentWeight       *float64       `json:"currentWeight,omitempty"`
	TargetWeight        *float64       `json:"targetWeight,omitempty"`
	Membership          MembershipTier `json:"membership"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// ProfileFilter narrows a profile query. Zero values mean "no filter".
type ProfileFilter struct {
	Membership MembershipTier
	HealthGoal string
	Search     string // partial match on name or email
	Limit      int
}

// ChangeOperation names the kind of write observed on the profile store.
type ChangeOperation string

const (
	ChangeInsert  ChangeOperation = "insert"
	ChangeUpdate  ChangeOperation = "update"
	ChangeReplace ChangeOperation = "replace"
	ChangeDelete  ChangeOperation = "delete"
)

// ProfileChange is one event of the profile change feed.
type ProfileChange struct {
	Operation ChangeOperation `json:"operation"`
	AccountID string          `json:"accountId"`
	Profile   *Profile        `json:"profile,omitempty"`
	At        time.Time       `json:"at"`
}

// NormalizeTags trims tags, drops empties and removes case-insensitive
// duplicates while keeping the first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}

var ErrInvalidProfile = errors.New("invalid profile")
