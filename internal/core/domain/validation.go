package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// Field keys used in FieldErrors. They match the JSON names of Draft.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldHealthGoals     = "healthGoals"
	FieldCurrentWeight   = "currentWeight"
	FieldTargetWeight    = "targetWeight"
	FieldMembership      = "membership"
)

const (
	MsgFirstNameRequired  = "first name is required"
	MsgLastNameRequired   = "last name is required"
	MsgEmailInvalid       = "please enter a valid email address"
	MsgPasswordRequired   = "password is required"
	MsgPasswordTooShort   = "password must be at least 6 characters"
	MsgPasswordMismatch   = "passwords do not match"
	MsgGoalRequired       = "select at least one goal"
	MsgCurrentWeightNaN   = "current weight must be a number"
	MsgTargetWeightNaN    = "target weight must be a number"
	MsgMembershipRequired = "select a membership tier"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// FieldErrors maps a draft field to its user-facing message.
type FieldErrors map[string]string

// ValidateStep runs the predicate of a single wizard step against d.
// Steps 2 and 5 never fail.
func ValidateStep(step int, d Draft) FieldErrors {
	errs := FieldErrors{}
	switch step {
	case 1:
		if strings.TrimSpace(d.FirstName) == "" {
			errs[FieldFirstName] = MsgFirstNameRequired
		}
		if strings.TrimSpace(d.LastName) == "" {
			errs[FieldLastName] = MsgLastNameRequired
		}
		if !ValidEmail(d.Email) {
			errs[FieldEmail] = MsgEmailInvalid
		}
		switch {
		case d.Password == "":
			errs[FieldPassword] = MsgPasswordRequired
		case len(d.Password) < MinPasswordLength:
			errs[FieldPassword] = MsgPasswordTooShort
		}
		if d.ConfirmPassword != d.Password {
			errs[FieldConfirmPassword] = MsgPasswordMismatch
		}
	case 3:
		if len(d.HealthGoals) == 0 {
			errs[FieldHealthGoals] = MsgGoalRequired
		}
		if _, ok := parseWeight(d.CurrentWeight); !ok {
			errs[FieldCurrentWeight] = MsgCurrentWeightNaN
		}
		if _, ok := parseWeight(d.TargetWeight); !ok {
			errs[FieldTargetWeight] = MsgTargetWeightNaN
		}
	case 4:
		if !d.Membership.Valid() {
			errs[FieldMembership] = MsgMembershipRequired
		}
	}
	return errs
}

// ValidateDraft runs every step predicate and merges the results.
func ValidateDraft(d Draft) FieldErrors {
	all := FieldErrors{}
	for step := 1; step <= StepCount; step++ {
		for k, v := range ValidateStep(step, d) {
			all[k] = v
		}
	}
	return all
}

// parseWeight returns (nil, true) for a blank value, the parsed number for a
// finite numeric value, and ok=false otherwise.
func parseWeight(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return &v, true
}
