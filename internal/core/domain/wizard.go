package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WizardState represents the lifecycle state of a registration wizard.
type WizardState string

const (
	StateStep1      WizardState = "step_1"
	StateStep2      WizardState = "step_2"
	StateStep3      WizardState = "step_3"
	StateStep4      WizardState = "step_4"
	StateStep5      WizardState = "step_5"
	StateSubmitting WizardState = "submitting"
	StateSuccess    WizardState = "success"
	StateFailed     WizardState = "failed"
)

// StepCount is the number of input steps in the wizard.
const StepCount = 5

var stepStates = [StepCount]WizardState{StateStep1, StateStep2, StateStep3, StateStep4, StateStep5}

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[WizardState][]WizardState{
	StateStep1:      {StateStep2},
	StateStep2:      {StateStep3, StateStep1},
	StateStep3:      {StateStep4, StateStep2},
	StateStep4:      {StateStep5, StateStep3},
	StateStep5:      {StateSubmitting, StateStep4},
	StateSubmitting: {StateSuccess, StateFailed},
	StateFailed:     {StateStep1},
}

var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrStepInvalid       = errors.New("step has invalid fields")
	ErrWizardNotFound    = errors.New("wizard not found")
	ErrWizardClosed      = errors.New("wizard no longer accepts changes")
)

// CanTransitionTo reports whether a transition from the current state to next is valid.
func (s WizardState) CanTransitionTo(next WizardState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Step returns the 1-based step number, or 0 for the terminal states.
func (s WizardState) Step() int {
	for i, st := range stepStates {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// Editable reports whether the draft may be changed in this state.
func (s WizardState) Editable() bool {
	return s.Step() > 0 || s == StateFailed
}

// Direction is the navigation direction of the last step change. It only
// drives client-side transition animation.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// Draft is the not-yet-persisted accumulation of new-account fields.
type Draft struct {
	FirstName           string         `json:"firstName"`
	LastName            string         `json:"lastName"`
	Email               string         `json:"email"`
	Password            string         `json:"password"`
	ConfirmPassword     string         `json:"confirmPassword"`
	DietaryRestrictions []string       `json:"dietaryRestrictions"`
	Allergies           []string       `json:"allergies"`
	DislikedIngredients []string       `json:"dislikedIngredients"`
	HealthGoals         []string       `json:"healthGoals"`
	ActivityLevel       ActivityLevel  `json:"activityLevel"`
	CurrentWeight       string         `json:"currentWeight"`
	TargetWeight        string         `json:"targetWeight"`
	Membership          MembershipTier `json:"membership"`
}

func (d Draft) clone() Draft {
	d.DietaryRestrictions = cloneStrings(d.DietaryRestrictions)
	d.Allergies = cloneStrings(d.Allergies)
	d.DislikedIngredients = cloneStrings(d.DislikedIngredients)
	d.HealthGoals = cloneStrings(d.HealthGoals)
	return d
}

// Profile converts a submitted draft into the profile attributes of accountID.
// Weights that do not parse are dropped; the draft has been validated by then.
func (d Draft) Profile(accountID string, now time.Time) Profile {
	cw, _ := parseWeight(d.CurrentWeight)
	tw, _ := parseWeight(d.TargetWeight)
	return Profile{
		AccountID:           accountID,
		Email:               strings.ToLower(strings.TrimSpace(d.Email)),
		FirstName:           strings.TrimSpace(d.FirstName),
		LastName:            strings.TrimSpace(d.LastName),
		DietaryRestrictions: cloneStrings(d.DietaryRestrictions),
		Allergies:           cloneStrings(d.Allergies),
		DislikedIngredients: cloneStrings(d.DislikedIngredients),
		HealthGoals:         cloneStrings(d.HealthGoals),
		ActivityLevel:       d.ActivityLevel,
		CurrentWeight:       cw,
		TargetWeight:        tw,
		Membership:          d.Membership,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// DraftPatch carries a partial draft update. Nil fields are left untouched.
type DraftPatch struct {
	FirstName           *string
	LastName            *string
	Email               *string
	Password            *string
	ConfirmPassword     *string
	DietaryRestrictions []string
	Allergies           []string
	DislikedIngredients []string
	HealthGoals         []string
	ActivityLevel       *ActivityLevel
	CurrentWeight       *string
	TargetWeight        *string
	Membership          *MembershipTier
}

// apply returns d with p applied and the list of fields that were touched.
// Tag lists are replaced wholesale when non-nil; an empty non-nil slice clears them.
func (p DraftPatch) apply(d Draft) (Draft, []string) {
	var touched []string
	setStr := func(dst *string, src *string, field string) {
		if src != nil {
			*dst = *src
			touched = append(touched, field)
		}
	}
	setTags := func(dst *[]string, src []string, field string) {
		if src != nil {
			*dst = NormalizeTags(src)
			touched = append(touched, field)
		}
	}

	setStr(&d.FirstName, p.FirstName, FieldFirstName)
	setStr(&d.LastName, p.LastName, FieldLastName)
	setStr(&d.Email, p.Email, FieldEmail)
	setStr(&d.Password, p.Password, FieldPassword)
	setStr(&d.ConfirmPassword, p.ConfirmPassword, FieldConfirmPassword)
	setTags(&d.DietaryRestrictions, p.DietaryRestrictions, "dietaryRestrictions")
	setTags(&d.Allergies, p.Allergies, "allergies")
	setTags(&d.DislikedIngredients, p.DislikedIngredients, "dislikedIngredients")
	setTags(&d.HealthGoals, p.HealthGoals, FieldHealthGoals)
	if p.ActivityLevel != nil {
		d.ActivityLevel = *p.ActivityLevel
		touched = append(touched, "activityLevel")
	}
	setStr(&d.CurrentWeight, p.CurrentWeight, FieldCurrentWeight)
	setStr(&d.TargetWeight, p.TargetWeight, FieldTargetWeight)
	if p.Membership != nil {
		d.Membership = *p.Membership
		touched = append(touched, FieldMembership)
	}
	return d, touched
}

// Wizard is one registration session. All transitions are value methods that
// return an updated copy; the receiver is never modified.
type Wizard struct {
	ID          string
	State       WizardState
	Direction   Direction
	Draft       Draft
	Errors      FieldErrors
	SubmitError string
	AccountID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewWizard returns an empty wizard positioned on step 1.
func NewWizard(id string, now time.Time) Wizard {
	return Wizard{
		ID:        id,
		State:     StateStep1,
		Direction: DirectionForward,
		Errors:    FieldErrors{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Step returns the current step number, or 0 outside the input steps.
func (w Wizard) Step() int {
	return w.State.Step()
}

func (w Wizard) clone() Wizard {
	out := w
	out.Draft = w.Draft.clone()
	out.Errors = make(FieldErrors, len(w.Errors))
	for k, v := range w.Errors {
		out.Errors[k] = v
	}
	return out
}

// Update applies p to the draft. Errors for the touched fields are cleared.
func (w Wizard) Update(p DraftPatch, now time.Time) (Wizard, error) {
	if !w.State.Editable() {
		return w, fmt.Errorf("%w (state %s)", ErrWizardClosed, w.State)
	}
	out := w.clone()
	var touched []string
	out.Draft, touched = p.apply(out.Draft)
	for _, f := range touched {
		delete(out.Errors, f)
	}
	out.UpdatedAt = now
	return out, nil
}

// Next validates the current step and moves forward. On validation failure the
// returned wizard stays on the same step with Errors populated.
func (w Wizard) Next(now time.Time) (Wizard, error) {
	step := w.Step()
	if step == 0 || step == StepCount {
		return w, fmt.Errorf("%w: next from %s", ErrInvalidTransition, w.State)
	}
	if errs := ValidateStep(step, w.Draft); len(errs) > 0 {
		out := w.clone()
		out.Errors = errs
		out.UpdatedAt = now
		return out, ErrStepInvalid
	}
	return w.moveTo(stepStates[step], DirectionForward, now)
}

// Back moves to the previous step without validating.
func (w Wizard) Back(now time.Time) (Wizard, error) {
	step := w.Step()
	if step <= 1 {
		return w, fmt.Errorf("%w: back from %s", ErrInvalidTransition, w.State)
	}
	return w.moveTo(stepStates[step-2], DirectionBackward, now)
}

// BeginSubmit re-validates the whole draft and enters Submitting. On failure
// the wizard jumps back to the first failing step with that step's errors.
func (w Wizard) BeginSubmit(now time.Time) (Wizard, error) {
	if !w.State.CanTransitionTo(StateSubmitting) {
		return w, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.State, StateSubmitting)
	}
	for step := 1; step <= StepCount; step++ {
		if errs := ValidateStep(step, w.Draft); len(errs) > 0 {
			out := w.clone()
			out.State = stepStates[step-1]
			out.Direction = DirectionBackward
			out.Errors = errs
			out.UpdatedAt = now
			return out, ErrStepInvalid
		}
	}
	out, err := w.moveTo(StateSubmitting, DirectionForward, now)
	if err != nil {
		return w, err
	}
	out.SubmitError = ""
	return out, nil
}

// Succeed records the created account and enters Success.
func (w Wizard) Succeed(accountID string, now time.Time) (Wizard, error) {
	out, err := w.moveTo(StateSuccess, DirectionForward, now)
	if err != nil {
		return w, err
	}
	out.AccountID = accountID
	return out, nil
}

// Fail enters Failed with the user-facing message for cause. The draft is kept.
func (w Wizard) Fail(cause error, now time.Time) (Wizard, error) {
	out, err := w.moveTo(StateFailed, w.Direction, now)
	if err != nil {
		return w, err
	}
	out.SubmitError = SubmitFailureMessage(cause)
	return out, nil
}

// Resume returns a failed wizard to step 1 so the user can correct and resubmit.
func (w Wizard) Resume(now time.Time) (Wizard, error) {
	out, err := w.moveTo(StateStep1, DirectionBackward, now)
	if err != nil {
		return w, err
	}
	out.SubmitError = ""
	return out, nil
}

func (w Wizard) moveTo(next WizardState, dir Direction, now time.Time) (Wizard, error) {
	if !w.State.CanTransitionTo(next) {
		return w, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.State, next)
	}
	out := w.clone()
	out.State = next
	out.Direction = dir
	out.Errors = FieldErrors{}
	out.UpdatedAt = now
	return out, nil
}

const (
	MsgSubmitInvalidEmail = "That email address was rejected. Please check it and try again."
	MsgSubmitDuplicate    = "An account with this email already exists. Try signing in instead."
	MsgSubmitRateLimited  = "Too many sign-up attempts. Please wait a moment and try again."
	MsgSubmitGeneric      = "We could not create your account. Please try again."
)

// SubmitFailureMessage maps an account-creation error to its user-facing message.
func SubmitFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return MsgSubmitInvalidEmail
	case errors.Is(err, ErrAccountExists):
		return MsgSubmitDuplicate
	case errors.Is(err, ErrRateLimited):
		return MsgSubmitRateLimited
	default:
		return MsgSubmitGeneric
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
