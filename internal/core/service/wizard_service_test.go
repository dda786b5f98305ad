package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type memWizardStore struct {
	byID    map[string]domain.Wizard
	saveErr error
	deleted []string
}

func newMemWizardStore() *memWizardStore {
	return &memWizardStore{byID: make(map[string]domain.Wizard)}
}

func (s *memWizardStore) Save(_ context.Context, w domain.Wizard) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.byID[w.ID] = w
	return nil
}

func (s *memWizardStore) Load(_ context.Context, id string) (domain.Wizard, error) {
	w, ok := s.byID[id]
	if !ok {
		return domain.Wizard{}, domain.ErrWizardNotFound
	}
	return w, nil
}

func (s *memWizardStore) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubSessionStore struct {
	createFn  func(email, password string) (*domain.Account, error)
	upsertErr error
	created   []string
	upserted  []domain.Profile
}

func (s *stubSessionStore) CreateAccount(_ context.Context, email, password string) (*domain.Account, error) {
	s.created = append(s.created, email)
	if s.createFn != nil {
		return s.createFn(email, password)
	}
	return &domain.Account{ID: "acc-1", Email: email, Role: domain.RoleMember}, nil
}

func (s *stubSessionStore) SignIn(context.Context, string, string) (*domain.Session, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubSessionStore) SignOut(context.Context, *domain.Session) error { return nil }

func (s *stubSessionStore) CurrentSession(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrNoSession
}

func (s *stubSessionStore) UpsertProfile(_ context.Context, p *domain.Profile) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, *p)
	return nil
}

func (s *stubSessionStore) GetProfile(context.Context, string) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (s *stubSessionStore) QueryProfiles(context.Context, domain.ProfileFilter) ([]*domain.Profile, error) {
	return nil, nil
}

func (s *stubSessionStore) SubscribeProfileChanges(context.Context) (<-chan domain.ProfileChange, error) {
	return nil, nil
}

type stubWriteBack struct {
	queued []domain.Profile
}

func (w *stubWriteBack) Enqueue(p domain.Profile) { w.queued = append(w.queued, p) }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type wizardFixture struct {
	svc       ports.WizardService
	store     *memWizardStore
	sessions  *stubSessionStore
	writeBack *stubWriteBack
}

func newWizardFixture() *wizardFixture {
	f := &wizardFixture{
		store:     newMemWizardStore(),
		sessions:  &stubSessionStore{},
		writeBack: &stubWriteBack{},
	}
	f.svc = NewWizardService(f.store, f.sessions, f.writeBack, zerolog.Nop())
	return f
}

func str(s string) *string { return &s }

func olaIdentity() domain.DraftPatch {
	return domain.DraftPatch{
		FirstName:       str("Ola"),
		LastName:        str("Nordmann"),
		Email:           str("ola@example.com"),
		Password:        str("secret1"),
		ConfirmPassword: str("secret1"),
	}
}

// completeWizard fills every step with valid input and stops on step 5.
func completeWizard(t *testing.T, f *wizardFixture) domain.Wizard {
	t.Helper()
	ctx := context.Background()
	w, err := f.svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	tier := domain.TierPro
	level := domain.ActivityModerate
	patch := olaIdentity()
	patch.Allergies = []string{"peanuts"}
	patch.HealthGoals = []string{"lose weight"}
	patch.ActivityLevel = &level
	patch.CurrentWeight = str("82.5")
	patch.TargetWeight = str("75")
	patch.Membership = &tier
	if _, err := f.svc.Update(ctx, w.ID, patch); err != nil {
		t.Fatalf("Update: %v", err)
	}
	for i := 1; i < domain.StepCount; i++ {
		if w, err = f.svc.Next(ctx, w.ID); err != nil {
			t.Fatalf("Next from step %d: %v", i, err)
		}
	}
	if w.Step() != 5 {
		t.Fatalf("expected step 5, got %s", w.State)
	}
	return w
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestWizardService_Start(t *testing.T) {
	f := newWizardFixture()

	w, err := f.svc.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if w.ID == "" || w.State != domain.StateStep1 {
		t.Fatalf("unexpected wizard: %+v", w)
	}
	if _, ok := f.store.byID[w.ID]; !ok {
		t.Fatalf("expected wizard to be stored")
	}
}

func TestWizardService_EndToEnd_Ola(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	w, _ := f.svc.Start(ctx)

	if _, err := f.svc.Update(ctx, w.ID, olaIdentity()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	w, err := f.svc.Next(ctx, w.ID)
	if err != nil || w.Step() != 2 {
		t.Fatalf("expected step 2, got %s (%v)", w.State, err)
	}

	w, err = f.svc.Next(ctx, w.ID)
	if err != nil || w.Step() != 3 {
		t.Fatalf("expected step 3 with no dietary tags, got %s (%v)", w.State, err)
	}

	w, err = f.svc.Next(ctx, w.ID)
	if !errors.Is(err, domain.ErrStepInvalid) {
		t.Fatalf("expected ErrStepInvalid, got %v", err)
	}
	if w.Step() != 3 {
		t.Fatalf("expected to stay on step 3, got %s", w.State)
	}
	if w.Errors[domain.FieldHealthGoals] != "select at least one goal" {
		t.Fatalf("unexpected errors: %v", w.Errors)
	}

	stored, _ := f.store.Load(ctx, w.ID)
	if stored.Errors[domain.FieldHealthGoals] == "" {
		t.Fatalf("expected field errors to be persisted")
	}
}

func TestWizardService_Next_InvalidFieldKeepsStep(t *testing.T) {
	tests := []struct {
		name  string
		step  int
		patch domain.DraftPatch
		field string
	}{
		{"step 1 bad email", 1, func() domain.DraftPatch { p := olaIdentity(); p.Email = str("user@.com"); return p }(), domain.FieldEmail},
		{"step 1 short password", 1, func() domain.DraftPatch {
			p := olaIdentity()
			p.Password = str("12345")
			p.ConfirmPassword = str("12345")
			return p
		}(), domain.FieldPassword},
		{"step 1 mismatch", 1, func() domain.DraftPatch { p := olaIdentity(); p.ConfirmPassword = str("secret2"); return p }(), domain.FieldConfirmPassword},
		{"step 3 weight", 3, domain.DraftPatch{HealthGoals: []string{"gain muscle"}, CurrentWeight: str("heavy")}, domain.FieldCurrentWeight},
		{"step 4 membership", 4, domain.DraftPatch{}, domain.FieldMembership},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWizardFixture()
			ctx := context.Background()
			w, _ := f.svc.Start(ctx)

			if tt.step > 1 {
				_, _ = f.svc.Update(ctx, w.ID, olaIdentity())
				_, _ = f.svc.Update(ctx, w.ID, domain.DraftPatch{HealthGoals: []string{"lose weight"}})
				for w.Step() < tt.step {
					var err error
					if w, err = f.svc.Next(ctx, w.ID); err != nil {
						t.Fatalf("setup Next: %v", err)
					}
				}
			}
			if _, err := f.svc.Update(ctx, w.ID, tt.patch); err != nil {
				t.Fatalf("Update: %v", err)
			}

			got, err := f.svc.Next(ctx, w.ID)
			if !errors.Is(err, domain.ErrStepInvalid) {
				t.Fatalf("expected ErrStepInvalid, got %v", err)
			}
			if got.Step() != tt.step {
				t.Fatalf("expected step %d, got %s", tt.step, got.State)
			}
			if got.Errors[tt.field] == "" {
				t.Fatalf("expected error on %s, got %v", tt.field, got.Errors)
			}
		})
	}
}

func TestWizardService_NavigationPreservesDraft(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()
	w := completeWizard(t, f)
	before := w.Draft

	for w.Step() > 1 {
		var err error
		if w, err = f.svc.Back(ctx, w.ID); err != nil {
			t.Fatalf("Back: %v", err)
		}
		if w.Direction != domain.DirectionBackward {
			t.Fatalf("expected backward direction")
		}
		if !reflect.DeepEqual(w.Draft, before) {
			t.Fatalf("draft changed on back navigation:\n%+v\n%+v", w.Draft, before)
		}
	}
	for w.Step() < 5 {
		var err error
		if w, err = f.svc.Next(ctx, w.ID); err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !reflect.DeepEqual(w.Draft, before) {
			t.Fatalf("draft changed on forward navigation")
		}
	}

	if _, err := f.svc.Back(ctx, w.ID); err != nil {
		t.Fatalf("Back from step 5: %v", err)
	}
}

func TestWizardService_Back_FromStep1(t *testing.T) {
	f := newWizardFixture()
	w, _ := f.svc.Start(context.Background())

	if _, err := f.svc.Back(context.Background(), w.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestWizardService_Submit_Success(t *testing.T) {
	f := newWizardFixture()
	w := completeWizard(t, f)

	done, err := f.svc.Submit(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if done.State != domain.StateSuccess || done.AccountID != "acc-1" {
		t.Fatalf("unexpected wizard: %+v", done)
	}
	if len(f.sessions.upserted) != 1 {
		t.Fatalf("expected one profile upsert, got %d", len(f.sessions.upserted))
	}
	p := f.sessions.upserted[0]
	if p.AccountID != "acc-1" || p.Membership != domain.TierPro || p.CurrentWeight == nil || *p.CurrentWeight != 82.5 {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if _, ok := f.store.byID[w.ID]; ok {
		t.Fatalf("expected submitted draft to be deleted")
	}
}

func TestWizardService_Submit_ProfileWriteFailureStillSucceeds(t *testing.T) {
	f := newWizardFixture()
	f.sessions.upsertErr = errors.New("connection reset")
	w := completeWizard(t, f)

	done, err := f.svc.Submit(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if done.State != domain.StateSuccess {
		t.Fatalf("expected success, got %s", done.State)
	}
	if len(f.writeBack.queued) != 1 || f.writeBack.queued[0].AccountID != "acc-1" {
		t.Fatalf("expected profile to be queued for write-back, got %+v", f.writeBack.queued)
	}
}

func TestWizardService_Submit_RejectionMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"invalid email", domain.ErrInvalidEmail, domain.MsgSubmitInvalidEmail},
		{"duplicate", domain.ErrAccountExists, domain.MsgSubmitDuplicate},
		{"rate limited", domain.ErrRateLimited, domain.MsgSubmitRateLimited},
		{"generic", errors.New("upstream 500"), domain.MsgSubmitGeneric},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWizardFixture()
			f.sessions.createFn = func(string, string) (*domain.Account, error) { return nil, tt.err }
			w := completeWizard(t, f)

			failed, err := f.svc.Submit(context.Background(), w.ID)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if failed.State != domain.StateFailed {
				t.Fatalf("expected failed state, got %s", failed.State)
			}
			if failed.SubmitError != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, failed.SubmitError)
			}
			if !reflect.DeepEqual(failed.Draft, w.Draft) {
				t.Fatalf("draft must survive a rejected submit")
			}
			stored, _ := f.store.Load(context.Background(), w.ID)
			if stored.State != domain.StateFailed {
				t.Fatalf("expected failed wizard to be stored, got %s", stored.State)
			}
			if len(f.sessions.upserted) != 0 {
				t.Fatalf("no profile write expected after rejection")
			}
		})
		seen[tt.msg] = true
	}
	if len(seen) != len(tests) {
		t.Fatalf("rejection messages are not distinct")
	}
}

func TestWizardService_Submit_ThenResume(t *testing.T) {
	f := newWizardFixture()
	calls := 0
	f.sessions.createFn = func(email, _ string) (*domain.Account, error) {
		calls++
		if calls == 1 {
			return nil, domain.ErrAccountExists
		}
		return &domain.Account{ID: "acc-2", Email: email}, nil
	}
	w := completeWizard(t, f)
	ctx := context.Background()

	_, _ = f.svc.Submit(ctx, w.ID)
	if _, err := f.svc.Update(ctx, w.ID, domain.DraftPatch{Email: str("ola.n@example.com")}); err != nil {
		t.Fatalf("editing a failed wizard: %v", err)
	}

	resumed, err := f.svc.Resume(ctx, w.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if resumed.State != domain.StateStep1 || resumed.Direction != domain.DirectionBackward {
		t.Fatalf("unexpected resumed wizard: %+v", resumed)
	}
	if resumed.SubmitError != "" {
		t.Fatalf("expected submit error to be cleared")
	}
	if resumed.Draft.Email != "ola.n@example.com" || resumed.Draft.Membership != domain.TierPro {
		t.Fatalf("draft not preserved: %+v", resumed.Draft)
	}

	for resumed.Step() < 5 {
		if resumed, err = f.svc.Next(ctx, w.ID); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	done, err := f.svc.Submit(ctx, w.ID)
	if err != nil || done.AccountID != "acc-2" {
		t.Fatalf("resubmit failed: %+v %v", done, err)
	}
}

func TestWizardService_Submit_RevalidatesDraft(t *testing.T) {
	f := newWizardFixture()
	w := completeWizard(t, f)
	ctx := context.Background()

	// Step 5 accepts edits, so the draft can be invalidated after step 1 passed.
	_, _ = f.svc.Update(ctx, w.ID, domain.DraftPatch{Password: str("12345"), ConfirmPassword: str("12345")})

	got, err := f.svc.Submit(ctx, w.ID)
	if !errors.Is(err, domain.ErrStepInvalid) {
		t.Fatalf("expected ErrStepInvalid, got %v", err)
	}
	if got.State != domain.StateStep1 {
		t.Fatalf("expected jump to step 1, got %s", got.State)
	}
	if got.Errors[domain.FieldPassword] != domain.MsgPasswordTooShort {
		t.Fatalf("unexpected errors: %v", got.Errors)
	}
	if len(f.sessions.created) != 0 {
		t.Fatalf("invalid draft must not reach the session store")
	}
}

func TestWizardService_Submit_PasswordBoundary(t *testing.T) {
	for _, tc := range []struct {
		password string
		wantErr  bool
	}{
		{"12345", true},
		{"123456", false},
	} {
		f := newWizardFixture()
		ctx := context.Background()
		w := completeWizard(t, f)
		_, _ = f.svc.Update(ctx, w.ID, domain.DraftPatch{Password: str(tc.password), ConfirmPassword: str(tc.password)})

		_, err := f.svc.Submit(ctx, w.ID)
		if (err != nil) != tc.wantErr {
			t.Fatalf("password %q: wantErr=%v, got %v", tc.password, tc.wantErr, err)
		}
	}
}

func TestWizardService_Submit_NotOnStep5(t *testing.T) {
	f := newWizardFixture()
	w, _ := f.svc.Start(context.Background())

	if _, err := f.svc.Submit(context.Background(), w.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestWizardService_Submit_WhileSubmitting(t *testing.T) {
	f := newWizardFixture()
	w := completeWizard(t, f)
	ctx := context.Background()

	stored := f.store.byID[w.ID]
	stored.State = domain.StateSubmitting
	f.store.byID[w.ID] = stored

	if _, err := f.svc.Submit(ctx, w.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := f.svc.Update(ctx, w.ID, domain.DraftPatch{FirstName: str("X")}); !errors.Is(err, domain.ErrWizardClosed) {
		t.Fatalf("expected ErrWizardClosed, got %v", err)
	}
	if len(f.sessions.created) != 0 {
		t.Fatalf("no account call expected")
	}
}

func TestWizardService_Submit_WhileFailed(t *testing.T) {
	f := newWizardFixture()
	f.sessions.createFn = func(string, string) (*domain.Account, error) {
		return nil, domain.ErrAccountExists
	}
	w := completeWizard(t, f)
	ctx := context.Background()

	if _, err := f.svc.Submit(ctx, w.ID); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
	got, err := f.svc.Submit(ctx, w.ID)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if got.State != domain.StateFailed || got.SubmitError != domain.MsgSubmitDuplicate {
		t.Fatalf("failed wizard must be returned untouched: %+v", got)
	}
	if len(f.sessions.created) != 1 {
		t.Fatalf("expected a single account call, got %d", len(f.sessions.created))
	}
}

func TestWizardService_Submit_StoreFailure(t *testing.T) {
	f := newWizardFixture()
	w := completeWizard(t, f)
	f.store.saveErr = errors.New("redis down")

	if _, err := f.svc.Submit(context.Background(), w.ID); err == nil {
		t.Fatalf("expected error")
	}
	if len(f.sessions.created) != 0 {
		t.Fatalf("account must not be created when the wizard cannot be stored")
	}
}

func TestWizardService_NotFoundAndAbandon(t *testing.T) {
	f := newWizardFixture()
	ctx := context.Background()

	if _, err := f.svc.Get(ctx, "missing"); !errors.Is(err, domain.ErrWizardNotFound) {
		t.Fatalf("expected ErrWizardNotFound, got %v", err)
	}
	if _, err := f.svc.Next(ctx, "missing"); !errors.Is(err, domain.ErrWizardNotFound) {
		t.Fatalf("expected ErrWizardNotFound, got %v", err)
	}

	w, _ := f.svc.Start(ctx)
	if err := f.svc.Abandon(ctx, w.ID); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if _, err := f.svc.Get(ctx, w.ID); !errors.Is(err, domain.ErrWizardNotFound) {
		t.Fatalf("expected abandoned wizard to be gone, got %v", err)
	}
	if err := f.svc.Abandon(ctx, w.ID); !errors.Is(err, domain.ErrWizardNotFound) {
		t.Fatalf("expected ErrWizardNotFound on second abandon, got %v", err)
	}
}
