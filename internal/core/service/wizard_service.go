package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
)

type wizardService struct {
	store     ports.WizardStore
	sessions  ports.SessionStore
	writeBack ports.ProfileWriteBack
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewWizardService returns a WizardService implementation. writeBack may be
// nil, in which case failed profile writes are only logged.
func NewWizardService(
	store ports.WizardStore,
	sessions ports.SessionStore,
	writeBack ports.ProfileWriteBack,
	log zerolog.Logger,
) ports.WizardService {
	return &wizardService{
		store:     store,
		sessions:  sessions,
		writeBack: writeBack,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *wizardService) Start(ctx context.Context) (domain.Wizard, error) {
	w := domain.NewWizard(s.newID(), s.now())
	if err := s.store.Save(ctx, w); err != nil {
		return domain.Wizard{}, fmt.Errorf("start wizard: %w", err)
	}
	return w, nil
}

func (s *wizardService) Get(ctx context.Context, id string) (domain.Wizard, error) {
	return s.store.Load(ctx, id)
}

func (s *wizardService) Update(ctx context.Context, id string, patch domain.DraftPatch) (domain.Wizard, error) {
	return s.mutate(ctx, id, func(w domain.Wizard) (domain.Wizard, error) {
		return w.Update(patch, s.now())
	})
}

func (s *wizardService) Next(ctx context.Context, id string) (domain.Wizard, error) {
	return s.mutate(ctx, id, func(w domain.Wizard) (domain.Wizard, error) {
		return w.Next(s.now())
	})
}

func (s *wizardService) Back(ctx context.Context, id string) (domain.Wizard, error) {
	return s.mutate(ctx, id, func(w domain.Wizard) (domain.Wizard, error) {
		return w.Back(s.now())
	})
}

func (s *wizardService) Resume(ctx context.Context, id string) (domain.Wizard, error) {
	return s.mutate(ctx, id, func(w domain.Wizard) (domain.Wizard, error) {
		return w.Resume(s.now())
	})
}

func (s *wizardService) Abandon(ctx context.Context, id string) error {
	if _, err := s.store.Load(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// mutate loads the wizard, applies fn and stores the result. A step
// validation failure is stored too so the field errors survive a reload.
func (s *wizardService) mutate(ctx context.Context, id string, fn func(domain.Wizard) (domain.Wizard, error)) (domain.Wizard, error) {
	w, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.Wizard{}, err
	}
	next, opErr := fn(w)
	if opErr != nil && !errors.Is(opErr, domain.ErrStepInvalid) {
		return w, opErr
	}
	if err := s.store.Save(ctx, next); err != nil {
		return w, fmt.Errorf("save wizard: %w", err)
	}
	return next, opErr
}

// Submit creates the account for a completed draft.
//
// The wizard is stored as Submitting before the account call so a second
// concurrent submit is rejected as an invalid transition. A rejected account
// creation leaves the wizard Failed with its draft intact. Once the account
// exists the profile write is best-effort: a failure is logged and handed to
// the write-back queue, and the wizard still reaches Success.
func (s *wizardService) Submit(ctx context.Context, id string) (domain.Wizard, error) {
	w, err := s.store.Load(ctx, id)
	if err != nil {
		return domain.Wizard{}, err
	}

	submitting, err := w.BeginSubmit(s.now())
	if err != nil {
		if errors.Is(err, domain.ErrStepInvalid) {
			if saveErr := s.store.Save(ctx, submitting); saveErr != nil {
				return w, fmt.Errorf("save wizard: %w", saveErr)
			}
			return submitting, err
		}
		return w, err
	}
	if err := s.store.Save(ctx, submitting); err != nil {
		return w, fmt.Errorf("save wizard: %w", err)
	}

	account, err := s.sessions.CreateAccount(ctx, submitting.Draft.Email, submitting.Draft.Password)
	if err != nil {
		failed, _ := submitting.Fail(err, s.now())
		if saveErr := s.store.Save(ctx, failed); saveErr != nil {
			s.log.Error().Err(saveErr).Str("wizard_id", id).Msg("failed to store failed wizard")
		}
		s.log.Info().Err(err).Str("wizard_id", id).Msg("account creation rejected")
		return failed, err
	}

	profile := submitting.Draft.Profile(account.ID, s.now())
	if upErr := s.sessions.UpsertProfile(ctx, &profile); upErr != nil {
		s.log.Warn().Err(upErr).Str("account_id", account.ID).Msg("profile write failed after account creation")
		if s.writeBack != nil {
			s.writeBack.Enqueue(profile)
		}
	}

	done, err := submitting.Succeed(account.ID, s.now())
	if err != nil {
		return submitting, err
	}
	if delErr := s.store.Delete(ctx, id); delErr != nil {
		s.log.Warn().Err(delErr).Str("wizard_id", id).Msg("failed to delete submitted draft")
	}

	s.log.Info().Str("wizard_id", id).Str("account_id", account.ID).Msg("registration completed")
	return done, nil
}
