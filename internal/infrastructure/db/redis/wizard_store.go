package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

const defaultDraftTTL = 24 * time.Hour

// WizardStore keeps registration wizards as JSON with a sliding TTL, so a
// wizard the user walked away from disappears on its own.
// Key format: wizard:<id>
type WizardStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWizardStore(client *redis.Client, ttl time.Duration) *WizardStore {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &WizardStore{client: client, ttl: ttl}
}

type wizardRecord struct {
	ID          string             `json:"id"`
	State       domain.WizardState `json:"state"`
	Direction   domain.Direction   `json:"direction"`
	Draft       domain.Draft       `json:"draft"`
	Errors      domain.FieldErrors `json:"errors,omitempty"`
	SubmitError string             `json:"submitError,omitempty"`
	AccountID   string             `json:"accountId,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func (s *WizardStore) Save(ctx context.Context, w domain.Wizard) error {
	data, err := json.Marshal(wizardRecord{
		ID:          w.ID,
		State:       w.State,
		Direction:   w.Direction,
		Draft:       w.Draft,
		Errors:      w.Errors,
		SubmitError: w.SubmitError,
		AccountID:   w.AccountID,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode wizard: %w", err)
	}
	if err := s.client.Set(ctx, s.key(w.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store wizard: %w", err)
	}
	return nil
}

func (s *WizardStore) Load(ctx context.Context, id string) (domain.Wizard, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Wizard{}, domain.ErrWizardNotFound
		}
		return domain.Wizard{}, fmt.Errorf("load wizard: %w", err)
	}

	var rec wizardRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Wizard{}, fmt.Errorf("decode wizard: %w", err)
	}
	if rec.Errors == nil {
		rec.Errors = domain.FieldErrors{}
	}
	return domain.Wizard{
		ID:          rec.ID,
		State:       rec.State,
		Direction:   rec.Direction,
		Draft:       rec.Draft,
		Errors:      rec.Errors,
		SubmitError: rec.SubmitError,
		AccountID:   rec.AccountID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

func (s *WizardStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete wizard: %w", err)
	}
	return nil
}

func (s *WizardStore) key(id string) string {
	return "wizard:" + id
}
