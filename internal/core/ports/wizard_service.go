package ports

import (
	"context"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// WizardStore keeps wizard sessions between requests.
type WizardStore interface {
	Save(ctx context.Context, w domain.Wizard) error
	Load(ctx context.Context, id string) (domain.Wizard, error)
	Delete(ctx context.Context, id string) error
}

// WizardService drives registration wizards. Every method returns the wizard
// as it is after the call, also when the call fails on validation or submit.
type WizardService interface {
	Start(ctx context.Context) (domain.Wizard, error)
	Get(ctx context.Context, id string) (domain.Wizard, error)
	Update(ctx context.Context, id string, patch domain.DraftPatch) (domain.Wizard, error)
	Next(ctx context.Context, id string) (domain.Wizard, error)
	Back(ctx context.Context, id string) (domain.Wizard, error)
	Submit(ctx context.Context, id string) (domain.Wizard, error)
	Resume(ctx context.Context, id string) (domain.Wizard, error)
	Abandon(ctx context.Context, id string) error
}
