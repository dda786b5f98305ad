package ports

import (
	"context"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// SessionStore is the identity and profile capability set consumed by the
// wizard, the profile screens and the admin surface.
type SessionStore interface {
	CreateAccount(ctx context.Context, email, password string) (*domain.Account, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, session *domain.Session) error
	CurrentSession(ctx context.Context, accessToken string) (*domain.Session, error)

	UpsertProfile(ctx context.Context, profile *domain.Profile) error
	GetProfile(ctx context.Context, accountID string) (*domain.Profile, error)
	QueryProfiles(ctx context.Context, filter domain.ProfileFilter) ([]*domain.Profile, error)
	SubscribeProfileChanges(ctx context.Context) (<-chan domain.ProfileChange, error)
}
