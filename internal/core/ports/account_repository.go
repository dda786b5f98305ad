package ports

import (
	"context"
	"time"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

// RateLimiter counts attempts for a key inside a fixed window.
type RateLimiter interface {
	// Allow records one attempt and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// TokenRevoker remembers signed-out tokens until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
