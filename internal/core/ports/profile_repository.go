package ports

import (
	"context"
	"time"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

// ProfileRepository handles persistence of profile attributes.
type ProfileRepository interface {
	// Upsert creates or replaces the attributes of profile.AccountID. CreatedAt
	// is only written on insert.
	Upsert(ctx context.Context, profile *domain.Profile) error
	FindByAccountID(ctx context.Context, accountID string) (*domain.Profile, error)
	Query(ctx context.Context, filter domain.ProfileFilter) ([]*domain.Profile, error)
	Stats(ctx context.Context, since time.Time) (*domain.ProfileStats, error)
}

// ProfileChangeStream delivers profile writes as they happen. The channel is
// closed when ctx is cancelled or the underlying stream fails.
type ProfileChangeStream interface {
	Subscribe(ctx context.Context) (<-chan domain.ProfileChange, error)
}

// SchemaMigrator idempotently registers optional profile columns.
type SchemaMigrator interface {
	EnsureColumns(ctx context.Context, columns []domain.ColumnSpec) []domain.ColumnResult
}

// ProfileWriteBack retries profile upserts that failed after account creation.
type ProfileWriteBack interface {
	Enqueue(profile domain.Profile)
}
