package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mealwise/mealplanner/internal/core/domain"
	"github.com/mealwise/mealplanner/internal/core/ports"
)

const newUserWindow = 7 * 24 * time.Hour

type adminService struct {
	sessions ports.SessionStore
	profiles ports.ProfileRepository
	history  ports.GenerationLog
	migrator ports.SchemaMigrator
	log      zerolog.Logger
	now      func() time.Time
}

// NewAdminService returns an AdminService implementation.
func NewAdminService(
	sessions ports.SessionStore,
	profiles ports.ProfileRepository,
	history ports.GenerationLog,
	migrator ports.SchemaMigrator,
	log zerolog.Logger,
) ports.AdminService {
	return &adminService{
		sessions: sessions,
		profiles: profiles,
		history:  history,
		migrator: migrator,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Stats aggregates profile statistics and all-time generation counts. A
// generation log failure degrades to empty counts.
func (s *adminService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	ps, err := s.profiles.Stats(ctx, s.now().Add(-newUserWindow))
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	stats := &domain.AdminStats{ProfileStats: *ps, GenerationsByKind: []domain.CountBy{}}
	if s.history != nil {
		counts, err := s.history.CountByKind(ctx, time.Time{})
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to count generations")
		} else {
			stats.GenerationsByKind = counts
		}
	}
	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context, filter domain.ProfileFilter) ([]*domain.Profile, error) {
	return s.sessions.QueryProfiles(ctx, filter)
}

func (s *adminService) WatchProfiles(ctx context.Context) (<-chan domain.ProfileChange, error) {
	return s.sessions.SubscribeProfileChanges(ctx)
}

func (s *adminService) EnsureProfileColumns(ctx context.Context) []domain.ColumnResult {
	return s.ensure(ctx, domain.ProfileColumns)
}

func (s *adminService) EnsureMembershipColumn(ctx context.Context) []domain.ColumnResult {
	return s.ensure(ctx, []domain.ColumnSpec{domain.MembershipColumn})
}

func (s *adminService) ensure(ctx context.Context, cols []domain.ColumnSpec) []domain.ColumnResult {
	results := s.migrator.EnsureColumns(ctx, cols)
	for _, r := range results {
		ev := s.log.Info()
		if r.Status == domain.ColumnError {
			ev = s.log.Error().Str("error", r.Error)
		}
		ev.Str("column", r.Column).Str("status", string(r.Status)).Msg("schema column ensured")
	}
	return results
}
