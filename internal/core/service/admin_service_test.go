package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

type stubMigrator struct {
	seen map[string]bool
	fail map[string]error
}

func (m *stubMigrator) EnsureColumns(_ context.Context, cols []domain.ColumnSpec) []domain.ColumnResult {
	if m.seen == nil {
		m.seen = map[string]bool{}
	}
	out := make([]domain.ColumnResult, 0, len(cols))
	for _, c := range cols {
		switch {
		case m.fail[c.Name] != nil:
			out = append(out, domain.ColumnResult{Column: c.Name, Status: domain.ColumnError, Error: m.fail[c.Name].Error()})
		case m.seen[c.Name]:
			out = append(out, domain.ColumnResult{Column: c.Name, Status: domain.ColumnExists})
		default:
			m.seen[c.Name] = true
			out = append(out, domain.ColumnResult{Column: c.Name, Status: domain.ColumnAdded})
		}
	}
	return out
}

func TestAdminService_EnsureColumns_AddedThenExists(t *testing.T) {
	mig := &stubMigrator{fail: map[string]error{"allergies": errors.New("write conflict")}}
	svc := NewAdminService(&stubSessionStore{}, newStubProfileRepo(), nil, mig, zerolog.Nop())

	first := svc.EnsureProfileColumns(context.Background())
	if len(first) != len(domain.ProfileColumns) {
		t.Fatalf("expected a result per column, got %d", len(first))
	}
	for _, r := range first {
		want := domain.ColumnAdded
		if r.Column == "allergies" {
			want = domain.ColumnError
		}
		if r.Status != want {
			t.Errorf("%s: expected %s, got %s", r.Column, want, r.Status)
		}
	}

	second := svc.EnsureProfileColumns(context.Background())
	for _, r := range second {
		if r.Column != "allergies" && r.Status != domain.ColumnExists {
			t.Errorf("%s: expected exists on second run, got %s", r.Column, r.Status)
		}
	}

	m := svc.EnsureMembershipColumn(context.Background())
	if len(m) != 1 || m[0].Column != "membership" || m[0].Status != domain.ColumnAdded {
		t.Fatalf("unexpected membership result: %+v", m)
	}
}

func TestAdminService_Stats(t *testing.T) {
	profiles := newStubProfileRepo()
	profiles.stats = &domain.ProfileStats{TotalUsers: 12, NewUsersLast7d: 3}
	history := &stubGenerationLog{counts: []domain.CountBy{{Key: "meal", Count: 40}}}
	svc := NewAdminService(&stubSessionStore{}, profiles, history, &stubMigrator{}, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalUsers != 12 || stats.NewUsersLast7d != 3 {
		t.Errorf("unexpected profile stats: %+v", stats.ProfileStats)
	}
	if len(stats.GenerationsByKind) != 1 || stats.GenerationsByKind[0].Count != 40 {
		t.Errorf("unexpected generation counts: %+v", stats.GenerationsByKind)
	}
}

func TestAdminService_Stats_GenerationLogDown(t *testing.T) {
	history := &stubGenerationLog{countErr: errors.New("timeout")}
	svc := NewAdminService(&stubSessionStore{}, newStubProfileRepo(), history, &stubMigrator{}, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected degraded stats, got %v", err)
	}
	if stats.GenerationsByKind == nil || len(stats.GenerationsByKind) != 0 {
		t.Errorf("expected empty generation counts, got %+v", stats.GenerationsByKind)
	}
}

func TestAdminService_Stats_ProfileError(t *testing.T) {
	profiles := newStubProfileRepo()
	profiles.statsErr = errors.New("aggregate failed")
	svc := NewAdminService(&stubSessionStore{}, profiles, nil, &stubMigrator{}, zerolog.Nop())

	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
