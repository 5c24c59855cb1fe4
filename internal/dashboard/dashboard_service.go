package dashboard

import (
	"context"
	"slices"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/view"

	"go.uber.org/zap"
)

type Service interface {
	Summary(ctx context.Context) SummaryResponse
}

type service struct {
	reg    *registry.Registry
	store  SnapshotStore
	logger *zap.Logger
}

func NewService(reg *registry.Registry, store SnapshotStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	if store == nil {
		store = NewMemoryStore()
	}
	return &service{reg: reg, store: store, logger: l}
}

// Summary never fails: a store error only drops the deltas.
func (s *service) Summary(ctx context.Context) SummaryResponse {
	snap := s.reg.Snapshot()
	now := Counts{
		Employees:   len(snap.Employees),
		Departments: len(snap.Departments),
		Companies:   len(snap.Companies),
		Candidates:  len(snap.Candidates),
	}

	resp := SummaryResponse{
		Employees:        Stat{Count: now.Employees},
		Departments:      Stat{Count: now.Departments},
		Companies:        Stat{Count: now.Companies},
		Candidates:       Stat{Count: now.Candidates},
		RecentCandidates: view.CandidateRows(recentCandidates(snap.Candidates, RecentLimit), snap.Departments),
		Cycle:            snap.Cycle,
	}

	prev, err := s.rotate(ctx, now)
	if err != nil {
		s.logger.Warn("dashboard baseline unavailable", zap.Error(err))
		return resp
	}
	if prev != nil {
		resp.Employees.Delta = delta(now.Employees, prev.Employees)
		resp.Departments.Delta = delta(now.Departments, prev.Departments)
		resp.Companies.Delta = delta(now.Companies, prev.Companies)
		resp.Candidates.Delta = delta(now.Candidates, prev.Candidates)
	}
	return resp
}

// rotate records now as the current baseline when it differs from the stored
// one and returns the counts deltas are measured against.
func (s *service) rotate(ctx context.Context, now Counts) (*Counts, error) {
	stored, ok, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.store.Save(ctx, Baseline{Current: now})
	}
	if stored.Current == now {
		return stored.Previous, nil
	}

	prev := stored.Current
	if err := s.store.Save(ctx, Baseline{Current: now, Previous: &prev}); err != nil {
		return nil, err
	}
	return &prev, nil
}

// recentCandidates returns up to n candidates, highest id first.
func recentCandidates(candidates []domain.Candidate, n int) []domain.Candidate {
	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, func(a, b domain.Candidate) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func delta(now, prev int) *int {
	d := now - prev
	return &d
}
