package registry

import (
	"context"
	"testing"

	"go-hris-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedRemote[T domain.Record] struct {
	items []T
}

func (r fixedRemote[T]) Fetch(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.items, nil
}

func (r fixedRemote[T]) Create(_ context.Context, item T) (T, error) { return item, nil }
func (r fixedRemote[T]) Update(_ context.Context, item T) (T, error) { return item, nil }
func (r fixedRemote[T]) Delete(context.Context, int64) error         { return nil }

func TestRefresh_AbandonedCycleKeepsSnapshot(t *testing.T) {
	reg := New(Remotes{
		Departments: fixedRemote[domain.Department]{items: []domain.Department{{ID: 1, Name: "Engineering"}}},
		Employees:   fixedRemote[domain.Employee]{items: []domain.Employee{{ID: 1, Name: "Abel K"}}},
	}, zap.NewNop())
	first := reg.refresh(context.Background())
	require.True(t, first.Published)

	var notified int
	reg.Subscribe(domain.KindEmployees, func(Snapshot) { notified++ })
	notified = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := reg.refresh(ctx)

	assert.False(t, res.Published)
	assert.Equal(t, first.Cycle, res.Cycle)
	assert.ElementsMatch(t, []domain.Kind{domain.KindDepartments, domain.KindEmployees}, res.Failed)
	assert.Zero(t, notified)
	s := reg.Snapshot()
	assert.Equal(t, uint64(1), s.Cycle)
	assert.Len(t, s.Employees, 1)
	assert.Len(t, s.Departments, 1)
}

func TestFetchOrEmpty_NilBecomesEmpty(t *testing.T) {
	items := fetchOrEmpty[domain.Salary](context.Background(), fixedRemote[domain.Salary]{}, func(error) {})

	assert.NotNil(t, items)
	assert.Empty(t, items)
}
