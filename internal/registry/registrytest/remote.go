// Package registrytest provides an in-memory backend for tests of packages
// built on the registry.
package registrytest

import (
	"context"
	"slices"
	"sync"
	"testing"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

// Remote is an in-memory registry.Remote with injectable failures.
type Remote[T domain.Record] struct {
	mu     sync.Mutex
	items  []T
	nextID int64
	setID  func(T, int64) T

	fetchErr  error
	createErr error
	updateErr error
	deleteErr error

	deleted []int64
}

func NewRemote[T domain.Record](setID func(T, int64) T) *Remote[T] {
	return &Remote[T]{setID: setID}
}

// Seed stores items as-is; ids are taken verbatim.
func (r *Remote[T]) Seed(items ...T) *Remote[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		r.items = append(r.items, it)
		if it.Key() > r.nextID {
			r.nextID = it.Key()
		}
	}
	return r
}

func (r *Remote[T]) FailFetch(err error)  { r.mu.Lock(); r.fetchErr = err; r.mu.Unlock() }
func (r *Remote[T]) FailCreate(err error) { r.mu.Lock(); r.createErr = err; r.mu.Unlock() }
func (r *Remote[T]) FailUpdate(err error) { r.mu.Lock(); r.updateErr = err; r.mu.Unlock() }
func (r *Remote[T]) FailDelete(err error) { r.mu.Lock(); r.deleteErr = err; r.mu.Unlock() }

// Stored returns what the backend currently holds.
func (r *Remote[T]) Stored() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

// Deleted lists ids passed to Delete, in call order.
func (r *Remote[T]) Deleted() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.deleted)
}

func (r *Remote[T]) Fetch(context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	return slices.Clone(r.items), nil
}

func (r *Remote[T]) Create(_ context.Context, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return item, r.createErr
	}
	r.nextID++
	created := r.setID(item, r.nextID)
	r.items = append(r.items, created)
	return created, nil
}

func (r *Remote[T]) Update(_ context.Context, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return item, r.updateErr
	}
	for i := range r.items {
		if r.items[i].Key() == item.Key() {
			r.items[i] = item
			return item, nil
		}
	}
	return item, apperror.ErrNotFound
}

func (r *Remote[T]) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, id)
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.items = slices.DeleteFunc(r.items, func(it T) bool { return it.Key() == id })
	return nil
}

// Backend holds one Remote per collection.
type Backend struct {
	Departments *Remote[domain.Department]
	Employees   *Remote[domain.Employee]
	Candidates  *Remote[domain.Candidate]
	Companies   *Remote[domain.Company]
	Salaries    *Remote[domain.Salary]
}

func NewBackend() *Backend {
	return &Backend{
		Departments: NewRemote(func(d domain.Department, id int64) domain.Department { d.ID = id; return d }),
		Employees:   NewRemote(func(e domain.Employee, id int64) domain.Employee { e.ID = id; return e }),
		Candidates:  NewRemote(func(c domain.Candidate, id int64) domain.Candidate { c.ID = id; return c }),
		Companies:   NewRemote(func(c domain.Company, id int64) domain.Company { c.ID = id; return c }),
		Salaries:    NewRemote(func(s domain.Salary, id int64) domain.Salary { s.ID = id; return s }),
	}
}

func (b *Backend) Remotes() registry.Remotes {
	return registry.Remotes{
		Departments: b.Departments,
		Employees:   b.Employees,
		Candidates:  b.Candidates,
		Companies:   b.Companies,
		Salaries:    b.Salaries,
	}
}

// Registry returns a registry over b, already refreshed once.
func (b *Backend) Registry(t testing.TB) *registry.Registry {
	t.Helper()
	reg := registry.New(b.Remotes(), zap.NewNop())
	reg.Refresh(context.Background())
	return reg
}

func Ptr(v int64) *int64 { return &v }
