package registry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/restclient"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Remote is the backend side of one collection. restclient.Collection
// implements it.
type Remote[T domain.Record] interface {
	Fetch(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id int64) error
}

type Remotes struct {
	Departments Remote[domain.Department]
	Employees   Remote[domain.Employee]
	Candidates  Remote[domain.Candidate]
	Companies   Remote[domain.Company]
	Salaries    Remote[domain.Salary]
}

// RemotesFromClient binds every collection to its REST path on client.
func RemotesFromClient(client *restclient.Client) Remotes {
	return Remotes{
		Departments: restclient.NewCollection[domain.Department](client, domain.KindDepartments),
		Employees:   restclient.NewCollection[domain.Employee](client, domain.KindEmployees),
		Candidates:  restclient.NewCollection[domain.Candidate](client, domain.KindCandidates),
		Companies:   restclient.NewCollection[domain.Company](client, domain.KindCompanies),
		Salaries:    restclient.NewCollection[domain.Salary](client, domain.KindSalaries),
	}
}

// RefreshTimeout bounds one refresh cycle. The cycle does not inherit the
// caller's cancellation, since its result is shared with every waiter.
const RefreshTimeout = time.Minute

// Listener receives the snapshot current at the time of the change.
type Listener func(Snapshot)

type subscription struct {
	id uint64
	fn Listener
}

// Registry is the process-wide cache of the five HR collections. Snapshots
// are immutable; every change publishes a new one. Listeners run
// synchronously while the publish lock is held, so they must not write to
// the registry.
type Registry struct {
	remotes Remotes
	logger  *zap.Logger

	current atomic.Pointer[Snapshot]

	mu     sync.Mutex
	subs   map[domain.Kind][]subscription
	nextID uint64

	refreshGroup singleflight.Group

	departments *Binding[domain.Department]
	employees   *Binding[domain.Employee]
	candidates  *Binding[domain.Candidate]
	companies   *Binding[domain.Company]
	salaries    *Binding[domain.Salary]
}

func New(remotes Remotes, logger ...*zap.Logger) *Registry {
	l := zap.L().Named("registry")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	r := &Registry{
		remotes: remotes,
		logger:  l,
		subs:    make(map[domain.Kind][]subscription),
	}
	r.current.Store(emptySnapshot())

	r.departments = &Binding[domain.Department]{
		reg: r, kind: domain.KindDepartments, remote: remotes.Departments,
		get:         func(s *Snapshot) []domain.Department { return s.Departments },
		set:         func(s *Snapshot, v []domain.Department) { s.Departments = v },
		afterDelete: clearDepartmentRefs,
	}
	r.employees = &Binding[domain.Employee]{
		reg: r, kind: domain.KindEmployees, remote: remotes.Employees,
		get: func(s *Snapshot) []domain.Employee { return s.Employees },
		set: func(s *Snapshot, v []domain.Employee) { s.Employees = v },
	}
	r.candidates = &Binding[domain.Candidate]{
		reg: r, kind: domain.KindCandidates, remote: remotes.Candidates,
		get: func(s *Snapshot) []domain.Candidate { return s.Candidates },
		set: func(s *Snapshot, v []domain.Candidate) { s.Candidates = v },
	}
	r.companies = &Binding[domain.Company]{
		reg: r, kind: domain.KindCompanies, remote: remotes.Companies,
		get: func(s *Snapshot) []domain.Company { return s.Companies },
		set: func(s *Snapshot, v []domain.Company) { s.Companies = v },
	}
	r.salaries = &Binding[domain.Salary]{
		reg: r, kind: domain.KindSalaries, remote: remotes.Salaries,
		get: func(s *Snapshot) []domain.Salary { return s.Salaries },
		set: func(s *Snapshot, v []domain.Salary) { s.Salaries = v },
	}
	return r
}

func (r *Registry) Departments() *Binding[domain.Department] { return r.departments }
func (r *Registry) Employees() *Binding[domain.Employee]     { return r.employees }
func (r *Registry) Candidates() *Binding[domain.Candidate]   { return r.candidates }
func (r *Registry) Companies() *Binding[domain.Company]      { return r.companies }
func (r *Registry) Salaries() *Binding[domain.Salary]        { return r.salaries }

// Snapshot returns the latest published state.
func (r *Registry) Snapshot() Snapshot {
	return *r.current.Load()
}

// Subscribe registers fn for changes to kind. fn is called once right away
// with the latest snapshot, then after every publish touching kind, in
// registration order. The returned func unsubscribes.
func (r *Registry) Subscribe(kind domain.Kind, fn Listener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.subs[kind] = append(r.subs[kind], subscription{id: id, fn: fn})
	fn(*r.current.Load())

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		subs := r.subs[kind]
		for i, s := range subs {
			if s.id == id {
				r.subs[kind] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// RefreshResult reports one refresh cycle. Failed kinds were published as
// empty collections. Published is false when the cycle ran out of time and
// the previous snapshot was kept.
type RefreshResult struct {
	Cycle     uint64
	Failed    []domain.Kind
	Published bool
}

// Refresh reloads all five collections in parallel and publishes them
// together. A collection that cannot be fetched is published empty. Calls
// made while a refresh is in flight share its result.
func (r *Registry) Refresh(ctx context.Context) RefreshResult {
	v, _, _ := r.refreshGroup.Do("refresh", func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), RefreshTimeout)
		defer cancel()
		return r.refresh(flightCtx), nil
	})
	return v.(RefreshResult)
}

func (r *Registry) refresh(ctx context.Context) RefreshResult {
	var (
		next   Snapshot
		failMu sync.Mutex
		failed []domain.Kind
	)

	fail := func(kind domain.Kind, err error) {
		r.logger.Warn("refresh failed, publishing empty collection",
			zap.String("resource", string(kind)),
			zap.Error(err),
		)
		failMu.Lock()
		failed = append(failed, kind)
		failMu.Unlock()
	}

	// every goroutine returns nil so a failure never cancels its siblings
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		next.Departments = fetchOrEmpty(gctx, r.remotes.Departments, func(err error) { fail(domain.KindDepartments, err) })
		return nil
	})
	g.Go(func() error {
		next.Employees = fetchOrEmpty(gctx, r.remotes.Employees, func(err error) { fail(domain.KindEmployees, err) })
		return nil
	})
	g.Go(func() error {
		next.Candidates = fetchOrEmpty(gctx, r.remotes.Candidates, func(err error) { fail(domain.KindCandidates, err) })
		return nil
	})
	g.Go(func() error {
		next.Companies = fetchOrEmpty(gctx, r.remotes.Companies, func(err error) { fail(domain.KindCompanies, err) })
		return nil
	})
	g.Go(func() error {
		next.Salaries = fetchOrEmpty(gctx, r.remotes.Salaries, func(err error) { fail(domain.KindSalaries, err) })
		return nil
	})
	_ = g.Wait()

	// out of time: readers keep the previous snapshot
	if ctx.Err() != nil {
		r.logger.Warn("refresh abandoned, keeping previous snapshot",
			zap.Error(ctx.Err()),
			zap.Int("failed", len(failed)),
		)
		return RefreshResult{Cycle: r.current.Load().Cycle, Failed: failed}
	}

	published := r.publish(func(s *Snapshot) []domain.Kind {
		next.Cycle = s.Cycle + 1
		*s = next
		return domain.Kinds
	})

	r.logger.Info("registry refreshed",
		zap.Uint64("cycle", published.Cycle),
		zap.Int("departments", len(published.Departments)),
		zap.Int("employees", len(published.Employees)),
		zap.Int("candidates", len(published.Candidates)),
		zap.Int("companies", len(published.Companies)),
		zap.Int("salaries", len(published.Salaries)),
		zap.Int("failed", len(failed)),
	)
	return RefreshResult{Cycle: published.Cycle, Failed: failed, Published: true}
}

func fetchOrEmpty[T domain.Record](ctx context.Context, remote Remote[T], onErr func(error)) []T {
	if remote == nil {
		return []T{}
	}
	items, err := remote.Fetch(ctx)
	if err != nil {
		onErr(err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// publish applies change to a copy of the current snapshot, stores it and
// notifies listeners of the kinds change reports.
func (r *Registry) publish(change func(next *Snapshot) []domain.Kind) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := *r.current.Load()
	changed := change(&next)
	r.current.Store(&next)

	for _, kind := range changed {
		for _, s := range r.subs[kind] {
			s.fn(next)
		}
	}
	return next
}
