package candidate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/events"
	"go-hris-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=candidate_executor.go -destination=mock/candidate_executor_mock.go -package=mock
type EmployeeCreator interface {
	Create(ctx context.Context, employee domain.Employee) (domain.Employee, error)
}

type CandidateDeleter interface {
	Delete(ctx context.Context, id int64) error
}

type EventPublisher interface {
	PublishEmployeeCreated(ctx context.Context, event events.EmployeeCreatedEvent) error
}

// Effects is what executing a plan achieved. Err joins every failed step.
type Effects struct {
	Employee         *domain.Employee
	EmployeeCreated  bool
	CandidateDeleted bool
	Err              error
}

// Executor applies plans. It never rolls back a step that succeeded.
type Executor struct {
	employees  EmployeeCreator
	candidates CandidateDeleter
	publisher  EventPublisher
	logger     *zap.Logger
}

func NewExecutor(employees EmployeeCreator, candidates CandidateDeleter, publisher EventPublisher, logger ...*zap.Logger) *Executor {
	l := zap.L().Named("candidate.reconciler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.reconciler")
	}
	return &Executor{employees: employees, candidates: candidates, publisher: publisher, logger: l}
}

// Execute creates the planned employee, then deletes the candidate. The
// delete is attempted even when the create fails.
func (x *Executor) Execute(ctx context.Context, plan Plan) Effects {
	var (
		fx   Effects
		errs []error
	)
	rid := contextutil.GetRequestID(ctx)
	fx.Employee = plan.Matched

	if plan.NewEmployee != nil {
		created, err := x.employees.Create(ctx, *plan.NewEmployee)
		if err != nil {
			x.logger.Error("reconcile create employee failed",
				zap.String("request_id", rid),
				zap.Int64("candidate_id", plan.Candidate.ID),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("create employee: %w", err))
		} else {
			fx.Employee = &created
			fx.EmployeeCreated = true
			x.publishCreated(ctx, plan.Candidate, created)
		}
	}

	if plan.DeleteCandidate {
		if err := x.candidates.Delete(ctx, plan.Candidate.ID); err != nil {
			x.logger.Error("reconcile delete candidate failed",
				zap.String("request_id", rid),
				zap.Int64("candidate_id", plan.Candidate.ID),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("delete candidate %d: %w", plan.Candidate.ID, err))
		} else {
			fx.CandidateDeleted = true
		}
	}

	fx.Err = errors.Join(errs...)
	if !plan.Empty() {
		x.logger.Info("candidate reconciled",
			zap.String("request_id", rid),
			zap.Int64("candidate_id", plan.Candidate.ID),
			zap.String("status", string(plan.Candidate.Status)),
			zap.Bool("employee_created", fx.EmployeeCreated),
			zap.Bool("candidate_deleted", fx.CandidateDeleted),
			zap.Bool("complete", fx.Err == nil),
		)
	}
	return fx
}

// publishCreated is best effort; the employee already exists.
func (x *Executor) publishCreated(ctx context.Context, c domain.Candidate, e domain.Employee) {
	if x.publisher == nil {
		return
	}
	err := x.publisher.PublishEmployeeCreated(ctx, events.EmployeeCreatedEvent{
		EventType:    events.EventEmployeeCreated,
		RequestID:    contextutil.GetRequestID(ctx),
		EmployeeID:   e.ID,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		Source:       events.SourceCandidateHire,
		CandidateID:  c.ID,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		x.logger.Warn("publish employee_created failed",
			zap.Int64("employee_id", e.ID),
			zap.Error(err),
		)
	}
}
