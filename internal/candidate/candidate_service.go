package candidate

import (
	"context"
	"fmt"
	"strings"

	candidateerrors "go-hris-admin/internal/candidate/errors"
	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/shared/apperror"
	"go-hris-admin/internal/shared/contextutil"
	"go-hris-admin/internal/view"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) []view.CandidateRow
	GetByID(ctx context.Context, id int64) (view.CandidateRow, error)
	Create(ctx context.Context, req CreateCandidateRequest) (SaveCandidateResponse, error)
	Update(ctx context.Context, id int64, req UpdateCandidateRequest) (SaveCandidateResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	reg      *registry.Registry
	executor *Executor
	clock    Clock
	logger   *zap.Logger
}

// NewService saves candidates through reg and reconciles terminal statuses.
// A nil clock uses the wall clock.
func NewService(reg *registry.Registry, publisher EventPublisher, clock Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("candidate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.service")
	}
	if clock == nil {
		clock = realClock{}
	}
	return &service{
		reg:      reg,
		executor: NewExecutor(reg.Employees(), reg.Candidates(), publisher, logger...),
		clock:    clock,
		logger:   l,
	}
}

func (s *service) GetAll(ctx context.Context) []view.CandidateRow {
	snap := s.reg.Snapshot()
	s.logger.Debug("get all candidates requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Uint64("cycle", snap.Cycle),
	)
	return view.CandidateRows(snap.Candidates, snap.Departments)
}

func (s *service) GetByID(ctx context.Context, id int64) (view.CandidateRow, error) {
	c, ok := s.reg.Candidates().Find(id)
	if !ok {
		s.logger.Debug("candidate not in registry",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Int64("candidate_id", id),
		)
		return view.CandidateRow{}, candidateerrors.ErrCandidateNotFound
	}
	return s.row(c), nil
}

func (s *service) Create(ctx context.Context, req CreateCandidateRequest) (SaveCandidateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create candidate requested",
		zap.String("request_id", rid),
		zap.String("status", string(req.Status)),
	)

	status := req.Status
	if status == "" {
		status = domain.StatusApplied
	}
	c := domain.Candidate{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		DepartmentID: req.DepartmentID,
		Status:       status,
	}
	if err := s.validate(c); err != nil {
		s.logger.Warn("create candidate validation failed", zap.String("request_id", rid), zap.Error(err))
		return SaveCandidateResponse{}, err
	}

	saved, err := s.reg.Candidates().Create(ctx, c)
	if err != nil {
		s.logger.Error("create candidate failed", zap.String("request_id", rid), zap.Error(err))
		return SaveCandidateResponse{}, mapRemoteError(err)
	}

	s.logger.Info("create candidate success",
		zap.String("request_id", rid),
		zap.Int64("candidate_id", saved.ID),
	)
	return s.reconcile(ctx, saved)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateCandidateRequest) (SaveCandidateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update candidate requested",
		zap.String("request_id", rid),
		zap.Int64("candidate_id", id),
		zap.String("status", string(req.Status)),
	)
	if id <= 0 {
		return SaveCandidateResponse{}, candidateerrors.ErrInvalidCandidateID
	}

	// keep fields the form does not carry, such as alternate name fields
	c, _ := s.reg.Candidates().Find(id)
	c.ID = id
	c.Name = strings.TrimSpace(req.Name)
	c.Email = strings.TrimSpace(req.Email)
	c.DepartmentID = req.DepartmentID
	c.Status = req.Status
	if err := s.validate(c); err != nil {
		s.logger.Warn("update candidate validation failed", zap.String("request_id", rid), zap.Error(err))
		return SaveCandidateResponse{}, err
	}

	saved, err := s.reg.Candidates().Update(ctx, c)
	if err != nil {
		s.logger.Error("update candidate failed",
			zap.String("request_id", rid),
			zap.Int64("candidate_id", id),
			zap.Error(err),
		)
		return SaveCandidateResponse{}, mapRemoteError(err)
	}

	s.logger.Info("update candidate success", zap.String("request_id", rid), zap.Int64("candidate_id", id))
	return s.reconcile(ctx, saved)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete candidate requested", zap.String("request_id", rid), zap.Int64("candidate_id", id))
	if id <= 0 {
		return candidateerrors.ErrInvalidCandidateID
	}

	if err := s.reg.Candidates().Delete(ctx, id); err != nil {
		s.logger.Error("delete candidate failed", zap.String("request_id", rid), zap.Error(err))
		return mapRemoteError(err)
	}

	s.logger.Info("delete candidate success", zap.String("request_id", rid), zap.Int64("candidate_id", id))
	return nil
}

// reconcile runs the lifecycle rule on the record the backend returned.
func (s *service) reconcile(ctx context.Context, saved domain.Candidate) (SaveCandidateResponse, error) {
	plan := Decide(saved, s.reg.Employees().Items(), s.clock.Now())
	fx := s.executor.Execute(ctx, plan)

	resp := SaveCandidateResponse{
		Candidate:        s.row(saved),
		Outcome:          OutcomeSaved,
		EmployeeCreated:  fx.EmployeeCreated,
		CandidateRemoved: fx.CandidateDeleted,
	}
	if fx.Employee != nil {
		snap := s.reg.Snapshot()
		row := view.EmployeeRows([]domain.Employee{*fx.Employee}, snap.Departments)[0]
		resp.Employee = &row
	}

	name := resp.Candidate.Name
	switch saved.Status {
	case domain.StatusHired:
		resp.Outcome = OutcomeHired
		if fx.EmployeeCreated {
			resp.Message = fmt.Sprintf("%s was hired and added to employees", name)
		} else {
			resp.Message = fmt.Sprintf("%s was hired; the existing employee record was kept", name)
		}
	case domain.StatusRejected:
		resp.Outcome = OutcomeRejected
		resp.Message = fmt.Sprintf("%s was rejected and removed from candidates", name)
	default:
		resp.Message = "Candidate saved"
	}

	if fx.Err != nil {
		return resp, candidateerrors.ErrIncompleteReconciliation.
			WithCause(fx.Err).
			WithDetails(ReconcileDetails{
				CandidateID:      saved.ID,
				EmployeeCreated:  fx.EmployeeCreated,
				CandidateRemoved: fx.CandidateDeleted,
				Reason:           fx.Err.Error(),
			})
	}
	return resp, nil
}

func (s *service) row(c domain.Candidate) view.CandidateRow {
	return view.CandidateRows([]domain.Candidate{c}, s.reg.Departments().Items())[0]
}

// validate requires a known department, like the employee service.
func (s *service) validate(c domain.Candidate) error {
	if c.Name == "" {
		return apperror.RequiredField("Name")
	}
	if !c.Status.Valid() {
		return candidateerrors.ErrInvalidStatus
	}
	if c.DepartmentID != nil {
		if _, ok := s.reg.Departments().Find(*c.DepartmentID); !ok {
			return candidateerrors.ErrUnknownDepartment
		}
	}
	return domain.Validate(c)
}
