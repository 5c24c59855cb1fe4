package employee

import (
	"context"
	"strings"
	"time"

	"go-hris-admin/internal/domain"
	employeeerrors "go-hris-admin/internal/employee/errors"
	"go-hris-admin/internal/events"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/shared/apperror"
	"go-hris-admin/internal/shared/contextutil"
	"go-hris-admin/internal/view"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (view.EmployeeRow, error)
	GetAll(ctx context.Context) []view.EmployeeRow
	GetByID(ctx context.Context, id int64) (view.EmployeeRow, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (view.EmployeeRow, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	reg       *registry.Registry
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(reg *registry.Registry, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{reg: reg, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (view.EmployeeRow, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	empl := domain.Employee{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		DepartmentID: req.DepartmentID,
		HireDate:     strings.TrimSpace(req.HireDate),
		Role:         strings.TrimSpace(req.Role),
		Salary:       req.Salary,
	}
	if err := s.validate(empl); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return view.EmployeeRow{}, err
	}

	created, err := s.reg.Employees().Create(ctx, empl)
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return view.EmployeeRow{}, mapRemoteError(err)
	}

	event := events.EmployeeCreatedEvent{
		EventType:    events.EventEmployeeCreated,
		RequestID:    rid,
		EmployeeID:   created.ID,
		Email:        created.Email,
		DepartmentID: created.DepartmentID,
		Source:       events.SourceConsole,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		s.logger.Warn("publish employee_created failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", created.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", created.ID),
	)
	return s.row(created), nil
}

func (s *service) GetAll(ctx context.Context) []view.EmployeeRow {
	snap := s.reg.Snapshot()
	s.logger.Debug("get all employees requested", zap.Int("count", len(snap.Employees)))
	return view.EmployeeRows(snap.Employees, snap.Departments)
}

func (s *service) GetByID(ctx context.Context, id int64) (view.EmployeeRow, error) {
	empl, ok := s.reg.Employees().Find(id)
	if !ok {
		return view.EmployeeRow{}, employeeerrors.ErrEmployeeNotFound
	}
	return s.row(empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (view.EmployeeRow, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	if id <= 0 {
		return view.EmployeeRow{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, _ := s.reg.Employees().Find(id)
	empl.ID = id
	empl.Name = strings.TrimSpace(req.Name)
	empl.Email = strings.TrimSpace(req.Email)
	empl.DepartmentID = req.DepartmentID
	empl.HireDate = strings.TrimSpace(req.HireDate)
	empl.Role = strings.TrimSpace(req.Role)
	empl.Salary = req.Salary
	if err := s.validate(empl); err != nil {
		s.logger.Warn("update employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return view.EmployeeRow{}, err
	}

	saved, err := s.reg.Employees().Update(ctx, empl)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return view.EmployeeRow{}, mapRemoteError(err)
	}

	s.logger.Info("update employee success", zap.Int64("employee_id", id))
	return s.row(saved), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete employee requested", zap.Int64("employee_id", id))
	if id <= 0 {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.reg.Employees().Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return mapRemoteError(err)
	}

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

func (s *service) validate(empl domain.Employee) error {
	if empl.Name == "" {
		return apperror.RequiredField("Name")
	}
	if empl.DepartmentID != nil {
		if _, ok := s.reg.Departments().Find(*empl.DepartmentID); !ok {
			return employeeerrors.ErrUnknownDepartment
		}
	}
	if key := domain.NormalizeEmail(empl.Email); key != "" {
		for _, other := range s.reg.Employees().Items() {
			if other.ID != empl.ID && domain.NormalizeEmail(other.Email) == key {
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		}
	}
	return domain.Validate(empl)
}

func (s *service) row(empl domain.Employee) view.EmployeeRow {
	return view.EmployeeRows([]domain.Employee{empl}, s.reg.Departments().Items())[0]
}
