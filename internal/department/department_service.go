package department

import (
	"context"
	"errors"
	"strings"

	departmenterrors "go-hris-admin/internal/department/errors"
	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry"
	"go-hris-admin/internal/shared/apperror"
	"go-hris-admin/internal/view"
)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (view.DepartmentRow, error)
	GetAll(ctx context.Context) []view.DepartmentRow
	GetByID(ctx context.Context, id int64) (view.DepartmentRow, error)
	Members(ctx context.Context, id int64) (view.DepartmentMembers, error)
	Update(ctx context.Context, id int64, req UpdateDepartmentRequest) (view.DepartmentRow, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	reg *registry.Registry
}

func NewService(reg *registry.Registry) Service {
	return &service{reg: reg}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (view.DepartmentRow, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return view.DepartmentRow{}, apperror.RequiredField("Name")
	}
	if s.nameTaken(name, 0) {
		return view.DepartmentRow{}, departmenterrors.ErrDepartmentAlreadyExists
	}

	dept, err := s.reg.Departments().Create(ctx, domain.Department{Name: name})
	if err != nil {
		return view.DepartmentRow{}, mapRemoteError(err)
	}
	return s.row(dept), nil
}

func (s *service) GetAll(ctx context.Context) []view.DepartmentRow {
	snap := s.reg.Snapshot()
	return view.DepartmentRows(snap.Departments, snap.Employees, snap.Candidates)
}

func (s *service) GetByID(ctx context.Context, id int64) (view.DepartmentRow, error) {
	dept, ok := s.reg.Departments().Find(id)
	if !ok {
		return view.DepartmentRow{}, departmenterrors.ErrDepartmentNotFound
	}
	return s.row(dept), nil
}

func (s *service) Members(ctx context.Context, id int64) (view.DepartmentMembers, error) {
	snap := s.reg.Snapshot()
	for _, d := range snap.Departments {
		if d.ID == id {
			return view.Members(d, snap.Employees, snap.Candidates), nil
		}
	}
	return view.DepartmentMembers{}, departmenterrors.ErrDepartmentNotFound
}

func (s *service) Update(ctx context.Context, id int64, req UpdateDepartmentRequest) (view.DepartmentRow, error) {
	if id <= 0 {
		return view.DepartmentRow{}, departmenterrors.ErrInvalidDepartmentID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return view.DepartmentRow{}, apperror.RequiredField("Name")
	}
	if s.nameTaken(name, id) {
		return view.DepartmentRow{}, departmenterrors.ErrDepartmentAlreadyExists
	}

	dept, err := s.reg.Departments().Update(ctx, domain.Department{ID: id, Name: name})
	if err != nil {
		return view.DepartmentRow{}, mapRemoteError(err)
	}
	return s.row(dept), nil
}

// Delete also detaches the department's employees and candidates locally.
func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return departmenterrors.ErrInvalidDepartmentID
	}
	return mapRemoteError(s.reg.Departments().Delete(ctx, id))
}

func (s *service) row(d domain.Department) view.DepartmentRow {
	snap := s.reg.Snapshot()
	return view.DepartmentRows([]domain.Department{d}, snap.Employees, snap.Candidates)[0]
}

func (s *service) nameTaken(name string, exceptID int64) bool {
	for _, d := range s.reg.Departments().Items() {
		if d.ID != exceptID && strings.EqualFold(strings.TrimSpace(d.Name), name) {
			return true
		}
	}
	return false
}

func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return departmenterrors.ErrDepartmentNotFound.WithCause(err)
	}
	return err
}
