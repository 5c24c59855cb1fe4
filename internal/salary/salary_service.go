package salary

import (
	"context"
	"strings"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry"
	salaryerrors "go-hris-admin/internal/salary/errors"
	"go-hris-admin/internal/view"
)

type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (view.SalaryRow, error)
	GetAll(ctx context.Context) []view.SalaryRow
	GetByID(ctx context.Context, id int64) (view.SalaryRow, error)
	Update(ctx context.Context, id int64, req UpdateSalaryRequest) (view.SalaryRow, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	reg *registry.Registry
}

func NewService(reg *registry.Registry) Service {
	return &service{reg: reg}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRequest) (view.SalaryRow, error) {
	sal := domain.Salary{
		EmployeeID:    req.EmployeeID,
		Amount:        req.Amount,
		Currency:      normalizeCurrency(req.Currency),
		EffectiveDate: strings.TrimSpace(req.EffectiveDate),
	}
	if err := s.validate(sal); err != nil {
		return view.SalaryRow{}, err
	}

	created, err := s.reg.Salaries().Create(ctx, sal)
	if err != nil {
		return view.SalaryRow{}, mapRemoteError(err)
	}
	return s.row(created), nil
}

func (s *service) GetAll(ctx context.Context) []view.SalaryRow {
	snap := s.reg.Snapshot()
	return view.SalaryRows(snap.Salaries, snap.Employees)
}

func (s *service) GetByID(ctx context.Context, id int64) (view.SalaryRow, error) {
	sal, ok := s.reg.Salaries().Find(id)
	if !ok {
		return view.SalaryRow{}, salaryerrors.ErrSalaryNotFound
	}
	return s.row(sal), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateSalaryRequest) (view.SalaryRow, error) {
	if id <= 0 {
		return view.SalaryRow{}, salaryerrors.ErrInvalidSalaryID
	}

	sal := domain.Salary{
		ID:            id,
		EmployeeID:    req.EmployeeID,
		Amount:        req.Amount,
		Currency:      normalizeCurrency(req.Currency),
		EffectiveDate: strings.TrimSpace(req.EffectiveDate),
	}
	if err := s.validate(sal); err != nil {
		return view.SalaryRow{}, err
	}

	saved, err := s.reg.Salaries().Update(ctx, sal)
	if err != nil {
		return view.SalaryRow{}, mapRemoteError(err)
	}
	return s.row(saved), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return salaryerrors.ErrInvalidSalaryID
	}
	return mapRemoteError(s.reg.Salaries().Delete(ctx, id))
}

// validate requires a known employee and at most one salary per employee
// and effective date. Rows that already dangle are left alone.
func (s *service) validate(sal domain.Salary) error {
	if _, ok := s.reg.Employees().Find(sal.EmployeeID); !ok {
		return salaryerrors.ErrUnknownEmployee
	}
	if sal.EffectiveDate != "" {
		for _, other := range s.reg.Salaries().Items() {
			if other.ID != sal.ID && other.EmployeeID == sal.EmployeeID && other.EffectiveDate == sal.EffectiveDate {
				return salaryerrors.ErrSalaryEffectiveDateAlreadyExists
			}
		}
	}
	return domain.Validate(sal)
}

func (s *service) row(sal domain.Salary) view.SalaryRow {
	return view.SalaryRows([]domain.Salary{sal}, s.reg.Employees().Items())[0]
}

func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return code
}
