package company

import (
	"context"
	"errors"
	"strings"

	companyerrors "go-hris-admin/internal/company/errors"
	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/registry"
	restclienterrors "go-hris-admin/internal/restclient/errors"
	"go-hris-admin/internal/shared/apperror"
	"go-hris-admin/internal/view"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (view.CompanyRow, error)
	GetAll(ctx context.Context) []view.CompanyRow
	GetByID(ctx context.Context, id int64) (view.CompanyRow, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) (view.CompanyRow, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	reg    *registry.Registry
	logger *zap.Logger
}

func NewService(reg *registry.Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{reg: reg, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (view.CompanyRow, error) {
	comp := domain.Company{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
	}
	if err := s.validate(comp); err != nil {
		return view.CompanyRow{}, err
	}

	created, err := s.reg.Companies().Create(ctx, comp)
	if err != nil {
		s.logger.Error("create company failed", zap.String("name", comp.Name), zap.Error(err))
		return view.CompanyRow{}, mapRemoteError(err)
	}
	return view.CompanyRows([]domain.Company{created})[0], nil
}

func (s *service) GetAll(ctx context.Context) []view.CompanyRow {
	return view.CompanyRows(s.reg.Companies().Items())
}

func (s *service) GetByID(ctx context.Context, id int64) (view.CompanyRow, error) {
	comp, ok := s.reg.Companies().Find(id)
	if !ok {
		return view.CompanyRow{}, companyerrors.ErrCompanyNotFound
	}
	return view.CompanyRows([]domain.Company{comp})[0], nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateCompanyRequest) (view.CompanyRow, error) {
	if id <= 0 {
		return view.CompanyRow{}, companyerrors.ErrInvalidCompanyID
	}

	comp := domain.Company{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
	}
	if err := s.validate(comp); err != nil {
		return view.CompanyRow{}, err
	}

	saved, err := s.reg.Companies().Update(ctx, comp)
	if err != nil {
		s.logger.Error("update company failed", zap.Int64("company_id", id), zap.Error(err))
		return view.CompanyRow{}, mapRemoteError(err)
	}
	return view.CompanyRows([]domain.Company{saved})[0], nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return companyerrors.ErrInvalidCompanyID
	}
	if err := s.reg.Companies().Delete(ctx, id); err != nil {
		s.logger.Error("delete company failed", zap.Int64("company_id", id), zap.Error(err))
		return mapRemoteError(err)
	}
	return nil
}

func (s *service) validate(comp domain.Company) error {
	if comp.Name == "" {
		return apperror.RequiredField("Name")
	}
	for _, other := range s.reg.Companies().Items() {
		if other.ID != comp.ID && strings.EqualFold(strings.TrimSpace(other.Name), comp.Name) {
			return companyerrors.ErrCompanyAlreadyExists
		}
	}
	return domain.Validate(comp)
}

func mapRemoteError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return companyerrors.ErrCompanyNotFound.WithCause(err)
	case errors.Is(err, restclienterrors.ErrConflict):
		return companyerrors.ErrCompanyAlreadyExists.WithCause(err)
	}
	return err
}
