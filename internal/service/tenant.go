package service

import (
	"context"
	"time"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/repository"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

// TenantService administers the tenants themselves. Tenants are not
// tenant-scoped rows, so the guard does not apply; only superusers may
// touch them.
type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, p domain.Principal, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if !p.Superuser {
		return nil, scope.ErrAccessDenied
	}

	tenant := &domain.Tenant{
		Name:   req.Name,
		Domain: req.Domain,
	}

	createdTenant, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return dto.FromTenant(createdTenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, p domain.Principal, id string) (*dto.TenantResponse, error) {
	// A restricted principal may inspect its own tenant record and nothing else.
	if !p.Superuser && (!p.HasTenant() || *p.TenantID != id) {
		return nil, scope.ErrAccessDenied
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) Update(ctx context.Context, p domain.Principal, id string, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if !p.Superuser {
		return nil, scope.ErrAccessDenied
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant.Name = req.Name
	tenant.Domain = req.Domain
	tenant.UpdatedAt = time.Now()

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if !p.Superuser {
		return scope.ErrAccessDenied
	}
	return s.repo.Tenant().Delete(ctx, id)
}

func (s *TenantService) List(ctx context.Context, p domain.Principal) ([]dto.TenantResponse, error) {
	if p.Superuser {
		tenants, err := s.repo.Tenant().List(ctx)
		if err != nil {
			return nil, err
		}
		return dto.FromTenants(tenants), nil
	}

	if !p.HasTenant() {
		return nil, scope.ErrAccessDenied
	}
	tenant, err := s.repo.Tenant().GetByID(ctx, *p.TenantID)
	if err != nil {
		return nil, err
	}
	return []dto.TenantResponse{*dto.FromTenant(tenant)}, nil
}
