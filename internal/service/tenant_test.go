package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/mocks"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)

	s.service = NewTenantService(s.mockRepo)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func superuser() domain.Principal {
	return domain.Principal{UserID: "admin1", Superuser: true}
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		Name:   "Clinic North",
		Domain: "north.example.com",
	}

	expectedTenant := &domain.Tenant{
		ID:        "tenant1",
		Name:      req.Name,
		Domain:    req.Domain,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).Return(expectedTenant, nil)

	// Act
	resp, err := s.service.Create(ctx, superuser(), req)

	// Assert
	s.NoError(err)
	s.Equal(expectedTenant.ID, resp.ID)
	s.Equal(expectedTenant.Name, resp.Name)
	s.Equal(expectedTenant.Domain, resp.Domain)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_NonSuperuserDenied() {
	req := dto.CreateTenantRequest{Name: "Clinic North", Domain: "north.example.com"}

	_, err := s.service.Create(context.Background(), restricted("tenant1"), req)

	s.ErrorIs(err, scope.ErrAccessDenied)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestGetByID_OwnTenantAllowed() {
	ctx := context.Background()
	expectedTenant := &domain.Tenant{ID: "tenant1", Name: "Clinic North"}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(expectedTenant, nil)

	tenant, err := s.service.GetByID(ctx, restricted("tenant1"), "tenant1")

	s.NoError(err)
	s.Equal("tenant1", tenant.ID)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestGetByID_ForeignTenantDenied() {
	_, err := s.service.GetByID(context.Background(), restricted("tenant1"), "tenant2")

	s.ErrorIs(err, scope.ErrAccessDenied)
	s.mockTenant.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestUpdate_NonSuperuserDenied() {
	req := dto.CreateTenantRequest{Name: "Renamed", Domain: "renamed.example.com"}

	_, err := s.service.Update(context.Background(), restricted("tenant1"), "tenant1", req)

	s.ErrorIs(err, scope.ErrAccessDenied)
}

func (s *TenantServiceTestSuite) TestDelete_NonSuperuserDenied() {
	err := s.service.Delete(context.Background(), restricted("tenant1"), "tenant1")

	s.ErrorIs(err, scope.ErrAccessDenied)
	s.mockTenant.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestList_SuperuserSeesAll() {
	ctx := context.Background()
	expectedTenants := []domain.Tenant{
		{ID: "tenant1", Name: "Clinic North"},
		{ID: "tenant2", Name: "Clinic South"},
	}

	s.mockTenant.On("List", ctx).Return(expectedTenants, nil)

	tenants, err := s.service.List(ctx, superuser())

	s.NoError(err)
	s.Len(tenants, 2)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestList_RestrictedSeesOwnTenantOnly() {
	ctx := context.Background()
	expectedTenant := &domain.Tenant{ID: "tenant1", Name: "Clinic North"}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(expectedTenant, nil)

	tenants, err := s.service.List(ctx, restricted("tenant1"))

	s.NoError(err)
	s.Require().Len(tenants, 1)
	s.Equal("tenant1", tenants[0].ID)
	s.mockTenant.AssertNotCalled(s.T(), "List", mock.Anything)
}
