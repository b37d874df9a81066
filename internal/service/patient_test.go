package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/mocks"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type PatientServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockPatient *mocks.PatientRepository
	service     *PatientService
}

func (s *PatientServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockPatient = new(mocks.PatientRepository)

	s.mockRepo.On("Patient").Return(s.mockPatient)

	s.service = NewPatientService(s.mockRepo, scope.NewGuard())
}

func TestPatientService(t *testing.T) {
	suite.Run(t, new(PatientServiceTestSuite))
}

func createPatientRequest() dto.CreatePatientRequest {
	return dto.CreatePatientRequest{
		DocumentTypeID:   "dt1",
		DocumentNumber:   "12345678",
		FirstName:        "Luis",
		PaternalLastName: "Mora",
		Sex:              "M",
	}
}

func (s *PatientServiceTestSuite) TestCreate_RestrictedPrincipalStampsOwnTenant() {
	// Arrange
	ctx := context.Background()
	req := createPatientRequest()
	req.TenantID = strPtr("tenant2") // caller-supplied tenant must be ignored

	s.mockPatient.On("Create", ctx, mock.MatchedBy(func(p *domain.Patient) bool {
		return p.TenantID != nil && *p.TenantID == "tenant1"
	})).Return(nil)

	// Act
	resp, err := s.service.Create(ctx, restricted("tenant1"), req)

	// Assert
	s.NoError(err)
	s.Require().NotNil(resp.TenantID)
	s.Equal("tenant1", *resp.TenantID)
	s.mockPatient.AssertExpectations(s.T())
}

func (s *PatientServiceTestSuite) TestCreate_SuperuserMustSupplyTenant() {
	req := createPatientRequest()

	_, err := s.service.Create(context.Background(), superuser(), req)

	s.ErrorIs(err, scope.ErrTenantRequired)
	s.mockPatient.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *PatientServiceTestSuite) TestCreate_SuperuserKeepsExplicitTenant() {
	ctx := context.Background()
	req := createPatientRequest()
	req.TenantID = strPtr("tenant2")

	s.mockPatient.On("Create", ctx, mock.MatchedBy(func(p *domain.Patient) bool {
		return p.TenantID != nil && *p.TenantID == "tenant2"
	})).Return(nil)

	resp, err := s.service.Create(ctx, superuser(), req)

	s.NoError(err)
	s.Equal("tenant2", *resp.TenantID)
	s.mockPatient.AssertExpectations(s.T())
}

func (s *PatientServiceTestSuite) TestGetByID_ScopedToTenant() {
	ctx := context.Background()
	patient := &domain.Patient{ID: "p1", TenantID: strPtr("tenant1"), FirstName: "Luis", PaternalLastName: "Mora"}

	s.mockPatient.On("GetByID", ctx, scope.Scope{TenantID: "tenant1"}, "p1").Return(patient, nil)

	resp, err := s.service.GetByID(ctx, restricted("tenant1"), "p1")

	s.NoError(err)
	s.Equal("p1", resp.ID)
	s.Equal("Mora Luis", resp.FullName)
	s.mockPatient.AssertExpectations(s.T())
}

func (s *PatientServiceTestSuite) TestList_DefaultsPagination() {
	ctx := context.Background()

	s.mockPatient.On("List", ctx, scope.Scope{TenantID: "tenant1"}, mock.MatchedBy(func(f domain.PatientFilter) bool {
		return f.Limit == 20 && f.Offset == 0
	})).Return([]domain.Patient{}, nil)

	_, err := s.service.List(ctx, restricted("tenant1"), domain.PatientFilter{})

	s.NoError(err)
	s.mockPatient.AssertExpectations(s.T())
}

func (s *PatientServiceTestSuite) TestUpdate_RestrictedCannotMovePatientAcrossTenants() {
	ctx := context.Background()
	existing := &domain.Patient{ID: "p1", TenantID: strPtr("tenant1"), FirstName: "Luis", PaternalLastName: "Mora"}

	req := createPatientRequest()
	req.TenantID = strPtr("tenant2") // hidden field for restricted principals

	s.mockPatient.On("GetByID", ctx, scope.Scope{TenantID: "tenant1"}, "p1").Return(existing, nil)
	s.mockPatient.On("Update", ctx, mock.MatchedBy(func(p *domain.Patient) bool {
		return p.TenantID != nil && *p.TenantID == "tenant1"
	})).Return(nil)

	resp, err := s.service.Update(ctx, restricted("tenant1"), "p1", req)

	s.NoError(err)
	s.Equal("tenant1", *resp.TenantID)
	s.mockPatient.AssertExpectations(s.T())
}

func (s *PatientServiceTestSuite) TestUpdate_SuperuserMayMovePatientAcrossTenants() {
	ctx := context.Background()
	existing := &domain.Patient{ID: "p1", TenantID: strPtr("tenant1"), FirstName: "Luis", PaternalLastName: "Mora"}

	req := createPatientRequest()
	req.TenantID = strPtr("tenant2")

	s.mockPatient.On("GetByID", ctx, scope.Scope{All: true}, "p1").Return(existing, nil)
	s.mockPatient.On("Update", ctx, mock.MatchedBy(func(p *domain.Patient) bool {
		return p.TenantID != nil && *p.TenantID == "tenant2"
	})).Return(nil)

	resp, err := s.service.Update(ctx, superuser(), "p1", req)

	s.NoError(err)
	s.Equal("tenant2", *resp.TenantID)
	s.mockPatient.AssertExpectations(s.T())
}

func (s *PatientServiceTestSuite) TestDelete_ScopedToTenant() {
	ctx := context.Background()

	s.mockPatient.On("Delete", ctx, scope.Scope{TenantID: "tenant1"}, "p1").Return(nil)

	err := s.service.Delete(ctx, restricted("tenant1"), "p1")

	s.NoError(err)
	s.mockPatient.AssertExpectations(s.T())
}
