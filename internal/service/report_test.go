package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/mocks"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockTherapist   *mocks.TherapistRepository
	mockAppointment *mocks.AppointmentRepository
	service         *ReportService
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTherapist = new(mocks.TherapistRepository)
	s.mockAppointment = new(mocks.AppointmentRepository)

	s.mockRepo.On("Therapist").Return(s.mockTherapist)
	s.mockRepo.On("Appointment").Return(s.mockAppointment)

	s.service = NewReportService(s.mockRepo, scope.NewGuard())
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func strPtr(v string) *string {
	return &v
}

func restricted(tenantID string) domain.Principal {
	return domain.Principal{UserID: "user1", TenantID: strPtr(tenantID)}
}

func (s *ReportServiceTestSuite) TestAppointmentsPerTherapist_TotalMatchesSum() {
	// Arrange
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	counts := []domain.TherapistAppointmentCount{
		{TherapistID: "t1", FirstName: "Ana", PaternalLastName: "Lopez", AppointmentsCount: 2},
		{TherapistID: "t2", FirstName: "Jose", PaternalLastName: "Diaz", AppointmentsCount: 1},
	}

	s.mockTherapist.On("CountAppointmentsOnDate", ctx, scope.Scope{TenantID: "tenant1"}, date).
		Return(counts, nil)

	// Act
	report, err := s.service.AppointmentsPerTherapist(ctx, restricted("tenant1"), date)

	// Assert
	s.NoError(err)
	s.Len(report.TherapistsAppointments, 2)
	s.Equal(int64(2), report.TherapistsAppointments[0].AppointmentsCount)
	s.Equal(int64(1), report.TherapistsAppointments[1].AppointmentsCount)
	s.Equal(int64(3), report.TotalAppointmentsCount)
	s.mockTherapist.AssertExpectations(s.T())
}

func (s *ReportServiceTestSuite) TestAppointmentsPerTherapist_EmptyDay() {
	ctx := context.Background()
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	s.mockTherapist.On("CountAppointmentsOnDate", ctx, scope.Scope{TenantID: "tenant1"}, date).
		Return([]domain.TherapistAppointmentCount{}, nil)

	report, err := s.service.AppointmentsPerTherapist(ctx, restricted("tenant1"), date)

	s.NoError(err)
	s.Empty(report.TherapistsAppointments)
	s.Equal(int64(0), report.TotalAppointmentsCount)
}

func (s *ReportServiceTestSuite) TestAppointmentsPerTherapist_ZeroDateRejected() {
	_, err := s.service.AppointmentsPerTherapist(context.Background(), restricted("tenant1"), time.Time{})

	s.ErrorIs(err, ErrInvalidParameters)
}

func (s *ReportServiceTestSuite) TestAppointmentsPerTherapist_TenantlessPrincipalDenied() {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := s.service.AppointmentsPerTherapist(context.Background(), domain.Principal{UserID: "user1"}, date)

	s.ErrorIs(err, scope.ErrAccessDenied)
}

func (s *ReportServiceTestSuite) TestPatientsByTherapist_GroupsAndCounters() {
	// Arrange
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	therapist := &domain.Therapist{ID: "t1", FirstName: "Ana", PaternalLastName: "Lopez"}
	patientA := &domain.Patient{ID: "p1", FirstName: "Luis", PaternalLastName: "Mora"}
	patientB := &domain.Patient{ID: "p2", FirstName: "Eva", PaternalLastName: "Ruiz"}

	appointments := []domain.Appointment{
		{ID: "a1", Therapist: therapist, Patient: patientA},
		{ID: "a2", Therapist: therapist, Patient: patientA}, // same patient twice that day
		{ID: "a3", Therapist: therapist, Patient: patientB},
	}

	s.mockAppointment.On("ListOnDate", ctx, scope.Scope{TenantID: "tenant1"}, date).
		Return(appointments, nil)

	// Act
	groups, err := s.service.PatientsByTherapist(ctx, restricted("tenant1"), date)

	// Assert
	s.NoError(err)
	s.Require().Len(groups, 1)
	s.Equal("t1", groups[0].TherapistID)
	s.Equal("Lopez Ana", groups[0].Therapist)
	s.Require().Len(groups[0].Patients, 2)
	s.Equal("p1", groups[0].Patients[0].PatientID)
	s.Equal(2, groups[0].Patients[0].Appointments)
	s.Equal("p2", groups[0].Patients[1].PatientID)
	s.Equal(1, groups[0].Patients[1].Appointments)
}

func (s *ReportServiceTestSuite) TestPatientsByTherapist_UnassignedGroupLast() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	therapist := &domain.Therapist{ID: "t1", FirstName: "Ana", PaternalLastName: "Lopez"}
	patientA := &domain.Patient{ID: "p1", FirstName: "Luis", PaternalLastName: "Mora"}
	patientB := &domain.Patient{ID: "p2", FirstName: "Eva", PaternalLastName: "Ruiz"}

	appointments := []domain.Appointment{
		{ID: "a1", Therapist: nil, Patient: patientB},
		{ID: "a2", Therapist: therapist, Patient: patientA},
	}

	s.mockAppointment.On("ListOnDate", ctx, scope.Scope{TenantID: "tenant1"}, date).
		Return(appointments, nil)

	groups, err := s.service.PatientsByTherapist(ctx, restricted("tenant1"), date)

	s.NoError(err)
	s.Require().Len(groups, 2)
	// Therapist groups come first, the unassigned bucket is always last.
	s.Equal("t1", groups[0].TherapistID)
	s.Equal("", groups[1].TherapistID)
	s.Equal(UnassignedTherapistLabel, groups[1].Therapist)
	s.Require().Len(groups[1].Patients, 1)
	s.Equal("p2", groups[1].Patients[0].PatientID)
}

func (s *ReportServiceTestSuite) TestPatientsByTherapist_PatientlessAppointmentsSkipped() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	appointments := []domain.Appointment{
		{ID: "a1", Therapist: &domain.Therapist{ID: "t1"}, Patient: nil},
		{ID: "a2", Therapist: nil, Patient: nil},
	}

	s.mockAppointment.On("ListOnDate", ctx, scope.Scope{TenantID: "tenant1"}, date).
		Return(appointments, nil)

	groups, err := s.service.PatientsByTherapist(ctx, restricted("tenant1"), date)

	s.NoError(err)
	s.Empty(groups)
}

func (s *ReportServiceTestSuite) TestPatientsByTherapist_ZeroDateRejected() {
	_, err := s.service.PatientsByTherapist(context.Background(), restricted("tenant1"), time.Time{})

	s.ErrorIs(err, ErrInvalidParameters)
}

func (s *ReportServiceTestSuite) TestDailyCash_Rows() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	payments := []domain.DailyPayment{
		{AppointmentID: "a2", Payment: decimal.NewFromFloat(150.50), PaymentTypeID: "pt1", PaymentTypeName: "Cash"},
		{AppointmentID: "a1", Payment: decimal.NewFromInt(80), PaymentTypeID: "pt2", PaymentTypeName: "Card"},
	}

	s.mockAppointment.On("ListDailyPayments", ctx, scope.Scope{TenantID: "tenant1"}, date).
		Return(payments, nil)

	rows, err := s.service.DailyCash(ctx, restricted("tenant1"), date)

	s.NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("a2", rows[0].AppointmentID)
	s.True(rows[0].Payment.Equal(decimal.NewFromFloat(150.50)))
	s.Equal("Cash", rows[0].PaymentTypeName)
	s.Equal("a1", rows[1].AppointmentID)
}

func (s *ReportServiceTestSuite) TestDailyCash_ZeroDateRejected() {
	_, err := s.service.DailyCash(context.Background(), restricted("tenant1"), time.Time{})

	s.ErrorIs(err, ErrInvalidParameters)
}

func (s *ReportServiceTestSuite) TestAppointmentsBetweenDates_Rows() {
	ctx := context.Background()
	startDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	patient := &domain.Patient{
		ID:               "p1",
		DocumentNumber:   "12345678",
		FirstName:        "Luis",
		PaternalLastName: "Mora",
		PrimaryPhone:     "555-0101",
	}
	appointments := []domain.Appointment{
		{
			ID:              "a1",
			Patient:         patient,
			AppointmentDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			AppointmentHour: "09:30:00",
		},
		{ID: "a2", Patient: nil},
	}

	s.mockAppointment.On("ListBetweenDates", ctx, scope.Scope{TenantID: "tenant1"}, startDate, endDate).
		Return(appointments, nil)

	rows, err := s.service.AppointmentsBetweenDates(ctx, restricted("tenant1"), startDate, endDate)

	s.NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("a1", rows[0].AppointmentID)
	s.Equal("12345678", rows[0].PatientDocumentNumber)
	s.Equal("Mora Luis", rows[0].Patient)
	s.Equal("555-0101", rows[0].PatientPrimaryPhone)
	s.Equal("2026-03-05", rows[0].AppointmentDate)
	s.Equal("09:30", rows[0].AppointmentHour)
}

func (s *ReportServiceTestSuite) TestAppointmentsBetweenDates_MissingBoundRejected() {
	startDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.AppointmentsBetweenDates(context.Background(), restricted("tenant1"), startDate, time.Time{})

	s.ErrorIs(err, ErrInvalidParameters)
}
