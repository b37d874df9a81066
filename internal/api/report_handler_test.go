package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
	"github.com/clinovate/clinic-scheduling-api/internal/utils"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	mockService *MockReportService
	handler     *ReportHandler
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) AppointmentsPerTherapist(ctx context.Context, p domain.Principal, date time.Time) (*dto.TherapistAppointmentsReport, error) {
	args := m.Called(ctx, p, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TherapistAppointmentsReport), args.Error(1)
}

func (m *MockReportService) PatientsByTherapist(ctx context.Context, p domain.Principal, date time.Time) ([]dto.PatientsByTherapistGroup, error) {
	args := m.Called(ctx, p, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PatientsByTherapistGroup), args.Error(1)
}

func (m *MockReportService) DailyCash(ctx context.Context, p domain.Principal, date time.Time) ([]dto.DailyCashRow, error) {
	args := m.Called(ctx, p, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DailyCashRow), args.Error(1)
}

func (m *MockReportService) AppointmentsBetweenDates(ctx context.Context, p domain.Principal, startDate, endDate time.Time) ([]dto.AppointmentBetweenDatesRow, error) {
	args := m.Called(ctx, p, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AppointmentBetweenDatesRow), args.Error(1)
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockReportService)
	s.handler = NewReportHandler(s.mockService)
}

func TestReportHandler(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

// newAuthedContext builds a test context carrying the claims the auth
// middleware would have stored for a restricted tenant user.
func (s *ReportHandlerTestSuite) newAuthedContext(w *httptest.ResponseRecorder, target string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, target, nil)
	c.Set(string(utils.ClaimsKey), jwt.MapClaims{
		"user_id":   "user1",
		"tenant_id": "tenant1",
		"superuser": false,
	})
	return c
}

func (s *ReportHandlerTestSuite) TestAppointmentsPerTherapist_Success() {
	// Arrange
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	expected := &dto.TherapistAppointmentsReport{
		TherapistsAppointments: []dto.TherapistAppointmentsRow{
			{TherapistID: "t1", FirstName: "Ana", PaternalLastName: "Lopez", AppointmentsCount: 2},
		},
		TotalAppointmentsCount: 2,
	}

	s.mockService.On("AppointmentsPerTherapist", mock.Anything, mock.MatchedBy(func(p domain.Principal) bool {
		return p.UserID == "user1" && p.TenantID != nil && *p.TenantID == "tenant1"
	}), date).Return(expected, nil)

	w := httptest.NewRecorder()
	c := s.newAuthedContext(w, "/reports/appointments-per-therapist?date=2026-03-10")

	// Act
	s.handler.AppointmentsPerTherapist(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.TherapistAppointmentsReport
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(int64(2), response.TotalAppointmentsCount)
	s.Len(response.TherapistsAppointments, 1)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestAppointmentsPerTherapist_MissingDate() {
	w := httptest.NewRecorder()
	c := s.newAuthedContext(w, "/reports/appointments-per-therapist")

	s.handler.AppointmentsPerTherapist(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "AppointmentsPerTherapist", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportHandlerTestSuite) TestAppointmentsPerTherapist_MalformedDate() {
	w := httptest.NewRecorder()
	c := s.newAuthedContext(w, "/reports/appointments-per-therapist?date=10-03-2026")

	s.handler.AppointmentsPerTherapist(c)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ReportHandlerTestSuite) TestAppointmentsPerTherapist_NoClaims() {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/reports/appointments-per-therapist?date=2026-03-10", nil)

	s.handler.AppointmentsPerTherapist(c)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *ReportHandlerTestSuite) TestPatientsByTherapist_AccessDeniedMapsTo403() {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.mockService.On("PatientsByTherapist", mock.Anything, mock.Anything, date).
		Return(nil, scope.ErrAccessDenied)

	w := httptest.NewRecorder()
	c := s.newAuthedContext(w, "/reports/patients-by-therapist?date=2026-03-10")

	s.handler.PatientsByTherapist(c)

	s.Equal(http.StatusForbidden, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestDailyCash_Success() {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	expected := []dto.DailyCashRow{
		{AppointmentID: "a1", PaymentTypeID: "pt1", PaymentTypeName: "Cash"},
	}

	s.mockService.On("DailyCash", mock.Anything, mock.Anything, date).Return(expected, nil)

	w := httptest.NewRecorder()
	c := s.newAuthedContext(w, "/reports/daily-cash?date=2026-03-10")

	s.handler.DailyCash(c)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.DailyCashRow
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 1)
	s.Equal("a1", response[0].AppointmentID)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestAppointmentsBetweenDates_Success() {
	startDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	expected := []dto.AppointmentBetweenDatesRow{
		{
			AppointmentID:         "a1",
			PatientID:             "p1",
			PatientDocumentNumber: "12345678",
			Patient:               "Mora Luis",
			AppointmentDate:       "2026-03-05",
			AppointmentHour:       "09:30",
		},
	}

	s.mockService.On("AppointmentsBetweenDates", mock.Anything, mock.Anything, startDate, endDate).
		Return(expected, nil)

	w := httptest.NewRecorder()
	c := s.newAuthedContext(w, "/reports/appointments-between-dates?start_date=2026-03-01&end_date=2026-03-31")

	s.handler.AppointmentsBetweenDates(c)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.AppointmentBetweenDatesRow
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Require().Len(response, 1)
	s.Equal("Mora Luis", response[0].Patient)
	s.mockService.AssertExpectations(s.T())
}

func (s *ReportHandlerTestSuite) TestAppointmentsBetweenDates_MissingEndDate() {
	w := httptest.NewRecorder()
	c := s.newAuthedContext(w, "/reports/appointments-between-dates?start_date=2026-03-01")

	s.handler.AppointmentsBetweenDates(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "AppointmentsBetweenDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
