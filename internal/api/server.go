package api

import (
	"github.com/gin-gonic/gin"

	"github.com/clinovate/clinic-scheduling-api/internal/middleware"
	"github.com/clinovate/clinic-scheduling-api/internal/service"
)

type Server struct {
	tenant       *TenantHandler
	patient      *PatientHandler
	therapist    *TherapistHandler
	appointment  *AppointmentHandler
	documentType *DocumentTypeHandler
	paymentType  *PaymentTypeHandler
	report       *ReportHandler
	auth         *middleware.AuthMiddleware
	rateLimit    *middleware.RateLimitMiddleware
	globalLimit  int
}

func NewServer(
	tenantService *service.TenantService,
	patientService *service.PatientService,
	therapistService *service.TherapistService,
	appointmentService *service.AppointmentService,
	documentTypeService *service.DocumentTypeService,
	paymentTypeService *service.PaymentTypeService,
	reportService *service.ReportService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	globalLimit int,
) *Server {
	return &Server{
		tenant:       NewTenantHandler(tenantService),
		patient:      NewPatientHandler(patientService),
		therapist:    NewTherapistHandler(therapistService),
		appointment:  NewAppointmentHandler(appointmentService),
		documentType: NewDocumentTypeHandler(documentTypeService),
		paymentType:  NewPaymentTypeHandler(paymentTypeService),
		report:       NewReportHandler(reportService),
		auth:         auth,
		rateLimit:    rateLimit,
		globalLimit:  globalLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.rateLimit.GlobalRateLimit(s.globalLimit))
	api.Use(s.auth.JWTAuth())
	api.Use(s.rateLimit.TenantRateLimit())

	{
		tenants := api.Group("/tenants", s.auth.RequireSuperuser())
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.PUT("/:id", s.tenant.UpdateTenant)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
		}

		patients := api.Group("/patients")
		{
			patients.POST("", s.patient.CreatePatient)
			patients.GET("", s.patient.ListPatients)
			patients.GET("/:id", s.patient.GetPatient)
			patients.PUT("/:id", s.patient.UpdatePatient)
			patients.DELETE("/:id", s.patient.DeletePatient)
		}

		therapists := api.Group("/therapists")
		{
			therapists.POST("", s.therapist.CreateTherapist)
			therapists.GET("", s.therapist.ListTherapists)
			therapists.GET("/:id", s.therapist.GetTherapist)
			therapists.PUT("/:id", s.therapist.UpdateTherapist)
			therapists.DELETE("/:id", s.therapist.DeleteTherapist)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", s.appointment.CreateAppointment)
			appointments.GET("", s.appointment.ListAppointments)
			appointments.GET("/reference-data", s.appointment.GetReferenceData)
			appointments.GET("/:id", s.appointment.GetAppointment)
			appointments.PUT("/:id", s.appointment.UpdateAppointment)
			appointments.DELETE("/:id", s.appointment.DeleteAppointment)
		}

		documentTypes := api.Group("/document-types")
		{
			documentTypes.POST("", s.documentType.CreateDocumentType)
			documentTypes.GET("", s.documentType.ListDocumentTypes)
			documentTypes.GET("/:id", s.documentType.GetDocumentType)
			documentTypes.PUT("/:id", s.documentType.UpdateDocumentType)
			documentTypes.DELETE("/:id", s.documentType.DeleteDocumentType)
		}

		paymentTypes := api.Group("/payment-types")
		{
			paymentTypes.POST("", s.paymentType.CreatePaymentType)
			paymentTypes.GET("", s.paymentType.ListPaymentTypes)
			paymentTypes.GET("/:id", s.paymentType.GetPaymentType)
			paymentTypes.PUT("/:id", s.paymentType.UpdatePaymentType)
			paymentTypes.DELETE("/:id", s.paymentType.DeletePaymentType)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/appointments-per-therapist", s.report.AppointmentsPerTherapist)
			reports.GET("/patients-by-therapist", s.report.PatientsByTherapist)
			reports.GET("/daily-cash", s.report.DailyCash)
			reports.GET("/appointments-between-dates", s.report.AppointmentsBetweenDates)
		}
	}
}
