package postgres

import (
	"gorm.io/gorm"

	"github.com/clinovate/clinic-scheduling-api/internal/config"
	"github.com/clinovate/clinic-scheduling-api/internal/repository"
)

type postgresRepository struct {
	writerDB        *gorm.DB
	readerDB        *gorm.DB
	tenantRepo      repository.TenantRepository
	patientRepo     repository.PatientRepository
	therapistRepo   repository.TherapistRepository
	appointmentRepo repository.AppointmentRepository
	documentRepo    repository.DocumentTypeRepository
	paymentRepo     repository.PaymentTypeRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB:        dbConnections.Writer,
		readerDB:        dbConnections.Reader,
		tenantRepo:      NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		patientRepo:     NewPatientRepository(dbConnections.Writer, dbConnections.Reader),
		therapistRepo:   NewTherapistRepository(dbConnections.Writer, dbConnections.Reader),
		appointmentRepo: NewAppointmentRepository(dbConnections.Writer, dbConnections.Reader),
		documentRepo:    NewDocumentTypeRepository(dbConnections.Writer, dbConnections.Reader),
		paymentRepo:     NewPaymentTypeRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Patient() repository.PatientRepository {
	return r.patientRepo
}

func (r *postgresRepository) Therapist() repository.TherapistRepository {
	return r.therapistRepo
}

func (r *postgresRepository) Appointment() repository.AppointmentRepository {
	return r.appointmentRepo
}

func (r *postgresRepository) DocumentType() repository.DocumentTypeRepository {
	return r.documentRepo
}

func (r *postgresRepository) PaymentType() repository.PaymentTypeRepository {
	return r.paymentRepo
}
