package repository

import (
	"context"
	"time"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name PatientRepository --output ../mocks
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
	List(ctx context.Context, sc scope.Scope, filter domain.PatientFilter) ([]domain.Patient, error)
}

//go:generate mockery --name TherapistRepository --output ../mocks
type TherapistRepository interface {
	Create(ctx context.Context, therapist *domain.Therapist) error
	GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.Therapist, error)
	Update(ctx context.Context, therapist *domain.Therapist) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
	List(ctx context.Context, sc scope.Scope) ([]domain.Therapist, error)
	CountAppointmentsOnDate(ctx context.Context, sc scope.Scope, date time.Time) ([]domain.TherapistAppointmentCount, error)
}

//go:generate mockery --name AppointmentRepository --output ../mocks
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
	List(ctx context.Context, sc scope.Scope, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	ListOnDate(ctx context.Context, sc scope.Scope, date time.Time) ([]domain.Appointment, error)
	ListDailyPayments(ctx context.Context, sc scope.Scope, date time.Time) ([]domain.DailyPayment, error)
	ListBetweenDates(ctx context.Context, sc scope.Scope, startDate, endDate time.Time) ([]domain.Appointment, error)
}

//go:generate mockery --name DocumentTypeRepository --output ../mocks
type DocumentTypeRepository interface {
	Create(ctx context.Context, documentType *domain.DocumentType) error
	GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.DocumentType, error)
	Update(ctx context.Context, documentType *domain.DocumentType) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
	List(ctx context.Context, sc scope.Scope) ([]domain.DocumentType, error)
}

//go:generate mockery --name PaymentTypeRepository --output ../mocks
type PaymentTypeRepository interface {
	Create(ctx context.Context, paymentType *domain.PaymentType) error
	GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.PaymentType, error)
	Update(ctx context.Context, paymentType *domain.PaymentType) error
	Delete(ctx context.Context, sc scope.Scope, id string) error
	List(ctx context.Context, sc scope.Scope) ([]domain.PaymentType, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	Patient() PatientRepository
	Therapist() TherapistRepository
	Appointment() AppointmentRepository
	DocumentType() DocumentTypeRepository
	PaymentType() PaymentTypeRepository
}
