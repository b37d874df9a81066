package service

import (
	"context"
	"slices"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/repository"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type AppointmentService struct {
	repo  repository.Repository
	guard *scope.Guard
}

func NewAppointmentService(repo repository.Repository, guard *scope.Guard) *AppointmentService {
	return &AppointmentService{
		repo:  repo,
		guard: guard,
	}
}

func (s *AppointmentService) Create(ctx context.Context, p domain.Principal, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := req.ToAppointment()
	if err != nil {
		return nil, err
	}
	if err := s.guard.ApplyOnSave(p, appointment); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, p, appointment); err != nil {
		return nil, err
	}
	if err := s.repo.Appointment().Create(ctx, appointment); err != nil {
		return nil, err
	}
	return dto.FromAppointment(appointment), nil
}

func (s *AppointmentService) GetByID(ctx context.Context, p domain.Principal, id string) (*dto.AppointmentResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	appointment, err := s.repo.Appointment().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointment(appointment), nil
}

func (s *AppointmentService) List(ctx context.Context, p domain.Principal, filter domain.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	appointments, err := s.repo.Appointment().List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromAppointments(appointments), nil
}

func (s *AppointmentService) Update(ctx context.Context, p domain.Principal, id string, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.Appointment().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	updated, err := req.ToAppointment()
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.TenantID = existing.TenantID
	updated.CreatedAt = existing.CreatedAt

	hidden := s.guard.HiddenFields(p)
	if req.TenantID != nil && !slices.Contains(hidden, scope.TenantFieldName) {
		updated.TenantID = req.TenantID
	}

	if err := s.guard.ApplyOnSave(p, updated); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, p, updated); err != nil {
		return nil, err
	}
	if err := s.repo.Appointment().Update(ctx, updated); err != nil {
		return nil, err
	}
	return dto.FromAppointment(updated), nil
}

func (s *AppointmentService) Delete(ctx context.Context, p domain.Principal, id string) error {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return err
	}
	return s.repo.Appointment().Delete(ctx, sc, id)
}

// ReferenceData lists the rows an appointment form may reference, filtered
// to what the caller's tenant is allowed to see. This is the one place that
// shapes foreign-key choices; entity forms never filter on their own.
func (s *AppointmentService) ReferenceData(ctx context.Context, p domain.Principal) (*dto.AppointmentReferenceData, error) {
	all := scope.Scope{All: true}

	patients, err := s.repo.Patient().List(ctx, all, domain.PatientFilter{})
	if err != nil {
		return nil, err
	}
	if patients, err = scope.ForeignKeyChoices(p, patients); err != nil {
		return nil, err
	}

	therapists, err := s.repo.Therapist().List(ctx, all)
	if err != nil {
		return nil, err
	}
	if therapists, err = scope.ForeignKeyChoices(p, therapists); err != nil {
		return nil, err
	}

	documentTypes, err := s.repo.DocumentType().List(ctx, all)
	if err != nil {
		return nil, err
	}
	if documentTypes, err = scope.ForeignKeyChoices(p, documentTypes); err != nil {
		return nil, err
	}

	paymentTypes, err := s.repo.PaymentType().List(ctx, all)
	if err != nil {
		return nil, err
	}
	if paymentTypes, err = scope.ForeignKeyChoices(p, paymentTypes); err != nil {
		return nil, err
	}

	data := &dto.AppointmentReferenceData{
		Patients:      make([]dto.ReferenceOption, len(patients)),
		Therapists:    make([]dto.ReferenceOption, len(therapists)),
		DocumentTypes: make([]dto.ReferenceOption, len(documentTypes)),
		PaymentTypes:  make([]dto.ReferenceOption, len(paymentTypes)),
	}
	for i, patient := range patients {
		data.Patients[i] = dto.ReferenceOption{ID: patient.ID, Label: patient.FullName()}
	}
	for i, therapist := range therapists {
		data.Therapists[i] = dto.ReferenceOption{ID: therapist.ID, Label: therapist.FullName()}
	}
	for i, documentType := range documentTypes {
		data.DocumentTypes[i] = dto.ReferenceOption{ID: documentType.ID, Label: documentType.Name}
	}
	for i, paymentType := range paymentTypes {
		data.PaymentTypes[i] = dto.ReferenceOption{ID: paymentType.ID, Label: paymentType.Name}
	}

	return data, nil
}

// validateReferences resolves the appointment's foreign keys through the
// caller's read scope, so a reference to another tenant's row surfaces as
// record-not-found rather than leaking across tenants.
func (s *AppointmentService) validateReferences(ctx context.Context, p domain.Principal, appointment *domain.Appointment) error {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return err
	}
	if appointment.PatientID != nil {
		if _, err := s.repo.Patient().GetByID(ctx, sc, *appointment.PatientID); err != nil {
			return err
		}
	}
	if appointment.TherapistID != nil {
		if _, err := s.repo.Therapist().GetByID(ctx, sc, *appointment.TherapistID); err != nil {
			return err
		}
	}
	if appointment.PaymentTypeID != nil {
		if _, err := s.repo.PaymentType().GetByID(ctx, sc, *appointment.PaymentTypeID); err != nil {
			return err
		}
	}
	return nil
}
