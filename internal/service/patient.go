package service

import (
	"context"
	"slices"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/repository"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type PatientService struct {
	repo  repository.Repository
	guard *scope.Guard
}

func NewPatientService(repo repository.Repository, guard *scope.Guard) *PatientService {
	return &PatientService{
		repo:  repo,
		guard: guard,
	}
}

func (s *PatientService) Create(ctx context.Context, p domain.Principal, req dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := req.ToPatient()
	if err := s.guard.ApplyOnSave(p, patient); err != nil {
		return nil, err
	}
	if err := s.repo.Patient().Create(ctx, patient); err != nil {
		return nil, err
	}
	return dto.FromPatient(patient), nil
}

func (s *PatientService) GetByID(ctx context.Context, p domain.Principal, id string) (*dto.PatientResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	patient, err := s.repo.Patient().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return dto.FromPatient(patient), nil
}

func (s *PatientService) List(ctx context.Context, p domain.Principal, filter domain.PatientFilter) ([]dto.PatientResponse, error) {
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
	patients, err := s.repo.Patient().List(ctx, sc, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromPatients(patients), nil
}

func (s *PatientService) Update(ctx context.Context, p domain.Principal, id string, req dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	patient, err := s.repo.Patient().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	patient.DocumentTypeID = req.DocumentTypeID
	patient.DocumentNumber = req.DocumentNumber
	patient.FirstName = req.FirstName
	patient.PaternalLastName = req.PaternalLastName
	patient.MaternalLastName = req.MaternalLastName
	patient.Sex = domain.Sex(req.Sex)
	patient.PrimaryPhone = req.PrimaryPhone

	hidden := s.guard.HiddenFields(p)
	if req.TenantID != nil && !slices.Contains(hidden, scope.TenantFieldName) {
		patient.TenantID = req.TenantID
	}

	if err := s.guard.ApplyOnSave(p, patient); err != nil {
		return nil, err
	}
	if err := s.repo.Patient().Update(ctx, patient); err != nil {
		return nil, err
	}
	return dto.FromPatient(patient), nil
}

func (s *PatientService) Delete(ctx context.Context, p domain.Principal, id string) error {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return err
	}
	return s.repo.Patient().Delete(ctx, sc, id)
}
