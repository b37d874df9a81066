package service

import (
	"context"
	"slices"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/repository"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type TherapistService struct {
	repo  repository.Repository
	guard *scope.Guard
}

func NewTherapistService(repo repository.Repository, guard *scope.Guard) *TherapistService {
	return &TherapistService{
		repo:  repo,
		guard: guard,
	}
}

func (s *TherapistService) Create(ctx context.Context, p domain.Principal, req dto.CreateTherapistRequest) (*dto.TherapistResponse, error) {
	therapist := req.ToTherapist()
	if err := s.guard.ApplyOnSave(p, therapist); err != nil {
		return nil, err
	}
	if err := s.repo.Therapist().Create(ctx, therapist); err != nil {
		return nil, err
	}
	return dto.FromTherapist(therapist), nil
}

func (s *TherapistService) GetByID(ctx context.Context, p domain.Principal, id string) (*dto.TherapistResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	therapist, err := s.repo.Therapist().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return dto.FromTherapist(therapist), nil
}

func (s *TherapistService) List(ctx context.Context, p domain.Principal) ([]dto.TherapistResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	therapists, err := s.repo.Therapist().List(ctx, sc)
	if err != nil {
		return nil, err
	}
	return dto.FromTherapists(therapists), nil
}

func (s *TherapistService) Update(ctx context.Context, p domain.Principal, id string, req dto.CreateTherapistRequest) (*dto.TherapistResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	therapist, err := s.repo.Therapist().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	therapist.DocumentTypeID = req.DocumentTypeID
	therapist.DocumentNumber = req.DocumentNumber
	therapist.FirstName = req.FirstName
	therapist.PaternalLastName = req.PaternalLastName
	therapist.MaternalLastName = req.MaternalLastName
	therapist.Gender = domain.Sex(req.Gender)
	therapist.Phone = req.Phone
	therapist.Email = req.Email

	hidden := s.guard.HiddenFields(p)
	if req.TenantID != nil && !slices.Contains(hidden, scope.TenantFieldName) {
		therapist.TenantID = req.TenantID
	}

	if err := s.guard.ApplyOnSave(p, therapist); err != nil {
		return nil, err
	}
	if err := s.repo.Therapist().Update(ctx, therapist); err != nil {
		return nil, err
	}
	return dto.FromTherapist(therapist), nil
}

func (s *TherapistService) Delete(ctx context.Context, p domain.Principal, id string) error {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return err
	}
	return s.repo.Therapist().Delete(ctx, sc, id)
}
