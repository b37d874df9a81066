package service

import (
	"context"
	"slices"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/repository"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type DocumentTypeService struct {
	repo  repository.Repository
	guard *scope.Guard
}

func NewDocumentTypeService(repo repository.Repository, guard *scope.Guard) *DocumentTypeService {
	return &DocumentTypeService{
		repo:  repo,
		guard: guard,
	}
}

func (s *DocumentTypeService) Create(ctx context.Context, p domain.Principal, req dto.CreateDocumentTypeRequest) (*dto.LookupResponse, error) {
	documentType := &domain.DocumentType{
		TenantID: req.TenantID,
		Name:     req.Name,
	}
	if err := s.guard.ApplyOnSave(p, documentType); err != nil {
		return nil, err
	}
	if err := s.repo.DocumentType().Create(ctx, documentType); err != nil {
		return nil, err
	}
	return dto.FromDocumentType(documentType), nil
}

func (s *DocumentTypeService) GetByID(ctx context.Context, p domain.Principal, id string) (*dto.LookupResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	documentType, err := s.repo.DocumentType().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return dto.FromDocumentType(documentType), nil
}

func (s *DocumentTypeService) List(ctx context.Context, p domain.Principal) ([]dto.LookupResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	documentTypes, err := s.repo.DocumentType().List(ctx, sc)
	if err != nil {
		return nil, err
	}
	return dto.FromDocumentTypes(documentTypes), nil
}

func (s *DocumentTypeService) Update(ctx context.Context, p domain.Principal, id string, req dto.CreateDocumentTypeRequest) (*dto.LookupResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	documentType, err := s.repo.DocumentType().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	documentType.Name = req.Name

	hidden := s.guard.HiddenFields(p)
	if req.TenantID != nil && !slices.Contains(hidden, scope.TenantFieldName) {
		documentType.TenantID = req.TenantID
	}

	if err := s.guard.ApplyOnSave(p, documentType); err != nil {
		return nil, err
	}
	if err := s.repo.DocumentType().Update(ctx, documentType); err != nil {
		return nil, err
	}
	return dto.FromDocumentType(documentType), nil
}

func (s *DocumentTypeService) Delete(ctx context.Context, p domain.Principal, id string) error {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return err
	}
	return s.repo.DocumentType().Delete(ctx, sc, id)
}

type PaymentTypeService struct {
	repo  repository.Repository
	guard *scope.Guard
}

func NewPaymentTypeService(repo repository.Repository, guard *scope.Guard) *PaymentTypeService {
	return &PaymentTypeService{
		repo:  repo,
		guard: guard,
	}
}

func (s *PaymentTypeService) Create(ctx context.Context, p domain.Principal, req dto.CreatePaymentTypeRequest) (*dto.LookupResponse, error) {
	paymentType := &domain.PaymentType{
		TenantID: req.TenantID,
		Name:     req.Name,
	}
	if err := s.guard.ApplyOnSave(p, paymentType); err != nil {
		return nil, err
	}
	if err := s.repo.PaymentType().Create(ctx, paymentType); err != nil {
		return nil, err
	}
	return dto.FromPaymentType(paymentType), nil
}

func (s *PaymentTypeService) GetByID(ctx context.Context, p domain.Principal, id string) (*dto.LookupResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	paymentType, err := s.repo.PaymentType().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return dto.FromPaymentType(paymentType), nil
}

func (s *PaymentTypeService) List(ctx context.Context, p domain.Principal) ([]dto.LookupResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	paymentTypes, err := s.repo.PaymentType().List(ctx, sc)
	if err != nil {
		return nil, err
	}
	return dto.FromPaymentTypes(paymentTypes), nil
}

func (s *PaymentTypeService) Update(ctx context.Context, p domain.Principal, id string, req dto.CreatePaymentTypeRequest) (*dto.LookupResponse, error) {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}
	paymentType, err := s.repo.PaymentType().GetByID(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	paymentType.Name = req.Name

	hidden := s.guard.HiddenFields(p)
	if req.TenantID != nil && !slices.Contains(hidden, scope.TenantFieldName) {
		paymentType.TenantID = req.TenantID
	}

	if err := s.guard.ApplyOnSave(p, paymentType); err != nil {
		return nil, err
	}
	if err := s.repo.PaymentType().Update(ctx, paymentType); err != nil {
		return nil, err
	}
	return dto.FromPaymentType(paymentType), nil
}

func (s *PaymentTypeService) Delete(ctx context.Context, p domain.Principal, id string) error {
	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return err
	}
	return s.repo.PaymentType().Delete(ctx, sc, id)
}
