package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

// Lookup tables keep their NULL-tenant rows visible to every tenant, so
// reads here go through applySharedScope instead of applyScope.

type DocumentTypeRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewDocumentTypeRepository(writerDB, readerDB *gorm.DB) *DocumentTypeRepository {
	return &DocumentTypeRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *DocumentTypeRepository) Create(ctx context.Context, documentType *domain.DocumentType) error {
	if documentType.ID == "" {
		documentType.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(documentType).Error
}

func (r *DocumentTypeRepository) GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.DocumentType, error) {
	var documentType domain.DocumentType
	db := applySharedScope(r.readerDB.WithContext(ctx), sc)
	if err := db.First(&documentType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &documentType, nil
}

func (r *DocumentTypeRepository) Update(ctx context.Context, documentType *domain.DocumentType) error {
	return r.writerDB.WithContext(ctx).Save(documentType).Error
}

func (r *DocumentTypeRepository) Delete(ctx context.Context, sc scope.Scope, id string) error {
	db := applyScope(r.writerDB.WithContext(ctx), sc)
	return db.Delete(&domain.DocumentType{}, "id = ?", id).Error
}

func (r *DocumentTypeRepository) List(ctx context.Context, sc scope.Scope) ([]domain.DocumentType, error) {
	var documentTypes []domain.DocumentType
	db := applySharedScope(r.readerDB.WithContext(ctx), sc)
	if err := db.Order("name").Find(&documentTypes).Error; err != nil {
		return nil, err
	}
	return documentTypes, nil
}

type PaymentTypeRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPaymentTypeRepository(writerDB, readerDB *gorm.DB) *PaymentTypeRepository {
	return &PaymentTypeRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PaymentTypeRepository) Create(ctx context.Context, paymentType *domain.PaymentType) error {
	if paymentType.ID == "" {
		paymentType.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(paymentType).Error
}

func (r *PaymentTypeRepository) GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.PaymentType, error) {
	var paymentType domain.PaymentType
	db := applySharedScope(r.readerDB.WithContext(ctx), sc)
	if err := db.First(&paymentType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &paymentType, nil
}

func (r *PaymentTypeRepository) Update(ctx context.Context, paymentType *domain.PaymentType) error {
	return r.writerDB.WithContext(ctx).Save(paymentType).Error
}

func (r *PaymentTypeRepository) Delete(ctx context.Context, sc scope.Scope, id string) error {
	db := applyScope(r.writerDB.WithContext(ctx), sc)
	return db.Delete(&domain.PaymentType{}, "id = ?", id).Error
}

func (r *PaymentTypeRepository) List(ctx context.Context, sc scope.Scope) ([]domain.PaymentType, error) {
	var paymentTypes []domain.PaymentType
	db := applySharedScope(r.readerDB.WithContext(ctx), sc)
	if err := db.Order("name").Find(&paymentTypes).Error; err != nil {
		return nil, err
	}
	return paymentTypes, nil
}
