package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type PatientRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPatientRepository(writerDB, readerDB *gorm.DB) *PatientRepository {
	return &PatientRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PatientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(patient).Error
}

func (r *PatientRepository) GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.Patient, error) {
	var patient domain.Patient
	db := applyScope(r.readerDB.WithContext(ctx), sc)
	if err := db.First(&patient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	return r.writerDB.WithContext(ctx).Save(patient).Error
}

func (r *PatientRepository) Delete(ctx context.Context, sc scope.Scope, id string) error {
	db := applyScope(r.writerDB.WithContext(ctx), sc)
	return db.Delete(&domain.Patient{}, "id = ?", id).Error
}

func (r *PatientRepository) List(ctx context.Context, sc scope.Scope, filter domain.PatientFilter) ([]domain.Patient, error) {
	var patients []domain.Patient

	db := applyScope(r.readerDB.WithContext(ctx), sc)

	if filter.DocumentNumber != "" {
		db = db.Where("document_number = ?", filter.DocumentNumber)
	}
	if filter.Sex != "" {
		db = db.Where("sex = ?", filter.Sex)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	db = db.Order("created_at DESC")

	if err := db.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
