package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type TherapistRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTherapistRepository(writerDB, readerDB *gorm.DB) *TherapistRepository {
	return &TherapistRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TherapistRepository) Create(ctx context.Context, therapist *domain.Therapist) error {
	if therapist.ID == "" {
		therapist.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(therapist).Error
}

func (r *TherapistRepository) GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.Therapist, error) {
	var therapist domain.Therapist
	db := applyScope(r.readerDB.WithContext(ctx), sc)
	if err := db.First(&therapist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &therapist, nil
}

func (r *TherapistRepository) Update(ctx context.Context, therapist *domain.Therapist) error {
	return r.writerDB.WithContext(ctx).Save(therapist).Error
}

func (r *TherapistRepository) Delete(ctx context.Context, sc scope.Scope, id string) error {
	db := applyScope(r.writerDB.WithContext(ctx), sc)
	return db.Delete(&domain.Therapist{}, "id = ?", id).Error
}

func (r *TherapistRepository) List(ctx context.Context, sc scope.Scope) ([]domain.Therapist, error) {
	var therapists []domain.Therapist
	db := applyScope(r.readerDB.WithContext(ctx), sc)
	if err := db.Order("paternal_last_name, first_name").Find(&therapists).Error; err != nil {
		return nil, err
	}
	return therapists, nil
}

// CountAppointmentsOnDate returns, for every in-scope therapist with at
// least one appointment on the date, the therapist and its appointment
// count. The inner join drops zero-count therapists.
func (r *TherapistRepository) CountAppointmentsOnDate(ctx context.Context, sc scope.Scope, date time.Time) ([]domain.TherapistAppointmentCount, error) {
	var counts []domain.TherapistAppointmentCount

	db := r.readerDB.WithContext(ctx).
		Table("therapists AS t").
		Select("t.id AS therapist_id, t.first_name, t.paternal_last_name, t.maternal_last_name, COUNT(a.id) AS appointments_count").
		Joins("JOIN appointments a ON a.therapist_id = t.id AND a.appointment_date = ?", date).
		Group("t.id, t.first_name, t.paternal_last_name, t.maternal_last_name").
		Order("t.paternal_last_name, t.first_name")
	db = applyPrefixedScope(db, sc, "t")

	if err := db.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
