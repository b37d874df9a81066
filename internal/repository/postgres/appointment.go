package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

type AppointmentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAppointmentRepository(writerDB, readerDB *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(appointment).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, sc scope.Scope, id string) (*domain.Appointment, error) {
	var appointment domain.Appointment
	db := applyScope(r.readerDB.WithContext(ctx), sc)
	if err := db.Preload("Patient").Preload("Therapist").Preload("PaymentType").
		First(&appointment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	appointment.UpdatedAt = time.Now()
	return r.writerDB.WithContext(ctx).Save(appointment).Error
}

func (r *AppointmentRepository) Delete(ctx context.Context, sc scope.Scope, id string) error {
	db := applyScope(r.writerDB.WithContext(ctx), sc)
	return db.Delete(&domain.Appointment{}, "id = ?", id).Error
}

func (r *AppointmentRepository) List(ctx context.Context, sc scope.Scope, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	var appointments []domain.Appointment

	db := applyScope(r.readerDB.WithContext(ctx), sc)

	if filter.PatientID != "" {
		db = db.Where("patient_id = ?", filter.PatientID)
	}
	if filter.TherapistID != "" {
		db = db.Where("therapist_id = ?", filter.TherapistID)
	}
	if !filter.StartDate.IsZero() {
		db = db.Where("appointment_date >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		db = db.Where("appointment_date <= ?", filter.EndDate)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	db = db.Order("appointment_date DESC, appointment_hour DESC")

	if err := db.Preload("Patient").Preload("Therapist").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListOnDate returns the in-scope appointments on a single date with patient
// and therapist rows attached, in a stable hour-then-id order.
func (r *AppointmentRepository) ListOnDate(ctx context.Context, sc scope.Scope, date time.Time) ([]domain.Appointment, error) {
	var appointments []domain.Appointment

	db := applyScope(r.readerDB.WithContext(ctx), sc).
		Where("appointment_date = ?", date).
		Order("appointment_hour, id")

	if err := db.Preload("Patient").Preload("Therapist").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListDailyPayments returns one row per in-scope appointment on the date
// that has both a payment amount and a payment type, newest first. UUID keys
// carry no recency, so creation time orders the rows with id as tiebreaker.
func (r *AppointmentRepository) ListDailyPayments(ctx context.Context, sc scope.Scope, date time.Time) ([]domain.DailyPayment, error) {
	var payments []domain.DailyPayment

	db := r.readerDB.WithContext(ctx).
		Table("appointments AS a").
		Select("a.id AS appointment_id, a.payment, a.payment_type_id, pt.name AS payment_type_name").
		Joins("JOIN payment_types pt ON pt.id = a.payment_type_id").
		Where("a.appointment_date = ? AND a.payment IS NOT NULL", date).
		Order("a.created_at DESC, a.id DESC")
	db = applyPrefixedScope(db, sc, "a")

	if err := db.Scan(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListBetweenDates returns the in-scope appointments in the inclusive date
// range with patients attached, ordered by date then hour ascending. An
// inverted range simply matches nothing.
func (r *AppointmentRepository) ListBetweenDates(ctx context.Context, sc scope.Scope, startDate, endDate time.Time) ([]domain.Appointment, error) {
	var appointments []domain.Appointment

	db := applyScope(r.readerDB.WithContext(ctx), sc).
		Where("appointment_date >= ? AND appointment_date <= ?", startDate, endDate).
		Order("appointment_date, appointment_hour")

	if err := db.Preload("Patient").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
