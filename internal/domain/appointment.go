package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID              string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID        *string          `gorm:"type:uuid" json:"tenant_id,omitempty"`
	PatientID       *string          `gorm:"type:uuid" json:"patient_id,omitempty"`
	TherapistID     *string          `gorm:"type:uuid" json:"therapist_id,omitempty"`
	AppointmentDate time.Time        `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentHour string           `gorm:"type:time;not null" json:"appointment_hour"`
	InitialDate     *time.Time       `gorm:"type:date" json:"initial_date,omitempty"`
	FinalDate       *time.Time       `gorm:"type:date" json:"final_date,omitempty"`
	AppointmentType string           `gorm:"type:text" json:"appointment_type,omitempty"`
	Payment         *decimal.Decimal `gorm:"type:decimal(10,2)" json:"payment,omitempty"`
	PaymentTypeID   *string          `gorm:"type:uuid" json:"payment_type_id,omitempty"`
	CreatedAt       time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant          *Tenant          `gorm:"foreignKey:TenantID" json:"-"`
	Patient         *Patient         `gorm:"foreignKey:PatientID" json:"-"`
	Therapist       *Therapist       `gorm:"foreignKey:TherapistID" json:"-"`
	PaymentType     *PaymentType     `gorm:"foreignKey:PaymentTypeID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a Appointment) TenantRef() *string {
	return a.TenantID
}

func (a *Appointment) SetTenantRef(id *string) {
	a.TenantID = id
}

type AppointmentFilter struct {
	PatientID   string    `json:"patient_id"`
	TherapistID string    `json:"therapist_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Page        int       `json:"page"`
	PageSize    int       `json:"page_size"`
	Limit       int       `json:"limit"`
	Offset      int       `json:"offset"`
}

// DailyPayment is one row of the daily cash report: a paid appointment
// joined with its payment type.
type DailyPayment struct {
	AppointmentID   string          `json:"appointment_id"`
	Payment         decimal.Decimal `json:"payment"`
	PaymentTypeID   string          `json:"payment_type_id"`
	PaymentTypeName string          `json:"payment_type_name"`
}
