package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientResponse struct {
	ID               string    `json:"id"`
	TenantID         *string   `json:"tenant_id,omitempty"`
	DocumentTypeID   string    `json:"document_type_id"`
	DocumentNumber   string    `json:"document_number"`
	FirstName        string    `json:"first_name"`
	PaternalLastName string    `json:"paternal_last_name"`
	MaternalLastName string    `json:"maternal_last_name,omitempty"`
	FullName         string    `json:"full_name"`
	Sex              string    `json:"sex"`
	PrimaryPhone     string    `json:"primary_phone,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type TherapistResponse struct {
	ID               string  `json:"id"`
	TenantID         *string `json:"tenant_id,omitempty"`
	DocumentTypeID   string  `json:"document_type_id"`
	DocumentNumber   string  `json:"document_number"`
	FirstName        string  `json:"first_name"`
	PaternalLastName string  `json:"paternal_last_name"`
	MaternalLastName string  `json:"maternal_last_name,omitempty"`
	FullName         string  `json:"full_name"`
	Gender           string  `json:"gender"`
	Phone            string  `json:"phone,omitempty"`
	Email            string  `json:"email,omitempty"`
}

type AppointmentResponse struct {
	ID              string           `json:"id"`
	TenantID        *string          `json:"tenant_id,omitempty"`
	PatientID       *string          `json:"patient_id,omitempty"`
	TherapistID     *string          `json:"therapist_id,omitempty"`
	AppointmentDate string           `json:"appointment_date"`
	AppointmentHour string           `json:"appointment_hour"`
	InitialDate     *string          `json:"initial_date,omitempty"`
	FinalDate       *string          `json:"final_date,omitempty"`
	AppointmentType string           `json:"appointment_type,omitempty"`
	Payment         *decimal.Decimal `json:"payment,omitempty"`
	PaymentTypeID   *string          `json:"payment_type_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type LookupResponse struct {
	ID       string  `json:"id"`
	TenantID *string `json:"tenant_id,omitempty"`
	Name     string  `json:"name"`
}

// ReferenceOption is a single selectable row offered to an entity form.
type ReferenceOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AppointmentReferenceData carries the rows an appointment form may
// reference, already filtered down to the caller's tenant.
type AppointmentReferenceData struct {
	Patients      []ReferenceOption `json:"patients"`
	Therapists    []ReferenceOption `json:"therapists"`
	DocumentTypes []ReferenceOption `json:"document_types"`
	PaymentTypes  []ReferenceOption `json:"payment_types"`
}

// TherapistAppointmentsRow is one therapist with its appointment count on
// the report date.
type TherapistAppointmentsRow struct {
	TherapistID       string `json:"therapist_id"`
	FirstName         string `json:"first_name"`
	PaternalLastName  string `json:"paternal_last_name"`
	MaternalLastName  string `json:"maternal_last_name,omitempty"`
	AppointmentsCount int64  `json:"appointments_count"`
}

type TherapistAppointmentsReport struct {
	TherapistsAppointments []TherapistAppointmentsRow `json:"therapists_appointments"`
	TotalAppointmentsCount int64                      `json:"total_appointments_count"`
}

// PatientAppointments is a de-duplicated patient entry inside a therapist
// group; Appointments counts occurrences, not distinct days.
type PatientAppointments struct {
	PatientID    string `json:"patient_id"`
	Patient      string `json:"patient"`
	Appointments int    `json:"appointments"`
}

type PatientsByTherapistGroup struct {
	TherapistID string                `json:"therapist_id"`
	Therapist   string                `json:"therapist"`
	Patients    []PatientAppointments `json:"patients"`
}

type DailyCashRow struct {
	AppointmentID   string          `json:"appointment_id"`
	Payment         decimal.Decimal `json:"payment"`
	PaymentTypeID   string          `json:"payment_type_id"`
	PaymentTypeName string          `json:"payment_type_name"`
}

type AppointmentBetweenDatesRow struct {
	AppointmentID         string `json:"appointment_id"`
	PatientID             string `json:"patient_id"`
	PatientDocumentNumber string `json:"document_number_patient"`
	Patient               string `json:"patient"`
	PatientPrimaryPhone   string `json:"primary_phone_patient,omitempty"`
	AppointmentDate       string `json:"appointment_date"`
	AppointmentHour       string `json:"appointment_hour"`
}
