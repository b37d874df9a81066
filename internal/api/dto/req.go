package dto

import (
	"github.com/shopspring/decimal"
)

type CreateTenantRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain" binding:"required"`
}

type CreatePatientRequest struct {
	TenantID         *string `json:"tenant_id"`
	DocumentTypeID   string  `json:"document_type_id" binding:"required"`
	DocumentNumber   string  `json:"document_number" binding:"required"`
	FirstName        string  `json:"first_name" binding:"required"`
	PaternalLastName string  `json:"paternal_last_name" binding:"required"`
	MaternalLastName string  `json:"maternal_last_name"`
	Sex              string  `json:"sex" binding:"required,oneof=M F O"`
	PrimaryPhone     string  `json:"primary_phone"`
}

type CreateTherapistRequest struct {
	TenantID         *string `json:"tenant_id"`
	DocumentTypeID   string  `json:"document_type_id" binding:"required"`
	DocumentNumber   string  `json:"document_number" binding:"required"`
	FirstName        string  `json:"first_name" binding:"required"`
	PaternalLastName string  `json:"paternal_last_name" binding:"required"`
	MaternalLastName string  `json:"maternal_last_name"`
	Gender           string  `json:"gender" binding:"required,oneof=M F O"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
}

type CreateAppointmentRequest struct {
	TenantID        *string          `json:"tenant_id"`
	PatientID       string           `json:"patient_id" binding:"required"`
	TherapistID     *string          `json:"therapist_id"`
	AppointmentDate string           `json:"appointment_date" binding:"required" example:"2024-01-10"`
	AppointmentHour string           `json:"appointment_hour" binding:"required" example:"09:30"`
	InitialDate     *string          `json:"initial_date"`
	FinalDate       *string          `json:"final_date"`
	AppointmentType string           `json:"appointment_type"`
	Payment         *decimal.Decimal `json:"payment"`
	PaymentTypeID   *string          `json:"payment_type_id"`
}

type CreateDocumentTypeRequest struct {
	TenantID *string `json:"tenant_id"`
	Name     string  `json:"name" binding:"required"`
}

type CreatePaymentTypeRequest struct {
	TenantID *string `json:"tenant_id"`
	Name     string  `json:"name" binding:"required"`
}
