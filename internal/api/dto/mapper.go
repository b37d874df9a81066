package dto

import (
	"fmt"
	"time"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/pkg/utils"
)

func (r *CreatePatientRequest) ToPatient() *domain.Patient {
	return &domain.Patient{
		TenantID:         r.TenantID,
		DocumentTypeID:   r.DocumentTypeID,
		DocumentNumber:   r.DocumentNumber,
		FirstName:        r.FirstName,
		PaternalLastName: r.PaternalLastName,
		MaternalLastName: r.MaternalLastName,
		Sex:              domain.Sex(r.Sex),
		PrimaryPhone:     r.PrimaryPhone,
	}
}

func (r *CreateTherapistRequest) ToTherapist() *domain.Therapist {
	return &domain.Therapist{
		TenantID:         r.TenantID,
		DocumentTypeID:   r.DocumentTypeID,
		DocumentNumber:   r.DocumentNumber,
		FirstName:        r.FirstName,
		PaternalLastName: r.PaternalLastName,
		MaternalLastName: r.MaternalLastName,
		Gender:           domain.Sex(r.Gender),
		Phone:            r.Phone,
		Email:            r.Email,
	}
}

// ToAppointment converts the request, parsing its date and hour strings.
func (r *CreateAppointmentRequest) ToAppointment() (*domain.Appointment, error) {
	date, err := utils.ParseDate(r.AppointmentDate)
	if err != nil {
		return nil, err
	}
	hour, err := utils.ParseHour(r.AppointmentHour)
	if err != nil {
		return nil, err
	}

	parseOptionalDate := func(field string, value *string) (*time.Time, error) {
		if value == nil || *value == "" {
			return nil, nil
		}
		parsed, err := utils.ParseDate(*value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return &parsed, nil
	}

	initialDate, err := parseOptionalDate("initial_date", r.InitialDate)
	if err != nil {
		return nil, err
	}
	finalDate, err := parseOptionalDate("final_date", r.FinalDate)
	if err != nil {
		return nil, err
	}

	patientID := r.PatientID
	return &domain.Appointment{
		TenantID:        r.TenantID,
		PatientID:       &patientID,
		TherapistID:     r.TherapistID,
		AppointmentDate: date,
		AppointmentHour: hour,
		InitialDate:     initialDate,
		FinalDate:       finalDate,
		AppointmentType: r.AppointmentType,
		Payment:         r.Payment,
		PaymentTypeID:   r.PaymentTypeID,
	}, nil
}

func FromTenant(tenant *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Domain:    tenant.Domain,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = *FromTenant(&tenant)
	}
	return responses
}

func FromPatient(patient *domain.Patient) *PatientResponse {
	return &PatientResponse{
		ID:               patient.ID,
		TenantID:         patient.TenantID,
		DocumentTypeID:   patient.DocumentTypeID,
		DocumentNumber:   patient.DocumentNumber,
		FirstName:        patient.FirstName,
		PaternalLastName: patient.PaternalLastName,
		MaternalLastName: patient.MaternalLastName,
		FullName:         patient.FullName(),
		Sex:              string(patient.Sex),
		PrimaryPhone:     patient.PrimaryPhone,
		CreatedAt:        patient.CreatedAt,
	}
}

func FromPatients(patients []domain.Patient) []PatientResponse {
	responses := make([]PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *FromPatient(&patient)
	}
	return responses
}

func FromTherapist(therapist *domain.Therapist) *TherapistResponse {
	return &TherapistResponse{
		ID:               therapist.ID,
		TenantID:         therapist.TenantID,
		DocumentTypeID:   therapist.DocumentTypeID,
		DocumentNumber:   therapist.DocumentNumber,
		FirstName:        therapist.FirstName,
		PaternalLastName: therapist.PaternalLastName,
		MaternalLastName: therapist.MaternalLastName,
		FullName:         therapist.FullName(),
		Gender:           string(therapist.Gender),
		Phone:            therapist.Phone,
		Email:            therapist.Email,
	}
}

func FromTherapists(therapists []domain.Therapist) []TherapistResponse {
	responses := make([]TherapistResponse, len(therapists))
	for i, therapist := range therapists {
		responses[i] = *FromTherapist(&therapist)
	}
	return responses
}

func FromAppointment(appointment *domain.Appointment) *AppointmentResponse {
	formatOptionalDate := func(value *time.Time) *string {
		if value == nil {
			return nil
		}
		formatted := utils.FormatDate(*value)
		return &formatted
	}

	return &AppointmentResponse{
		ID:              appointment.ID,
		TenantID:        appointment.TenantID,
		PatientID:       appointment.PatientID,
		TherapistID:     appointment.TherapistID,
		AppointmentDate: utils.FormatDate(appointment.AppointmentDate),
		AppointmentHour: utils.NormalizeHour(appointment.AppointmentHour),
		InitialDate:     formatOptionalDate(appointment.InitialDate),
		FinalDate:       formatOptionalDate(appointment.FinalDate),
		AppointmentType: appointment.AppointmentType,
		Payment:         appointment.Payment,
		PaymentTypeID:   appointment.PaymentTypeID,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

func FromAppointments(appointments []domain.Appointment) []AppointmentResponse {
	responses := make([]AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *FromAppointment(&appointment)
	}
	return responses
}

func FromDocumentType(documentType *domain.DocumentType) *LookupResponse {
	return &LookupResponse{
		ID:       documentType.ID,
		TenantID: documentType.TenantID,
		Name:     documentType.Name,
	}
}

func FromDocumentTypes(documentTypes []domain.DocumentType) []LookupResponse {
	responses := make([]LookupResponse, len(documentTypes))
	for i, documentType := range documentTypes {
		responses[i] = *FromDocumentType(&documentType)
	}
	return responses
}

func FromPaymentType(paymentType *domain.PaymentType) *LookupResponse {
	return &LookupResponse{
		ID:       paymentType.ID,
		TenantID: paymentType.TenantID,
		Name:     paymentType.Name,
	}
}

func FromPaymentTypes(paymentTypes []domain.PaymentType) []LookupResponse {
	responses := make([]LookupResponse, len(paymentTypes))
	for i, paymentType := range paymentTypes {
		responses[i] = *FromPaymentType(&paymentType)
	}
	return responses
}
