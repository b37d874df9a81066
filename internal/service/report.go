package service

import (
	"context"
	"time"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/repository"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
	"github.com/clinovate/clinic-scheduling-api/pkg/utils"
)

// UnassignedTherapistLabel is the display label of the synthetic group that
// collects appointments with no therapist.
const UnassignedTherapistLabel = "No therapist assigned"

// unassignedGroupKey is the reserved grouping key for that synthetic group.
// Therapist ids are UUIDs, so it can never collide with a real one.
const unassignedGroupKey = "__no_therapist__"

// ReportService computes grouped and aggregated views over appointment and
// payment data. Every operation derives a read scope from the guard before
// touching the store, so reports are tenant-isolated by construction.
type ReportService struct {
	repo  repository.Repository
	guard *scope.Guard
}

func NewReportService(repo repository.Repository, guard *scope.Guard) *ReportService {
	return &ReportService{
		repo:  repo,
		guard: guard,
	}
}

// AppointmentsPerTherapist counts appointments per in-scope therapist on the
// date. Therapists without appointments that day are excluded; the grand
// total is the sum of the per-therapist counts.
func (s *ReportService) AppointmentsPerTherapist(ctx context.Context, p domain.Principal, date time.Time) (*dto.TherapistAppointmentsReport, error) {
	if date.IsZero() {
		return nil, ErrInvalidParameters
	}

	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Therapist().CountAppointmentsOnDate(ctx, sc, date)
	if err != nil {
		return nil, err
	}

	report := &dto.TherapistAppointmentsReport{
		TherapistsAppointments: make([]dto.TherapistAppointmentsRow, len(counts)),
	}
	for i, count := range counts {
		report.TherapistsAppointments[i] = dto.TherapistAppointmentsRow{
			TherapistID:       count.TherapistID,
			FirstName:         count.FirstName,
			PaternalLastName:  count.PaternalLastName,
			MaternalLastName:  count.MaternalLastName,
			AppointmentsCount: count.AppointmentsCount,
		}
		report.TotalAppointmentsCount += count.AppointmentsCount
	}

	return report, nil
}

// PatientsByTherapist groups the date's in-scope appointments by therapist,
// listing each therapist's patients once with an occurrence counter.
// Appointments without a patient are skipped silently; appointments without
// a therapist land in a synthetic group that is emitted last and only when
// it holds at least one patient. The two nil policies are deliberately
// asymmetric and must stay that way.
func (s *ReportService) PatientsByTherapist(ctx context.Context, p domain.Principal, date time.Time) ([]dto.PatientsByTherapistGroup, error) {
	if date.IsZero() {
		return nil, ErrInvalidParameters
	}

	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.Appointment().ListOnDate(ctx, sc, date)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*dto.PatientsByTherapistGroup)
	groupOrder := make([]string, 0)
	patientIndex := make(map[string]map[string]int)

	for _, appointment := range appointments {
		patient := appointment.Patient
		if patient == nil {
			continue
		}

		key := unassignedGroupKey
		group, ok := groups[key]
		if appointment.Therapist != nil {
			key = appointment.Therapist.ID
			group, ok = groups[key]
			if !ok {
				group = &dto.PatientsByTherapistGroup{
					TherapistID: appointment.Therapist.ID,
					Therapist:   appointment.Therapist.FullName(),
				}
				groups[key] = group
				groupOrder = append(groupOrder, key)
				patientIndex[key] = make(map[string]int)
			}
		} else if !ok {
			group = &dto.PatientsByTherapistGroup{
				TherapistID: "",
				Therapist:   UnassignedTherapistLabel,
			}
			groups[key] = group
			patientIndex[key] = make(map[string]int)
		}

		if idx, seen := patientIndex[key][patient.ID]; seen {
			group.Patients[idx].Appointments++
		} else {
			patientIndex[key][patient.ID] = len(group.Patients)
			group.Patients = append(group.Patients, dto.PatientAppointments{
				PatientID:    patient.ID,
				Patient:      patient.FullName(),
				Appointments: 1,
			})
		}
	}

	result := make([]dto.PatientsByTherapistGroup, 0, len(groups))
	for _, key := range groupOrder {
		result = append(result, *groups[key])
	}
	if unassigned, ok := groups[unassignedGroupKey]; ok && len(unassigned.Patients) > 0 {
		result = append(result, *unassigned)
	}

	return result, nil
}

// DailyCash lists the date's in-scope paid appointments, one row per
// appointment joined with its payment type, newest first. Amounts stay
// decimal-exact end to end.
func (s *ReportService) DailyCash(ctx context.Context, p domain.Principal, date time.Time) ([]dto.DailyCashRow, error) {
	if date.IsZero() {
		return nil, ErrInvalidParameters
	}

	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.Appointment().ListDailyPayments(ctx, sc, date)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DailyCashRow, len(payments))
	for i, payment := range payments {
		rows[i] = dto.DailyCashRow{
			AppointmentID:   payment.AppointmentID,
			Payment:         payment.Payment,
			PaymentTypeID:   payment.PaymentTypeID,
			PaymentTypeName: payment.PaymentTypeName,
		}
	}

	return rows, nil
}

// AppointmentsBetweenDates lists the in-scope appointments in the inclusive
// range, date then hour ascending, with their patient's identity fields.
// Appointments without a patient are skipped. An inverted range yields an
// empty result, not an error.
func (s *ReportService) AppointmentsBetweenDates(ctx context.Context, p domain.Principal, startDate, endDate time.Time) ([]dto.AppointmentBetweenDatesRow, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrInvalidParameters
	}

	sc, err := s.guard.ReadScope(p)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.Appointment().ListBetweenDates(ctx, sc, startDate, endDate)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AppointmentBetweenDatesRow, 0, len(appointments))
	for _, appointment := range appointments {
		patient := appointment.Patient
		if patient == nil {
			continue
		}

		rows = append(rows, dto.AppointmentBetweenDatesRow{
			AppointmentID:         appointment.ID,
			PatientID:             patient.ID,
			PatientDocumentNumber: patient.DocumentNumber,
			Patient:               patient.FullName(),
			PatientPrimaryPhone:   patient.PrimaryPhone,
			AppointmentDate:       utils.FormatDate(appointment.AppointmentDate),
			AppointmentHour:       utils.NormalizeHour(appointment.AppointmentHour),
		})
	}

	return rows, nil
}
