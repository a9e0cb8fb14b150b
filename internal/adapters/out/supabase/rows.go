package supabase

import (
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
)

type patientRow struct {
	FullName string `json:"full_name"`
}

// appointmentRow - строка appointments со вложенным пациентом,
// как ее отдает PostgREST при select "*, patients(full_name)"
type appointmentRow struct {
	ID             uuid.UUID                  `json:"id"`
	DoctorID       uuid.UUID                  `json:"doctor_id"`
	PatientID      uuid.UUID                  `json:"patient_id"`
	ScheduledStart json_types.DateTime        `json:"scheduled_start"`
	ScheduledEnd   json_types.DateTimeOrEmpty `json:"scheduled_end"`
	Status         domain.AppointmentStatus   `json:"status"`
	Reason         *string                    `json:"reason"`
	Patient        *patientRow                `json:"patients"`
}

func (r appointmentRow) toDomain() domain.Appointment {
	appointment := domain.Appointment{
		ID:             r.ID,
		DoctorID:       r.DoctorID,
		PatientID:      r.PatientID,
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		Status:         r.Status,
	}
	if r.Reason != nil {
		appointment.Reason = *r.Reason
	}
	if r.Patient != nil {
		appointment.PatientName = r.Patient.FullName
	}
	return appointment
}
