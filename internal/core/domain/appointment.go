package domain

import (
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID             uuid.UUID                  `json:"id"`
	DoctorID       uuid.UUID                  `json:"doctor_id"`
	PatientID      uuid.UUID                  `json:"patient_id"`
	PatientName    string                     `json:"patient_name,omitempty"`
	ScheduledStart json_types.DateTime        `json:"scheduled_start"`
	ScheduledEnd   json_types.DateTimeOrEmpty `json:"scheduled_end"`
	Status         AppointmentStatus          `json:"status"`
	Reason         string                     `json:"reason,omitempty"`
}

// SlotKey - время начала приема по настенным часам клиники, "HH:MM"
// Слоты матчатся со записями только по точному совпадению этой строки
func (a Appointment) SlotKey() string {
	return a.ScheduledStart.Date.In(json_types.Location()).Format("15:04")
}

func (a Appointment) DateKey() string {
	return a.ScheduledStart.Date.In(json_types.Location()).Format("2006-01-02")
}

// OccupiesSlot - отмененные записи слот не занимают
func (a Appointment) OccupiesSlot() bool {
	return a.Status != AppointmentStatusCancelled
}
