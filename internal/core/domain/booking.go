package domain

import (
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
)

// BookingRequest - запрос на создание записи на прием
// Time - слот из сетки врача в формате "HH:MM"
type BookingRequest struct {
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	Date      json_types.Date
	Time      string
	Reason    string
}
