package out

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
)

type StorePort interface {
	// Правила рабочих часов врача
	GetWorkHourRules(ctx context.Context, doctorID uuid.UUID) ([]domain.WorkHourRule, error)

	// Записи на прием
	GetAppointments(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]domain.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID uuid.UUID) (*domain.Appointment, error)

	// Вставка полагается на уникальный индекс (doctor_id, scheduled_start)
	// по неотмененным записям, нарушение транслируется в domain.ErrSlotTaken
	CreateAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)
	RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, start, end time.Time) (*domain.Appointment, error)
}
