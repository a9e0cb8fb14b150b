package in

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
)

type ScheduleUseCase interface {
	// Статусы дней для месячного календаря, ключ - "YYYY-MM-DD"
	MonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (map[string]domain.DayAvailability, error)

	// Сетка слотов врача на день
	DaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]domain.TimeSlot, error)

	// Сетка слотов для переноса записи, сама переносимая запись слот не занимает
	RescheduleSlots(ctx context.Context, appointmentID uuid.UUID, date time.Time) ([]domain.TimeSlot, error)

	// Действующий шаг сетки врача на дату
	SlotMinutes(ctx context.Context, doctorID uuid.UUID, date time.Time) (int, error)

	// Создание и перенос записи на прием
	BookAppointment(ctx context.Context, req domain.BookingRequest) (*domain.Appointment, error)
	RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, date time.Time, slotTime string) (*domain.Appointment, error)

	// Обновление кэша по событиям изменения записей
	StoreAppointmentSlot(ctx context.Context, doctorID uuid.UUID, appointment domain.Appointment)
	InvalidateAppointmentSlot(ctx context.Context, doctorID uuid.UUID, appointment domain.Appointment)
}
