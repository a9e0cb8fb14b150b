package schedule_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
)

// Обработчики событий изменения записей из шины

// StoreAppointmentSlot точечно обновляет слот в закэшированном дне
// Месячный кэш не трогаем, у него короткий TTL
func (s *ScheduleService) StoreAppointmentSlot(ctx context.Context, doctorID uuid.UUID, appointment domain.Appointment) {
	if !s.cacheEnabled() {
		return
	}

	// День кэша - это дата по настенным часам клиники, как в DateKey:
	// из шины время приходит в UTC и около полуночи попадает в другой день
	date := appointment.ScheduledStart.Date.In(json_types.Location())
	if _, exists := s.cachePort.GetDaySlots(ctx, doctorID, date); !exists {
		return
	}

	slot := domain.TimeSlot{
		Time:     appointment.SlotKey(),
		IsBooked: appointment.OccupiesSlot(),
	}
	if slot.IsBooked {
		appointment := appointment
		slot.Appointment = &appointment
	}

	s.cachePort.UpdateDaySlot(ctx, doctorID, date, slot)

	s.logger.Debug("cache.appointment.slot_updated", out.LogFields{
		"doctorId":      doctorID,
		"appointmentId": appointment.ID,
		"time":          slot.Time,
	})
}

func (s *ScheduleService) InvalidateAppointmentSlot(ctx context.Context, doctorID uuid.UUID, appointment domain.Appointment) {
	if !s.cacheEnabled() {
		return
	}

	s.cachePort.InvalidateDoctor(ctx, doctorID)

	s.logger.Debug("cache.appointment.invalidated", out.LogFields{
		"doctorId":      doctorID,
		"appointmentId": appointment.ID,
	})
}
