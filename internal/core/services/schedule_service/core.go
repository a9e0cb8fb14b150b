package schedule_service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/utils"
)

func (s *ScheduleService) MonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (map[string]domain.DayAvailability, error) {
	s.logger.Info("overview.month.started", out.LogFields{
		"doctorId": doctorID,
		"year":     year,
		"month":    int(month),
	})

	if s.cacheEnabled() {
		if days, exists := s.cachePort.GetMonthOverview(ctx, doctorID, year, month); exists {
			s.logger.Debug("overview.month.cache.hit", out.LogFields{
				"doctorId": doctorID,
			})
			return days, nil
		}
	}

	rules, err := s.storePort.GetWorkHourRules(ctx, doctorID)
	if err != nil {
		s.logger.Error("overview.month.rules.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("overview.month.rules.fetch_failed: %w", err)
	}

	monthStart, nextMonthStart := utils.MonthRange(year, month, s.location())
	appointments, err := s.storePort.GetAppointments(ctx, doctorID, monthStart, nextMonthStart)
	if err != nil {
		s.logger.Error("overview.month.appointments.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("overview.month.appointments.fetch_failed: %w", err)
	}

	// Группируем записи по дате, статус записи тут намеренно не учитывается
	byDate := make(map[string][]domain.Appointment, len(appointments))
	for _, appointment := range appointments {
		key := appointment.DateKey()
		byDate[key] = append(byDate[key], appointment)
	}

	days := make(map[string]domain.DayAvailability, utils.CalendarGridDays)
	cell := utils.CalendarGridStart(year, month, s.location())
	for i := 0; i < utils.CalendarGridDays; i++ {
		key := utils.DateKey(cell)
		if cell.Month() != month {
			days[key] = domain.DayAvailabilityOutOfMonth
		} else {
			days[key] = ClassifyDay(ResolveRule(rules, cell), byDate[key])
		}
		cell = cell.AddDate(0, 0, 1)
	}

	if s.cacheEnabled() {
		s.cachePort.StoreMonthOverview(ctx, doctorID, year, month, days)
	}

	return days, nil
}

func (s *ScheduleService) DaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]domain.TimeSlot, error) {
	s.logger.Info("slots.day.started", out.LogFields{
		"doctorId": doctorID,
		"date":     utils.DateKey(date),
	})

	if s.cacheEnabled() {
		if slots, exists := s.cachePort.GetDaySlots(ctx, doctorID, date); exists {
			s.logger.Debug("slots.day.cache.hit", out.LogFields{
				"doctorId":   doctorID,
				"date":       utils.DateKey(date),
				"slotsCount": len(slots),
			})
			return slots, nil
		}
	}

	slots, err := s.computeDaySlots(ctx, doctorID, date, uuid.Nil)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		s.cachePort.StoreDaySlots(ctx, doctorID, date, slots)
	}

	return slots, nil
}

func (s *ScheduleService) RescheduleSlots(ctx context.Context, appointmentID uuid.UUID, date time.Time) ([]domain.TimeSlot, error) {
	s.logger.Info("slots.reschedule.started", out.LogFields{
		"appointmentId": appointmentID,
		"date":          utils.DateKey(date),
	})

	appointment, err := s.storePort.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		s.logger.Error("slots.reschedule.appointment.fetch_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("slots.reschedule.appointment.fetch_failed: %w", err)
	}

	// Переносимая запись собственный слот не занимает
	return s.computeDaySlots(ctx, appointment.DoctorID, date, appointmentID)
}

func (s *ScheduleService) SlotMinutes(ctx context.Context, doctorID uuid.UUID, date time.Time) (int, error) {
	rules, err := s.storePort.GetWorkHourRules(ctx, doctorID)
	if err != nil {
		s.logger.Error("slots.minutes.rules.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return 0, fmt.Errorf("slots.minutes.rules.fetch_failed: %w", err)
	}

	rule := ResolveRule(rules, date)
	if rule == nil {
		return domain.DefaultSlotMinutes, nil
	}
	return rule.EffectiveSlotMinutes(), nil
}

// computeDaySlots - общий путь дневной и reschedule выдачи:
// резолв правила, генерация сетки, разметка занятости
// excludeAppointmentID выкидывает запись из занятости (uuid.Nil - никого)
func (s *ScheduleService) computeDaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time, excludeAppointmentID uuid.UUID) ([]domain.TimeSlot, error) {
	rules, err := s.storePort.GetWorkHourRules(ctx, doctorID)
	if err != nil {
		s.logger.Error("slots.day.rules.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.day.rules.fetch_failed: %w", err)
	}

	rule := ResolveRule(rules, date)
	if rule == nil {
		// Врач в этот день не работает
		s.logger.Debug("slots.day.closed", out.LogFields{
			"doctorId": doctorID,
			"date":     utils.DateKey(date),
		})
		return []domain.TimeSlot{}, nil
	}

	dayStart := utils.StartOfDay(date)
	appointments, err := s.storePort.GetAppointments(ctx, doctorID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("slots.day.appointments.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.day.appointments.fetch_failed: %w", err)
	}

	occupying := make([]domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if !appointment.OccupiesSlot() {
			continue
		}
		if appointment.ID == excludeAppointmentID {
			continue
		}
		occupying = append(occupying, appointment)
	}

	return TagSlots(GenerateSlots(*rule), occupying), nil
}

func (s *ScheduleService) location() *time.Location {
	return s.cfg.Location()
}
