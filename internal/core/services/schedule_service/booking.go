package schedule_service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/utils"
)

func (s *ScheduleService) BookAppointment(ctx context.Context, req domain.BookingRequest) (*domain.Appointment, error) {
	s.logger.Info("booking.create.started", out.LogFields{
		"doctorId":  req.DoctorID,
		"patientId": req.PatientID,
		"date":      req.Date.Key(),
		"time":      req.Time,
	})

	start, end, err := s.checkSlotFree(ctx, req.DoctorID, req.Date.Date, req.Time, uuid.Nil)
	if err != nil {
		return nil, err
	}

	appointment := domain.Appointment{
		ID:             uuid.New(),
		DoctorID:       req.DoctorID,
		PatientID:      req.PatientID,
		ScheduledStart: json_types.DateTime{Date: start},
		ScheduledEnd:   json_types.DateTimeOrEmpty{Date: end},
		Status:         domain.AppointmentStatusScheduled,
		Reason:         req.Reason,
	}

	// Предварительная проверка выше - только для дружелюбного ответа,
	// гонку закрывает уникальный индекс в хранилище
	created, err := s.storePort.CreateAppointment(ctx, appointment)
	if err != nil {
		s.logger.Error("booking.create.failed", out.LogFields{
			"doctorId": req.DoctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("booking.create.failed: %w", err)
	}

	if s.cacheEnabled() {
		s.cachePort.InvalidateDoctor(ctx, req.DoctorID)
	}

	s.logger.Info("booking.create.succeeded", out.LogFields{
		"appointmentId": created.ID,
	})

	return created, nil
}

func (s *ScheduleService) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, date time.Time, slotTime string) (*domain.Appointment, error) {
	s.logger.Info("booking.reschedule.started", out.LogFields{
		"appointmentId": appointmentID,
		"date":          utils.DateKey(date),
		"time":          slotTime,
	})

	appointment, err := s.storePort.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("booking.reschedule.appointment.fetch_failed: %w", err)
	}

	start, end, err := s.checkSlotFree(ctx, appointment.DoctorID, date, slotTime, appointmentID)
	if err != nil {
		return nil, err
	}

	updated, err := s.storePort.RescheduleAppointment(ctx, appointmentID, start, end)
	if err != nil {
		s.logger.Error("booking.reschedule.failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("booking.reschedule.failed: %w", err)
	}

	if s.cacheEnabled() {
		s.cachePort.InvalidateDoctor(ctx, appointment.DoctorID)
	}

	return updated, nil
}

// checkSlotFree проверяет, что слот есть в действующей сетке врача и не занят
// неотмененной записью, и возвращает границы приема
func (s *ScheduleService) checkSlotFree(ctx context.Context, doctorID uuid.UUID, date time.Time, slotTime string, excludeAppointmentID uuid.UUID) (time.Time, time.Time, error) {
	rules, err := s.storePort.GetWorkHourRules(ctx, doctorID)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("booking.rules.fetch_failed: %w", err)
	}

	rule := ResolveRule(rules, date)
	if rule == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("booking.day_closed: %w", domain.ErrSlotUnavailable)
	}
	if !slices.Contains(GenerateSlots(*rule), slotTime) {
		return time.Time{}, time.Time{}, fmt.Errorf("booking.slot_not_in_grid: %w", domain.ErrSlotUnavailable)
	}

	dayStart := utils.StartOfDay(date)
	appointments, err := s.storePort.GetAppointments(ctx, doctorID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("booking.appointments.fetch_failed: %w", err)
	}

	for _, appointment := range appointments {
		if !appointment.OccupiesSlot() || appointment.ID == excludeAppointmentID {
			continue
		}
		if appointment.SlotKey() == slotTime {
			return time.Time{}, time.Time{}, fmt.Errorf("booking.slot_taken: %w", domain.ErrSlotTaken)
		}
	}

	timeOfDay, err := json_types.ParseTimeOfDay(slotTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("booking.bad_slot_time: %w", domain.ErrSlotUnavailable)
	}

	start := dayStart.Add(time.Duration(timeOfDay.Minutes) * time.Minute)
	end := start.Add(time.Duration(rule.EffectiveSlotMinutes()) * time.Minute)
	return start, end, nil
}
