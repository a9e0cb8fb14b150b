package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
)

const DefaultSlotMinutes = 30

// WorkHourRule - правило рабочих часов врача
// Заполнено ровно одно из полей: Weekday (0 - воскресенье) или SpecificDate
// Правило на конкретную дату имеет приоритет над правилом на день недели
type WorkHourRule struct {
	ID           uuid.UUID             `json:"id"`
	DoctorID     uuid.UUID             `json:"doctor_id"`
	Weekday      *int                  `json:"weekday"`
	SpecificDate *json_types.Date      `json:"specific_date"`
	StartTime    json_types.TimeOfDay  `json:"start_time"`
	EndTime      json_types.TimeOfDay  `json:"end_time"`
	SlotMinutes  int                   `json:"slot_minutes"`
	LunchStart   *json_types.TimeOfDay `json:"lunch_start"`
	LunchEnd     *json_types.TimeOfDay `json:"lunch_end"`
}

// EffectiveSlotMinutes возвращает шаг сетки, ноль в базе означает шаг по умолчанию
func (r WorkHourRule) EffectiveSlotMinutes() int {
	if r.SlotMinutes == 0 {
		return DefaultSlotMinutes
	}
	return r.SlotMinutes
}

func (r WorkHourRule) HasLunch() bool {
	return r.LunchStart != nil && r.LunchEnd != nil
}

// Validate проверяет правило при сохранении
// Читающий путь генерации слотов правила не валидирует, он просто
// ограничивает количество итераций
func (r WorkHourRule) Validate() error {
	if (r.Weekday == nil) == (r.SpecificDate == nil) {
		return fmt.Errorf("%w: exactly one of weekday or specific_date must be set", ErrInvalidRule)
	}
	if r.Weekday != nil && (*r.Weekday < 0 || *r.Weekday > 6) {
		return fmt.Errorf("%w: weekday must be in 0..6, got %d", ErrInvalidRule, *r.Weekday)
	}
	if r.SlotMinutes < 0 {
		return fmt.Errorf("%w: slot_minutes must not be negative, got %d", ErrInvalidRule, r.SlotMinutes)
	}
	if r.EndTime.Minutes <= r.StartTime.Minutes {
		return fmt.Errorf("%w: end_time %s must be after start_time %s", ErrInvalidRule, r.EndTime, r.StartTime)
	}
	if (r.LunchStart == nil) != (r.LunchEnd == nil) {
		return fmt.Errorf("%w: lunch_start and lunch_end must be set together", ErrInvalidRule)
	}
	if r.HasLunch() {
		if r.LunchEnd.Minutes <= r.LunchStart.Minutes {
			return fmt.Errorf("%w: lunch_end %s must be after lunch_start %s", ErrInvalidRule, *r.LunchEnd, *r.LunchStart)
		}
		if r.LunchStart.Minutes < r.StartTime.Minutes || r.LunchEnd.Minutes > r.EndTime.Minutes {
			return fmt.Errorf("%w: lunch must be inside working hours", ErrInvalidRule)
		}
	}
	return nil
}
