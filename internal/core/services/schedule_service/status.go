package schedule_service

import (
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
)

// TotalSlots - емкость дня в слотах: рабочие минуты за вычетом обеда
func TotalSlots(rule domain.WorkHourRule) int {
	step := rule.EffectiveSlotMinutes()

	total := (rule.EndTime.Minutes - rule.StartTime.Minutes) / step
	if rule.HasLunch() {
		total -= (rule.LunchEnd.Minutes - rule.LunchStart.Minutes) / step
	}

	return total
}

// ClassifyDay сводит день к грубому статусу для месячного календаря
// Считаются сырые строки записей без фильтра по статусу: отмененные записи
// тоже приближают день к "full" - унаследованное поведение, менять только
// после согласования с продуктом
func ClassifyDay(rule *domain.WorkHourRule, appointments []domain.Appointment) domain.DayAvailability {
	if rule == nil {
		return domain.DayAvailabilityClosed
	}

	if len(appointments) == 0 {
		return domain.DayAvailabilityOpen
	}
	if len(appointments) >= TotalSlots(*rule) {
		return domain.DayAvailabilityFull
	}

	return domain.DayAvailabilityOpen
}
