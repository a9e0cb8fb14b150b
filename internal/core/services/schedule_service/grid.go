package schedule_service

import (
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
)

// Предохранитель от бесконечной генерации на битых правилах
// (отрицательный шаг, конец раньше начала и т.п.) - генерация молча
// обрывается, ошибки нет
const maxSlotsPerDay = 100

// GenerateSlots разворачивает правило в упорядоченную сетку времен "HH:MM"
// Вся арифметика в целых минутах с полуночи, без таймзон
// Конец рабочего дня исключается: слот не может начинаться в end_time или позже
// Обеденный перерыв выкалывается вместе с обеими границами
func GenerateSlots(rule domain.WorkHourRule) []string {
	step := rule.EffectiveSlotMinutes()
	end := rule.EndTime.Minutes

	slots := make([]string, 0)
	current := rule.StartTime.Minutes
	for iteration := 0; current < end && iteration < maxSlotsPerDay; iteration++ {
		if rule.HasLunch() && current >= rule.LunchStart.Minutes && current <= rule.LunchEnd.Minutes {
			current += step
			continue
		}

		slots = append(slots, json_types.TimeOfDay{Minutes: current}.String())
		current += step
	}

	return slots
}
