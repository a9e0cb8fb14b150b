package schedule_service

import (
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
)

// TagSlots размечает сетку занятостью по записям на прием
// Запись матчится со слотом только по точному совпадению строки "HH:MM":
// запись, не попавшая на границу слота, не матчится ни с одним слотом
// При совпадении времени двух записей побеждает последняя по порядку обхода
func TagSlots(slots []string, appointments []domain.Appointment) []domain.TimeSlot {
	byTime := make(map[string]domain.Appointment, len(appointments))
	for _, appointment := range appointments {
		byTime[appointment.SlotKey()] = appointment
	}

	tagged := make([]domain.TimeSlot, 0, len(slots))
	for _, slotTime := range slots {
		slot := domain.TimeSlot{Time: slotTime}
		if appointment, exists := byTime[slotTime]; exists {
			appointment := appointment
			slot.Appointment = &appointment
			slot.IsBooked = true
		}
		tagged = append(tagged, slot)
	}

	return tagged
}
