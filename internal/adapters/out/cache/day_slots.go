package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
)

// Кэширование слотов дня

func (c *CacheAdapter) GetDaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]domain.TimeSlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.days.Get(c.dayKey(doctorID, date))
	if !exists {
		c.logger.Debug("cache.day.get.miss", out.LogFields{
			"doctorId": doctorID,
			"date":     date.Format("2006-01-02"),
		})
		return nil, false
	}

	c.logger.Debug("cache.day.get.hit", out.LogFields{
		"doctorId":   doctorID,
		"date":       date.Format("2006-01-02"),
		"slotsCount": len(entry.Slots),
	})

	// Копия на чтение: слушатель шины обновляет слоты в записи кэша,
	// отданный наружу срез не должен делить с ней массив
	slots := make([]domain.TimeSlot, len(entry.Slots))
	copy(slots, entry.Slots)
	return slots, true
}

func (c *CacheAdapter) StoreDaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time, slots []domain.TimeSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.day.store", out.LogFields{
		"doctorId":   doctorID,
		"date":       date.Format("2006-01-02"),
		"slotsCount": len(slots),
	})

	c.days.Add(c.dayKey(doctorID, date), &dayEntry{Slots: slots})
}

func (c *CacheAdapter) UpdateDaySlot(ctx context.Context, doctorID uuid.UUID, date time.Time, slot domain.TimeSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.dayKey(doctorID, date)
	entry, exists := c.days.Get(key)
	if !exists {
		return
	}

	// Находим слот по времени и заменяем его
	index := -1
	for i, s := range entry.Slots {
		if s.Time == slot.Time {
			index = i
			break
		}
	}
	if index == -1 {
		return
	}
	entry.Slots[index] = slot

	c.days.Add(key, entry)
}
