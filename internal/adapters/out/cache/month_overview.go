package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
)

// Кэширование месячного календаря
// Точечных обновлений нет, вместо них короткий TTL

func (c *CacheAdapter) GetMonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (map[string]domain.DayAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.months.Get(c.monthKey(doctorID, year, month))
	if !exists {
		return nil, false
	}

	if time.Since(entry.Timestamp) > c.monthTTL {
		c.logger.Debug("cache.month.get.expired", out.LogFields{
			"doctorId": doctorID,
			"year":     year,
			"month":    int(month),
		})
		return nil, false
	}

	return entry.Days, true
}

func (c *CacheAdapter) StoreMonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month, days map[string]domain.DayAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.month.store", out.LogFields{
		"doctorId":  doctorID,
		"year":      year,
		"month":     int(month),
		"daysCount": len(days),
	})

	c.months.Add(c.monthKey(doctorID, year, month), &monthEntry{
		Days:      days,
		Timestamp: time.Now(),
	})
}
