package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/config"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
)

type dayEntry struct {
	Slots []domain.TimeSlot
}

type monthEntry struct {
	Days      map[string]domain.DayAvailability
	Timestamp time.Time
}

// CacheAdapter держит производные слоты и месячные статусы в LRU
// Ключи включают эпоху врача: инвалидация - это инкремент эпохи,
// старые записи вытесняются LRU сами
type CacheAdapter struct {
	days     *lru.Cache[string, *dayEntry]
	months   *lru.Cache[string, *monthEntry]
	epochs   map[uuid.UUID]uint64
	monthTTL time.Duration
	mu       sync.RWMutex
	logger   out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	daysCache, err := lru.New[string, *dayEntry](cfg.Cache.DaysSize)
	if err != nil {
		logger.Error("cache.days.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.DaysSize,
		})
		return nil, err
	}

	monthsCache, err := lru.New[string, *monthEntry](cfg.Cache.MonthsSize)
	if err != nil {
		logger.Error("cache.months.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.MonthsSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		days:     daysCache,
		months:   monthsCache,
		epochs:   make(map[uuid.UUID]uint64),
		monthTTL: cfg.MonthOverviewTTL(),
		logger:   logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) InvalidateDoctor(ctx context.Context, doctorID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epochs[doctorID]++

	c.logger.Debug("cache.doctor.invalidated", out.LogFields{
		"doctorId": doctorID,
		"epoch":    c.epochs[doctorID],
	})
}

func (c *CacheAdapter) epoch(doctorID uuid.UUID) uint64 {
	return c.epochs[doctorID]
}

func (c *CacheAdapter) dayKey(doctorID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s:%d:%s", doctorID, c.epoch(doctorID), date.Format("2006-01-02"))
}

func (c *CacheAdapter) monthKey(doctorID uuid.UUID, year int, month time.Month) string {
	return fmt.Sprintf("%s:%d:%04d-%02d", doctorID, c.epoch(doctorID), year, int(month))
}
