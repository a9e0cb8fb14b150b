package schedule_service

import (
	"github.com/suchimauz/clinic-schedule-slots-service/internal/config"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
)

type ScheduleService struct {
	storePort out.StorePort
	cachePort out.CachePort
	logger    out.LoggerPort
	cfg       *config.Config
}

func NewScheduleService(
	storePort out.StorePort,
	cachePort out.CachePort,
	logger out.LoggerPort,
	cfg *config.Config,
) *ScheduleService {
	return &ScheduleService{
		storePort: storePort,
		cachePort: cachePort,
		logger:    logger.WithModule("ScheduleService"),
		cfg:       cfg,
	}
}

func (s *ScheduleService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}
