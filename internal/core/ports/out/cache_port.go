package out

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
)

type CachePort interface {
	// Кэширование слотов дня
	GetDaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]domain.TimeSlot, bool)
	StoreDaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time, slots []domain.TimeSlot)
	UpdateDaySlot(ctx context.Context, doctorID uuid.UUID, date time.Time, slot domain.TimeSlot)

	// Кэширование месячного календаря
	GetMonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (map[string]domain.DayAvailability, bool)
	StoreMonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month, days map[string]domain.DayAvailability)

	// Инвалидация всех записей врача
	InvalidateDoctor(ctx context.Context, doctorID uuid.UUID)
}
