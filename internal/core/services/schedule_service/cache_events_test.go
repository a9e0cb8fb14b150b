package schedule_service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/config"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/utils"
)

type fakeCache struct {
	cachedDays map[string][]domain.TimeSlot

	getDates     []string
	updatedDates []string
	updatedSlots []domain.TimeSlot
	invalidated  []uuid.UUID
}

func newFakeCache() *fakeCache {
	return &fakeCache{cachedDays: make(map[string][]domain.TimeSlot)}
}

func (f *fakeCache) GetDaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]domain.TimeSlot, bool) {
	key := utils.DateKey(date)
	f.getDates = append(f.getDates, key)
	slots, exists := f.cachedDays[key]
	return slots, exists
}

func (f *fakeCache) StoreDaySlots(ctx context.Context, doctorID uuid.UUID, date time.Time, slots []domain.TimeSlot) {
	f.cachedDays[utils.DateKey(date)] = slots
}

func (f *fakeCache) UpdateDaySlot(ctx context.Context, doctorID uuid.UUID, date time.Time, slot domain.TimeSlot) {
	f.updatedDates = append(f.updatedDates, utils.DateKey(date))
	f.updatedSlots = append(f.updatedSlots, slot)
}

func (f *fakeCache) GetMonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (map[string]domain.DayAvailability, bool) {
	return nil, false
}

func (f *fakeCache) StoreMonthOverview(ctx context.Context, doctorID uuid.UUID, year int, month time.Month, days map[string]domain.DayAvailability) {
}

func (f *fakeCache) InvalidateDoctor(ctx context.Context, doctorID uuid.UUID) {
	f.invalidated = append(f.invalidated, doctorID)
}

func newCachedTestService(cache *fakeCache) *ScheduleService {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	return NewScheduleService(&fakeStore{}, cache, nopLogger{}, cfg)
}

func withClinicLocation(t *testing.T, loc *time.Location) {
	t.Helper()

	previous := json_types.Location()
	json_types.SetLocation(loc)
	t.Cleanup(func() { json_types.SetLocation(previous) })
}

func TestStoreAppointmentSlot_UpdatesCachedDay(t *testing.T) {
	cache := newFakeCache()
	cache.cachedDays["2024-01-15"] = []domain.TimeSlot{{Time: "09:00"}, {Time: "09:30"}}
	service := newCachedTestService(cache)

	appointment := scheduledAt(uuid.New(), testMonday.Add(9*time.Hour+30*time.Minute), domain.AppointmentStatusScheduled)
	service.StoreAppointmentSlot(context.Background(), appointment.DoctorID, appointment)

	if len(cache.updatedDates) != 1 || cache.updatedDates[0] != "2024-01-15" {
		t.Fatalf("got updated dates %v, want [2024-01-15]", cache.updatedDates)
	}
	slot := cache.updatedSlots[0]
	if slot.Time != "09:30" || !slot.IsBooked || slot.Appointment == nil {
		t.Fatalf("got slot %+v", slot)
	}
}

func TestStoreAppointmentSlot_UsesClinicDateAcrossMidnight(t *testing.T) {
	// Клиника в UTC-3, запись в шине с UTC-временем сразу после полуночи:
	// по настенным часам клиники это еще предыдущий день
	withClinicLocation(t, time.FixedZone("UTC-3", -3*60*60))

	cache := newFakeCache()
	cache.cachedDays["2024-01-15"] = []domain.TimeSlot{{Time: "22:00"}}
	service := newCachedTestService(cache)

	doctorID := uuid.New()
	appointment := domain.Appointment{
		ID:             uuid.New(),
		DoctorID:       doctorID,
		PatientID:      uuid.New(),
		ScheduledStart: json_types.DateTime{Date: time.Date(2024, 1, 16, 1, 0, 0, 0, time.UTC)},
		Status:         domain.AppointmentStatusScheduled,
	}
	service.StoreAppointmentSlot(context.Background(), doctorID, appointment)

	if len(cache.getDates) != 1 || cache.getDates[0] != "2024-01-15" {
		t.Fatalf("got cache lookups %v, want [2024-01-15]", cache.getDates)
	}
	if len(cache.updatedDates) != 1 || cache.updatedDates[0] != "2024-01-15" {
		t.Fatalf("got updated dates %v, want [2024-01-15]", cache.updatedDates)
	}
	if cache.updatedSlots[0].Time != "22:00" {
		t.Fatalf("got slot time %q, want 22:00", cache.updatedSlots[0].Time)
	}
}

func TestStoreAppointmentSlot_UncachedDayIsNoop(t *testing.T) {
	cache := newFakeCache()
	service := newCachedTestService(cache)

	appointment := scheduledAt(uuid.New(), testMonday.Add(9*time.Hour), domain.AppointmentStatusScheduled)
	service.StoreAppointmentSlot(context.Background(), appointment.DoctorID, appointment)

	if len(cache.updatedDates) != 0 {
		t.Fatalf("uncached day must not be updated, got %v", cache.updatedDates)
	}
}

func TestStoreAppointmentSlot_CancelledFreesSlot(t *testing.T) {
	cache := newFakeCache()
	cache.cachedDays["2024-01-15"] = []domain.TimeSlot{{Time: "09:00", IsBooked: true}}
	service := newCachedTestService(cache)

	appointment := scheduledAt(uuid.New(), testMonday.Add(9*time.Hour), domain.AppointmentStatusCancelled)
	service.StoreAppointmentSlot(context.Background(), appointment.DoctorID, appointment)

	slot := cache.updatedSlots[0]
	if slot.IsBooked || slot.Appointment != nil {
		t.Fatalf("cancelled appointment must free the slot, got %+v", slot)
	}
}

func TestInvalidateAppointmentSlot_BumpsDoctor(t *testing.T) {
	cache := newFakeCache()
	service := newCachedTestService(cache)

	doctorID := uuid.New()
	appointment := scheduledAt(doctorID, testMonday.Add(9*time.Hour), domain.AppointmentStatusScheduled)
	service.InvalidateAppointmentSlot(context.Background(), doctorID, appointment)

	if len(cache.invalidated) != 1 || cache.invalidated[0] != doctorID {
		t.Fatalf("got invalidations %v, want [%s]", cache.invalidated, doctorID)
	}
}
