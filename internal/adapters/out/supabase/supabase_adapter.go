package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/config"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/out"
	supa "github.com/supabase-community/supabase-go"
)

const (
	appointmentsTable = "appointments"
	workHoursTable    = "doctor_work_hours"

	// Вложенный select имени пациента через foreign key
	appointmentSelect = "*, patients(full_name)"
)

// SupabaseAdapter реализует StorePort поверх Supabase REST (PostgREST)
type SupabaseAdapter struct {
	client *supa.Client
	logger out.LoggerPort
}

func NewSupabaseAdapter(cfg *config.Config, logger out.LoggerPort) (*SupabaseAdapter, error) {
	client, err := supa.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, &supa.ClientOptions{
		Schema: cfg.Supabase.Schema,
	})
	if err != nil {
		logger.Error("supabase.client.init_failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.Supabase.URL,
		})
		return nil, err
	}

	return &SupabaseAdapter{
		client: client,
		logger: logger,
	}, nil
}

func (a *SupabaseAdapter) GetWorkHourRules(ctx context.Context, doctorID uuid.UUID) ([]domain.WorkHourRule, error) {
	a.logger.Debug("supabase.work_hours.fetch", out.LogFields{
		"doctorId": doctorID,
	})

	data, _, err := a.client.From(workHoursTable).
		Select("*", "", false).
		Eq("doctor_id", doctorID.String()).
		Execute()
	if err != nil {
		a.logger.Error("supabase.work_hours.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("supabase.work_hours.fetch_failed: %w", err)
	}

	var rules []domain.WorkHourRule
	if err := json.Unmarshal(data, &rules); err != nil {
		a.logger.Error("supabase.work_hours.decode_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("supabase.work_hours.decode_failed: %w", err)
	}

	return rules, nil
}

func (a *SupabaseAdapter) GetAppointments(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]domain.Appointment, error) {
	a.logger.Debug("supabase.appointments.fetch", out.LogFields{
		"doctorId": doctorID,
		"from":     from.Format(time.RFC3339),
		"to":       to.Format(time.RFC3339),
	})

	data, _, err := a.client.From(appointmentsTable).
		Select(appointmentSelect, "", false).
		Eq("doctor_id", doctorID.String()).
		Gte("scheduled_start", from.Format(time.RFC3339)).
		Lt("scheduled_start", to.Format(time.RFC3339)).
		Order("scheduled_start", nil).
		Execute()
	if err != nil {
		a.logger.Error("supabase.appointments.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("supabase.appointments.fetch_failed: %w", err)
	}

	var rows []appointmentRow
	if err := json.Unmarshal(data, &rows); err != nil {
		a.logger.Error("supabase.appointments.decode_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("supabase.appointments.decode_failed: %w", err)
	}

	appointments := make([]domain.Appointment, 0, len(rows))
	for _, row := range rows {
		appointments = append(appointments, row.toDomain())
	}

	return appointments, nil
}

func (a *SupabaseAdapter) GetAppointmentByID(ctx context.Context, appointmentID uuid.UUID) (*domain.Appointment, error) {
	data, _, err := a.client.From(appointmentsTable).
		Select(appointmentSelect, "", false).
		Eq("id", appointmentID.String()).
		Execute()
	if err != nil {
		a.logger.Error("supabase.appointment.fetch_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("supabase.appointment.fetch_failed: %w", err)
	}

	var rows []appointmentRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("supabase.appointment.decode_failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrAppointmentNotFound
	}

	appointment := rows[0].toDomain()
	return &appointment, nil
}

func (a *SupabaseAdapter) CreateAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	payload := map[string]interface{}{
		"id":              appointment.ID.String(),
		"doctor_id":       appointment.DoctorID.String(),
		"patient_id":      appointment.PatientID.String(),
		"scheduled_start": appointment.ScheduledStart.Date.Format(time.RFC3339),
		"scheduled_end":   appointment.ScheduledEnd.Date.Format(time.RFC3339),
		"status":          string(appointment.Status),
	}
	if appointment.Reason != "" {
		payload["reason"] = appointment.Reason
	}

	data, _, err := a.client.From(appointmentsTable).
		Insert(payload, false, "", "representation", "").
		Execute()
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlotTaken
		}
		a.logger.Error("supabase.appointment.insert_failed", out.LogFields{
			"doctorId": appointment.DoctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("supabase.appointment.insert_failed: %w", err)
	}

	var rows []appointmentRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("supabase.appointment.decode_failed: %w", err)
	}
	if len(rows) == 0 {
		// На случай, если PostgREST вернул пустое representation
		return &appointment, nil
	}

	created := rows[0].toDomain()
	return &created, nil
}

func (a *SupabaseAdapter) RescheduleAppointment(ctx context.Context, appointmentID uuid.UUID, start, end time.Time) (*domain.Appointment, error) {
	payload := map[string]interface{}{
		"scheduled_start": start.Format(time.RFC3339),
		"scheduled_end":   end.Format(time.RFC3339),
	}

	data, _, err := a.client.From(appointmentsTable).
		Update(payload, "representation", "").
		Eq("id", appointmentID.String()).
		Execute()
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlotTaken
		}
		a.logger.Error("supabase.appointment.update_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("supabase.appointment.update_failed: %w", err)
	}

	var rows []appointmentRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("supabase.appointment.decode_failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrAppointmentNotFound
	}

	updated := rows[0].toDomain()
	return &updated, nil
}

// Нарушение уникального индекса (doctor_id, scheduled_start) по неотмененным
// записям PostgREST отдает с кодом 23505
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
