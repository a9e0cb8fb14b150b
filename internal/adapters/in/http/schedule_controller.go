package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/config"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/json_types"
	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/ports/in"
)

type ScheduleController struct {
	useCase  in.ScheduleUseCase
	cfg      *config.Config
	location *time.Location
}

func NewScheduleController(useCase in.ScheduleUseCase, cfg *config.Config) *ScheduleController {
	return &ScheduleController{
		useCase:  useCase,
		cfg:      cfg,
		location: cfg.Location(),
	}
}

func (c *ScheduleController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/doctors/:doctorId/calendar", c.monthOverview)
		api.GET("/doctors/:doctorId/slots", c.daySlots)
		api.GET("/appointments/:appointmentId/reschedule-slots", c.rescheduleSlots)
		api.POST("/appointments", c.bookAppointment)
		api.POST("/appointments/:appointmentId/reschedule", c.rescheduleAppointment)
	}
}

type BookAppointmentRequest struct {
	DoctorID  uuid.UUID `json:"doctorId" binding:"required"`
	PatientID uuid.UUID `json:"patientId" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Time      string    `json:"time" binding:"required"`
	Reason    string    `json:"reason"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (c *ScheduleController) monthOverview(ctx *gin.Context) {
	doctorID, err := uuid.Parse(ctx.Param("doctorId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID format"})
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	days, err := c.useCase.MonthOverview(ctx.Request.Context(), doctorID, year, time.Month(month))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"doctorId": doctorID,
		"year":     year,
		"month":    month,
		"days":     days,
	})
}

func (c *ScheduleController) daySlots(ctx *gin.Context) {
	doctorID, err := uuid.Parse(ctx.Param("doctorId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID format"})
		return
	}

	date, err := c.parseDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	slots, err := c.useCase.DaySlots(ctx.Request.Context(), doctorID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slotMinutes, err := c.useCase.SlotMinutes(ctx.Request.Context(), doctorID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"doctorId":    doctorID,
		"date":        date.Format("2006-01-02"),
		"slotMinutes": slotMinutes,
		"slots":       slots,
	})
}

func (c *ScheduleController) rescheduleSlots(ctx *gin.Context) {
	appointmentID, err := uuid.Parse(ctx.Param("appointmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID format"})
		return
	}

	date, err := c.parseDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	slots, err := c.useCase.RescheduleSlots(ctx.Request.Context(), appointmentID, date)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"appointmentId": appointmentID,
		"date":          date.Format("2006-01-02"),
		"slots":         slots,
	})
}

func (c *ScheduleController) bookAppointment(ctx *gin.Context) {
	var req BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := c.parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	appointment, err := c.useCase.BookAppointment(ctx.Request.Context(), domain.BookingRequest{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      json_types.Date{Date: date},
		Time:      req.Time,
		Reason:    req.Reason,
	})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, appointment)
}

func (c *ScheduleController) rescheduleAppointment(ctx *gin.Context) {
	appointmentID, err := uuid.Parse(ctx.Param("appointmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID format"})
		return
	}

	var req RescheduleAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := c.parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	appointment, err := c.useCase.RescheduleAppointment(ctx.Request.Context(), appointmentID, date, req.Time)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *ScheduleController) parseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, c.location)
}

func (c *ScheduleController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Slot just became unavailable, please pick another"})
	case errors.Is(err, domain.ErrSlotUnavailable):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Slot is not available for this doctor and date"})
	case errors.Is(err, domain.ErrAppointmentNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (c *ScheduleController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
