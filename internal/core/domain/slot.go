package domain

// TimeSlot - производный слот сетки на конкретный день, не персистится
type TimeSlot struct {
	Time        string       `json:"time"`
	Appointment *Appointment `json:"appointment,omitempty"`
	IsBooked    bool         `json:"is_booked"`
}

// DayAvailability - грубый статус дня для месячного календаря
// Частично занятый день остается open, отдельного статуса для него нет
type DayAvailability string

const (
	DayAvailabilityOpen       DayAvailability = "open"
	DayAvailabilityFull       DayAvailability = "full"
	DayAvailabilityClosed     DayAvailability = "closed"
	DayAvailabilityOutOfMonth DayAvailability = "out_of_month"
)
