package utils

import "time"

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthRange возвращает полуинтервал [начало месяца, начало следующего)
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// CalendarGridStart - первая ячейка сетки месячного календаря
// Сетка начинается с воскресенья недели, в которую попадает первое число
func CalendarGridStart(year int, month time.Month, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// Ячеек в сетке месячного календаря всегда 6 недель по 7 дней
const CalendarGridDays = 42
