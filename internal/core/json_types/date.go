package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Таймзона клиники, задается один раз при старте приложения.
// Времена в расписании - это настенные часы клиники, без конвертаций.
var location = time.Local

func SetLocation(loc *time.Location) {
	if loc != nil {
		location = loc
	}
}

func Location() *time.Location {
	return location
}

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось, пробуем дату со временем, но без таймзоны
	// Даты без таймзоны считаем локальными для клиники
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}

type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.In(location).Format(time.RFC3339))
}

type DateTimeOrEmpty struct {
	Date time.Time
}

func (t *DateTimeOrEmpty) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	dt := DateTime{}
	err := dt.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	*t = DateTimeOrEmpty{Date: dt.Date}
	return nil
}

func (t DateTimeOrEmpty) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}

	return DateTime{Date: t.Date}.MarshalJSON()
}

// Date - календарная дата без времени, в базе хранится как "2006-01-02"
type Date struct {
	Date time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	str := string(data[1 : len(data)-1])

	parsedDate, err := time.ParseInLocation("2006-01-02", str, location)
	if err != nil {
		return fmt.Errorf("failed to parse date: %v", err)
	}

	*d = Date{Date: parsedDate}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Key())
}

func (d Date) Key() string {
	return d.Date.Format("2006-01-02")
}
