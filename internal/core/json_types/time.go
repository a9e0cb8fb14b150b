package json_types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay - время внутри дня в минутах с полуночи
// В базе время хранится как "HH:MM" или "HH:MM:SS", секунды игнорируются
type TimeOfDay struct {
	Minutes int
}

func ParseTimeOfDay(str string) (TimeOfDay, error) {
	parts := strings.Split(str, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("failed to parse time of day: %s", str)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("failed to parse time of day: %s", str)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("failed to parse time of day: %s", str)
	}

	return TimeOfDay{Minutes: hours*60 + minutes}, nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsed, err := ParseTimeOfDay(str)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Minutes/60, t.Minutes%60)
}
