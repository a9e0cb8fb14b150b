package schedule_service

import (
	"fmt"
	"time"

	"github.com/suchimauz/clinic-schedule-slots-service/internal/core/domain"
)

// Ключи поиска правила, вида "date-2024-01-15" и "weekday-1"
func dateRuleKey(date time.Time) string {
	return "date-" + date.Format("2006-01-02")
}

func weekdayRuleKey(weekday int) string {
	return fmt.Sprintf("weekday-%d", weekday)
}

// ResolveRule выбирает действующее правило рабочих часов на дату
// Правило на конкретную дату имеет приоритет над правилом на день недели
// nil означает, что врач в этот день не работает - это не ошибка
func ResolveRule(rules []domain.WorkHourRule, date time.Time) *domain.WorkHourRule {
	index := make(map[string]int, len(rules))
	for i, rule := range rules {
		if rule.SpecificDate != nil {
			index[dateRuleKey(rule.SpecificDate.Date)] = i
		} else if rule.Weekday != nil {
			index[weekdayRuleKey(*rule.Weekday)] = i
		}
	}

	if i, ok := index[dateRuleKey(date)]; ok {
		return &rules[i]
	}
	if i, ok := index[weekdayRuleKey(int(date.Weekday()))]; ok {
		return &rules[i]
	}

	return nil
}
