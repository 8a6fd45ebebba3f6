package availability

import (
	"github.com/slotbook/slotbook/pkg/slot"
)

// Period is the part of the day a rule starts in, as grouped on the schedule screen.
type Period string

const (
	Morning   Period = "Morning"
	Afternoon Period = "Afternoon"
	Evening   Period = "Evening"
)

// Periods lists the periods in display order.
var Periods = []Period{Morning, Afternoon, Evening}

// PeriodOf classifies a start offset: before 12:00 is morning, before 17:00 afternoon.
func PeriodOf(start slot.MinuteOffset) Period {
	hour := start.Hour()
	switch {
	case hour < 12:
		return Morning
	case hour < 17:
		return Afternoon
	default:
		return Evening
	}
}

// PeriodGroup holds the rules that start in one period.
type PeriodGroup struct {
	Period Period
	Rules  []WeeklyAvailability
}

// GroupByPeriod buckets rules by the period of their start time. Empty periods are omitted
// and rules with an unparsable start are dropped.
func GroupByPeriod(rules []WeeklyAvailability) []PeriodGroup {
	buckets := make(map[Period][]WeeklyAvailability, len(Periods))
	for _, rule := range rules {
		start, err := slot.TimeToMinutes(rule.StartTime)
		if err != nil {
			continue
		}
		p := PeriodOf(start)
		buckets[p] = append(buckets[p], rule)
	}

	var groups []PeriodGroup
	for _, p := range Periods {
		if len(buckets[p]) == 0 {
			continue
		}
		groups = append(groups, PeriodGroup{Period: p, Rules: buckets[p]})
	}
	return groups
}
