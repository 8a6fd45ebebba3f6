package availability

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// candidateDates lists the dates in [from, to] that may have availability: every date a
// weekly rule recurs on plus the dates of available exceptions, minus all-day unavailable
// dates. from and to must be midnights in the same location.
func candidateDates(rules []WeeklyAvailability, exceptions []CustomAvailability, from, to time.Time) ([]time.Time, error) {
	var dates []time.Time

	if r, ok, err := weeklyRecurrence(rules, from); err != nil {
		return nil, err
	} else if ok {
		dates = r.Between(from, to, true)
	}

	closed := make(map[string]bool)
	for _, e := range exceptions {
		day := StartOfDay(e.Date, from.Location())
		if day.Before(from) || day.After(to) {
			continue
		}
		switch {
		case e.Status == Available:
			dates = append(dates, day)
		case e.Status == Unavailable && e.AllDay():
			closed[day.Format(DateLayout)] = true
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if closed[d.Format(DateLayout)] {
			continue
		}
		if len(out) > 0 && sameDay(out[len(out)-1], d) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// weeklyRecurrence expresses the weekdays of all valid rules as one FREQ=WEEKLY;BYDAY=...
// rule starting at dtstart. ok is false when no rule recurs on any day.
func weeklyRecurrence(rules []WeeklyAvailability, dtstart time.Time) (*rrule.RRule, bool, error) {
	seen := make(map[time.Weekday]bool)
	var days []rrule.Weekday
	for _, rule := range rules {
		if rule.Validate() != nil {
			continue
		}
		for _, d := range rule.DaysOfWeek {
			if wd, known := rruleWeekdays[d]; known && !seen[d] {
				seen[d] = true
				days = append(days, wd)
			}
		}
	}
	if len(days) == 0 {
		return nil, false, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   dtstart,
		Byweekday: days,
	})
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}
