package availability

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotbook/slotbook/pkg/slot"
)

// DateLayout is the calendar date format used by the preview API and config.
const DateLayout = "2006-01-02"

// StartOfDay returns midnight of the date in loc.
func StartOfDay(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	d := date.In(loc)
	y, m, dd := d.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, loc)
}

// WeekStart returns the first day of the week containing date. An out-of-range
// weekStartDay falls back to Monday.
func WeekStart(date time.Time, weekStartDay time.Weekday, loc *time.Location) time.Time {
	if weekStartDay < time.Sunday || weekStartDay > time.Saturday {
		weekStartDay = time.Monday
	}
	day := StartOfDay(date, loc)
	delta := (int(day.Weekday()) - int(weekStartDay) + 7) % 7
	return day.AddDate(0, 0, -delta)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// weeklyWindows returns the windows of every rule listing the weekday. Rules that fail
// validation are skipped; they are rejected at load time, so this only guards stubs.
func weeklyWindows(rules []WeeklyAvailability, weekday time.Weekday) []Window {
	var out []Window
	for _, rule := range rules {
		if !containsWeekday(rule.DaysOfWeek, weekday) {
			continue
		}
		w, err := rule.window()
		if err != nil {
			log.Warnf("skipping invalid weekly availability %s: %v", rule.Id, err)
			continue
		}
		out = append(out, w)
	}
	return out
}

func containsWeekday(days []time.Weekday, weekday time.Weekday) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// applyExceptions resolves the windows of one date. Available exceptions replace the weekly
// windows, an all-day unavailable exception clears the day and a timed one is cut out.
func applyExceptions(weekly []Window, exceptions []CustomAvailability) []Window {
	windows := weekly

	var replacements []Window
	for _, e := range exceptions {
		if e.Status != Available {
			continue
		}
		w, err := e.window()
		if err != nil {
			log.Warnf("skipping invalid custom availability %s: %v", e.Id, err)
			continue
		}
		replacements = append(replacements, w)
	}
	if len(replacements) > 0 {
		windows = replacements
	}

	for _, e := range exceptions {
		if e.Status != Unavailable {
			continue
		}
		if e.AllDay() {
			return nil
		}
		start, end, err := bounds(e.StartTime, e.EndTime)
		if err != nil {
			log.Warnf("skipping invalid custom availability %s: %v", e.Id, err)
			continue
		}
		windows = subtractBlock(windows, start, end)
	}

	sort.SliceStable(windows, func(i, j int) bool { return windows[i].Start < windows[j].Start })
	return windows
}

// subtractBlock cuts [blockStart, blockEnd) out of each window; a window may split in two.
func subtractBlock(windows []Window, blockStart, blockEnd slot.MinuteOffset) []Window {
	var result []Window
	for _, w := range windows {
		if w.End <= blockStart || w.Start >= blockEnd {
			result = append(result, w)
			continue
		}
		if w.Start < blockStart {
			before := w
			before.End = blockStart
			result = append(result, before)
		}
		if w.End > blockEnd {
			after := w
			after.Start = blockEnd
			result = append(result, after)
		}
	}
	return result
}

// bookableSlots turns windows into what a booking screen lists. Wave windows are tiled
// with the slot generator; a stream window is offered as one block.
func bookableSlots(windows []Window) ([]BookableSlot, error) {
	out := make([]BookableSlot, 0)
	for _, w := range windows {
		switch w.ScheduleType {
		case Stream:
			out = append(out, BookableSlot{
				StartTime:         slot.MinutesToTime(w.Start),
				EndTime:           slot.MinutesToTime(w.End),
				Type:              Stream,
				AvailableCapacity: w.MaxCount,
			})
		case Wave:
			seq, err := slot.GenerateBetween(w.Start, w.End, w.SlotDuration)
			if err != nil {
				return nil, err
			}
			for _, s := range seq {
				out = append(out, BookableSlot{
					StartTime:         s.StartTime(),
					EndTime:           s.EndTime(),
					Type:              Wave,
					AvailableCapacity: w.MaxCount,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}
