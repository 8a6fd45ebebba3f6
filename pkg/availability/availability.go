package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/slotbook/slotbook/pkg/slot"
)

var ErrUnknownDay = errors.New("unknown day of week")
var ErrUnknownScheduleType = errors.New("unknown schedule type")
var ErrUnknownStatus = errors.New("unknown availability status")
var ErrInvalidAvailability = errors.New("invalid availability")

type ScheduleType string

const (
	// Stream is one continuous block per window; all bookings share its capacity.
	Stream ScheduleType = "STREAM"
	// Wave splits a window into fixed-duration slots, each with its own capacity.
	Wave ScheduleType = "WAVE"
)

type Status string

const (
	Available   Status = "AVAILABLE"
	Unavailable Status = "UNAVAILABLE"
)

// WeeklyAvailability is a regular rule repeated on every listed weekday.
type WeeklyAvailability struct {
	Id           uuid.UUID
	DaysOfWeek   []time.Weekday
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	SlotDuration int    // minutes, used by Wave only
	MaxCount     int
	ScheduleType ScheduleType
}

// CustomAvailability overrides the weekly rules on a single date.
type CustomAvailability struct {
	Id     uuid.UUID
	Date   time.Time
	Status Status
	Reason string
	// StartTime and EndTime are empty when the exception covers the whole day.
	StartTime    string
	EndTime      string
	SlotDuration int
	MaxCount     int
	ScheduleType ScheduleType
}

// AllDay reports whether the exception has no time window.
func (c CustomAvailability) AllDay() bool {
	return c.StartTime == "" && c.EndTime == ""
}

// Window is a day-local availability window in minute offsets, [Start, End).
type Window struct {
	Start        slot.MinuteOffset
	End          slot.MinuteOffset
	SlotDuration int
	MaxCount     int
	ScheduleType ScheduleType
}

// BookableSlot is what a booking screen lists for a date.
type BookableSlot struct {
	StartTime         string
	EndTime           string
	Type              ScheduleType
	AvailableCapacity int
}

// ParseDayOfWeek accepts full or abbreviated English day names in any case
// ("MONDAY", "Mon", "thurs").
func ParseDayOfWeek(token string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "mon", "monday":
		return time.Monday, nil
	case "tue", "tues", "tuesday":
		return time.Tuesday, nil
	case "wed", "wednesday":
		return time.Wednesday, nil
	case "thu", "thur", "thurs", "thursday":
		return time.Thursday, nil
	case "fri", "friday":
		return time.Friday, nil
	case "sat", "saturday":
		return time.Saturday, nil
	case "sun", "sunday":
		return time.Sunday, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, token)
}

func ParseScheduleType(value string) (ScheduleType, error) {
	switch ScheduleType(strings.ToUpper(strings.TrimSpace(value))) {
	case Stream:
		return Stream, nil
	case Wave:
		return Wave, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheduleType, value)
}

func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case Available:
		return Available, nil
	case Unavailable:
		return Unavailable, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
}

// Validate checks the rule the same way config loading and the slot preview expect it.
func (w WeeklyAvailability) Validate() error {
	if len(w.DaysOfWeek) == 0 {
		return fmt.Errorf("%w: no days of week", ErrInvalidAvailability)
	}
	if _, err := w.window(); err != nil {
		return err
	}
	return nil
}

func (w WeeklyAvailability) window() (Window, error) {
	return newWindow(w.StartTime, w.EndTime, w.SlotDuration, w.MaxCount, w.ScheduleType)
}

// Validate checks the exception. Unavailable all-day exceptions need nothing but a date;
// any other exception needs both times.
func (c CustomAvailability) Validate() error {
	if c.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidAvailability)
	}
	if c.Status != Available && c.Status != Unavailable {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, c.Status)
	}
	if c.AllDay() {
		if c.Status == Available {
			return fmt.Errorf("%w: available exception needs start and end time", ErrInvalidAvailability)
		}
		return nil
	}
	if !slot.ValidClockTime(c.StartTime) || !slot.ValidClockTime(c.EndTime) {
		return fmt.Errorf("%w: start %q and end %q must both be HH:MM", ErrInvalidAvailability, c.StartTime, c.EndTime)
	}
	if c.Status == Available {
		_, err := c.window()
		return err
	}
	_, _, err := bounds(c.StartTime, c.EndTime)
	return err
}

func (c CustomAvailability) window() (Window, error) {
	return newWindow(c.StartTime, c.EndTime, c.SlotDuration, c.MaxCount, c.ScheduleType)
}

func newWindow(startTime, endTime string, slotDuration, maxCount int, scheduleType ScheduleType) (Window, error) {
	start, end, err := bounds(startTime, endTime)
	if err != nil {
		return Window{}, err
	}
	if maxCount < 1 {
		return Window{}, fmt.Errorf("%w: max count must be at least 1, got %d", ErrInvalidAvailability, maxCount)
	}
	switch scheduleType {
	case Wave:
		if slotDuration <= 0 {
			return Window{}, fmt.Errorf("%w: %w", ErrInvalidAvailability, slot.ErrInvalidSlotDuration)
		}
	case Stream:
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrUnknownScheduleType, scheduleType)
	}
	return Window{
		Start:        start,
		End:          end,
		SlotDuration: slotDuration,
		MaxCount:     maxCount,
		ScheduleType: scheduleType,
	}, nil
}

func bounds(startTime, endTime string) (slot.MinuteOffset, slot.MinuteOffset, error) {
	start, err := slot.TimeToMinutes(startTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start time: %w", ErrInvalidAvailability, err)
	}
	end, err := slot.TimeToMinutes(endTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end time: %w", ErrInvalidAvailability, err)
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidAvailability, startTime, endTime)
	}
	return start, end, nil
}
