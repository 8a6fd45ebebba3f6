package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/slotbook/slotbook/internal/config"
)

// LocationFromConfig resolves the configured timezone; empty means UTC.
func LocationFromConfig(cfg config.Availability) (*time.Location, error) {
	if cfg.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return loc, nil
}

// WeekFirstDayFromConfig parses the configured first day of the week; empty means Monday.
func WeekFirstDayFromConfig(cfg config.Availability) (time.Weekday, error) {
	if cfg.WeekFirstDay == "" {
		return time.Monday, nil
	}
	return ParseDayOfWeek(cfg.WeekFirstDay)
}

// RulesFromConfig converts and validates the configured rules. Custom dates are
// interpreted in loc. The first invalid rule aborts the conversion.
func RulesFromConfig(cfg config.Availability, loc *time.Location) ([]WeeklyAvailability, []CustomAvailability, error) {
	weekly := make([]WeeklyAvailability, 0, len(cfg.Weekly))
	for i, rule := range cfg.Weekly {
		w, err := weeklyFromConfig(rule)
		if err != nil {
			return nil, nil, fmt.Errorf("weekly availability #%d: %w", i+1, err)
		}
		weekly = append(weekly, w)
	}

	custom := make([]CustomAvailability, 0, len(cfg.Custom))
	for i, rule := range cfg.Custom {
		c, err := customFromConfig(rule, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("custom availability #%d: %w", i+1, err)
		}
		custom = append(custom, c)
	}
	return weekly, custom, nil
}

func weeklyFromConfig(rule config.WeeklyRule) (WeeklyAvailability, error) {
	days := make([]time.Weekday, 0, len(rule.DaysOfWeek))
	for _, token := range rule.DaysOfWeek {
		d, err := ParseDayOfWeek(token)
		if err != nil {
			return WeeklyAvailability{}, err
		}
		days = append(days, d)
	}
	scheduleType, err := scheduleTypeOrDefault(rule.ScheduleType)
	if err != nil {
		return WeeklyAvailability{}, err
	}

	w := WeeklyAvailability{
		DaysOfWeek:   days,
		StartTime:    rule.StartTime,
		EndTime:      rule.EndTime,
		SlotDuration: rule.SlotDuration,
		MaxCount:     rule.MaxCount,
		ScheduleType: scheduleType,
	}
	if err := w.Validate(); err != nil {
		return WeeklyAvailability{}, err
	}
	return w, nil
}

func customFromConfig(rule config.CustomRule, loc *time.Location) (CustomAvailability, error) {
	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(rule.Date), loc)
	if err != nil {
		return CustomAvailability{}, fmt.Errorf("%w: date %q must be in YYYY-MM-DD format", ErrInvalidAvailability, rule.Date)
	}
	status, err := ParseStatus(rule.Status)
	if err != nil {
		return CustomAvailability{}, err
	}

	c := CustomAvailability{
		Date:         date,
		Status:       status,
		Reason:       rule.Reason,
		StartTime:    rule.StartTime,
		EndTime:      rule.EndTime,
		SlotDuration: rule.SlotDuration,
		MaxCount:     rule.MaxCount,
	}
	if status == Available {
		if c.ScheduleType, err = scheduleTypeOrDefault(rule.ScheduleType); err != nil {
			return CustomAvailability{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return CustomAvailability{}, err
	}
	return c, nil
}

func scheduleTypeOrDefault(value string) (ScheduleType, error) {
	if value == "" {
		return Wave, nil
	}
	return ParseScheduleType(value)
}
