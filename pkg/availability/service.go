package availability

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotbook/slotbook/internal/utils"
	"github.com/slotbook/slotbook/pkg/slot"
)

type Service interface {
	GetWeekly(ctx context.Context) ([]WeeklyAvailability, error)
	// DayWindows resolves the weekly rules and the date's exceptions into availability windows.
	DayWindows(ctx context.Context, date time.Time) ([]Window, error)
	DaySlots(ctx context.Context, date time.Time) ([]BookableSlot, error)
	// WeekPreview returns the bookable slots of every day of the week containing date.
	WeekPreview(ctx context.Context, date time.Time) ([]DayPreview, error)
	CustomForMonth(ctx context.Context, year int, month time.Month) ([]CustomAvailability, error)
	// OpenDates lists the dates of the month that have at least one bookable slot.
	OpenDates(ctx context.Context, year int, month time.Month) ([]DaySummary, error)
	GenerateSlots(ctx context.Context, startTime string, endTime string, slotDuration int, format slot.Format) ([]string, error)
	Today() time.Time
	Location() *time.Location
}

// DayPreview is one day of a week preview.
type DayPreview struct {
	Date  time.Time
	Slots []BookableSlot
}

// DaySummary is one open date of a month overview.
type DaySummary struct {
	Date      time.Time
	SlotCount int
	// Capacity sums AvailableCapacity over the slots of the date.
	Capacity int
}

type ServiceImpl struct {
	repo         Repository
	clock        utils.Clock
	location     *time.Location
	weekFirstDay time.Weekday
}

func NewService(repo Repository, clock utils.Clock, location *time.Location, weekFirstDay time.Weekday) *ServiceImpl {
	if location == nil {
		location = time.Local
	}
	return &ServiceImpl{
		repo:         repo,
		clock:        clock,
		location:     location,
		weekFirstDay: weekFirstDay,
	}
}

func (s *ServiceImpl) GetWeekly(ctx context.Context) ([]WeeklyAvailability, error) {
	return s.repo.GetWeekly(ctx)
}

func (s *ServiceImpl) DayWindows(ctx context.Context, date time.Time) ([]Window, error) {
	day := StartOfDay(date, s.location)

	rules, err := s.repo.GetWeekly(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly availability: %w", err)
	}
	exceptions, err := s.repo.GetCustomForDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get custom availability for %s: %w", day.Format(DateLayout), err)
	}
	if len(exceptions) > 0 {
		log.Debugf("applying %d custom availability exception(s) on %s", len(exceptions), day.Format(DateLayout))
	}
	return applyExceptions(weeklyWindows(rules, day.Weekday()), exceptions), nil
}

func (s *ServiceImpl) DaySlots(ctx context.Context, date time.Time) ([]BookableSlot, error) {
	windows, err := s.DayWindows(ctx, date)
	if err != nil {
		return nil, err
	}
	slots, err := bookableSlots(windows)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slots for %s: %w", date.Format(DateLayout), err)
	}
	return slots, nil
}

func (s *ServiceImpl) WeekPreview(ctx context.Context, date time.Time) ([]DayPreview, error) {
	start := WeekStart(date, s.weekFirstDay, s.location)
	days := make([]DayPreview, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		slots, err := s.DaySlots(ctx, day)
		if err != nil {
			return nil, err
		}
		days = append(days, DayPreview{Date: day, Slots: slots})
	}
	return days, nil
}

func (s *ServiceImpl) CustomForMonth(ctx context.Context, year int, month time.Month) ([]CustomAvailability, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidAvailability, month)
	}
	return s.repo.GetCustomForMonth(ctx, year, month)
}

func (s *ServiceImpl) OpenDates(ctx context.Context, year int, month time.Month) ([]DaySummary, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidAvailability, month)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, s.location)
	last := first.AddDate(0, 1, -1)

	rules, err := s.repo.GetWeekly(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly availability: %w", err)
	}
	exceptions, err := s.repo.GetCustomForMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get custom availability for %d-%02d: %w", year, month, err)
	}
	dates, err := candidateDates(rules, exceptions, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to expand weekly availability: %w", err)
	}

	summaries := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		// timed exceptions may still empty a candidate date
		slots, err := s.DaySlots(ctx, date)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			continue
		}
		summary := DaySummary{Date: date, SlotCount: len(slots)}
		for _, sl := range slots {
			summary.Capacity += sl.AvailableCapacity
		}
		summaries = append(summaries, summary)
	}
	log.Debugf("%d open date(s) in %d-%02d", len(summaries), year, month)
	return summaries, nil
}

func (s *ServiceImpl) GenerateSlots(
	_ context.Context,
	startTime string,
	endTime string,
	slotDuration int,
	format slot.Format,
) ([]string, error) {
	seq, err := slot.Generate(startTime, endTime, slotDuration)
	if err != nil {
		return nil, err
	}
	return seq.Strings(format)
}

// Today is the current date in the service location.
func (s *ServiceImpl) Today() time.Time {
	return StartOfDay(s.clock.Now(), s.location)
}

// Location is the timezone calendar dates are interpreted in.
func (s *ServiceImpl) Location() *time.Location {
	return s.location
}
