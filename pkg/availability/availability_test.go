package availability

import (
	"testing"
	"time"

	"github.com/slotbook/slotbook/pkg/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayOfWeek(t *testing.T) {
	tests := []struct {
		token string
		want  time.Weekday
	}{
		{"MONDAY", time.Monday},
		{"mon", time.Monday},
		{"Tues", time.Tuesday},
		{"wednesday", time.Wednesday},
		{"thurs", time.Thursday},
		{" Fri ", time.Friday},
		{"SAT", time.Saturday},
		{"Sunday", time.Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseDayOfWeek(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseDayOfWeek("someday")
		assert.ErrorIs(t, err, ErrUnknownDay)
	})
}

func TestParseScheduleTypeAndStatus(t *testing.T) {
	st, err := ParseScheduleType("wave")
	require.NoError(t, err)
	assert.Equal(t, Wave, st)

	st, err = ParseScheduleType("STREAM")
	require.NoError(t, err)
	assert.Equal(t, Stream, st)

	_, err = ParseScheduleType("burst")
	assert.ErrorIs(t, err, ErrUnknownScheduleType)

	status, err := ParseStatus("unavailable")
	require.NoError(t, err)
	assert.Equal(t, Unavailable, status)

	_, err = ParseStatus("maybe")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestWeeklyAvailability_Validate(t *testing.T) {
	valid := WeeklyAvailability{
		DaysOfWeek:   []time.Weekday{time.Monday},
		StartTime:    "09:00",
		EndTime:      "12:00",
		SlotDuration: 30,
		MaxCount:     1,
		ScheduleType: Wave,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(w *WeeklyAvailability)
		target error
	}{
		{"no days", func(w *WeeklyAvailability) { w.DaysOfWeek = nil }, ErrInvalidAvailability},
		{"bad start", func(w *WeeklyAvailability) { w.StartTime = "9:00" }, slot.ErrInvalidTimeFormat},
		{"end before start", func(w *WeeklyAvailability) { w.EndTime = "08:00" }, ErrInvalidAvailability},
		{"equal bounds", func(w *WeeklyAvailability) { w.EndTime = "09:00" }, ErrInvalidAvailability},
		{"zero max count", func(w *WeeklyAvailability) { w.MaxCount = 0 }, ErrInvalidAvailability},
		{"wave without duration", func(w *WeeklyAvailability) { w.SlotDuration = 0 }, slot.ErrInvalidSlotDuration},
		{"unknown type", func(w *WeeklyAvailability) { w.ScheduleType = "BURST" }, ErrUnknownScheduleType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := valid
			tt.modify(&rule)
			assert.ErrorIs(t, rule.Validate(), tt.target)
		})
	}

	t.Run("stream ignores slot duration", func(t *testing.T) {
		rule := valid
		rule.ScheduleType = Stream
		rule.SlotDuration = 0
		assert.NoError(t, rule.Validate())
	})
}

func TestCustomAvailability_Validate(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("unavailable all day needs only a date", func(t *testing.T) {
		c := CustomAvailability{Date: date, Status: Unavailable, Reason: "Holiday"}
		assert.True(t, c.AllDay())
		assert.NoError(t, c.Validate())
	})

	t.Run("unavailable timed block", func(t *testing.T) {
		c := CustomAvailability{Date: date, Status: Unavailable, StartTime: "10:00", EndTime: "11:00"}
		assert.NoError(t, c.Validate())

		c.EndTime = "10:00"
		assert.ErrorIs(t, c.Validate(), ErrInvalidAvailability)
	})

	t.Run("available needs a full window", func(t *testing.T) {
		c := CustomAvailability{Date: date, Status: Available}
		assert.ErrorIs(t, c.Validate(), ErrInvalidAvailability)

		c.StartTime = "13:00"
		c.EndTime = "15:00"
		c.SlotDuration = 20
		c.MaxCount = 3
		c.ScheduleType = Wave
		assert.NoError(t, c.Validate())
	})

	t.Run("half-specified times", func(t *testing.T) {
		tests := []CustomAvailability{
			{Date: date, Status: Unavailable, StartTime: "10:00"},
			{Date: date, Status: Unavailable, EndTime: "11:00"},
			{Date: date, Status: Available, StartTime: "10:00", MaxCount: 1, ScheduleType: Stream},
			{Date: date, Status: Unavailable, StartTime: "10am", EndTime: "11:00"},
		}
		for _, c := range tests {
			err := c.Validate()
			assert.ErrorIs(t, err, ErrInvalidAvailability)
			assert.ErrorContains(t, err, "must both be HH:MM")
		}
	})

	t.Run("missing date", func(t *testing.T) {
		c := CustomAvailability{Status: Unavailable}
		assert.ErrorIs(t, c.Validate(), ErrInvalidAvailability)
	})

	t.Run("unknown status", func(t *testing.T) {
		c := CustomAvailability{Date: date, Status: "MAYBE"}
		assert.ErrorIs(t, c.Validate(), ErrUnknownStatus)
	})
}
