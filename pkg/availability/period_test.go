package availability

import (
	"testing"
	"time"

	"github.com/slotbook/slotbook/pkg/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		start slot.MinuteOffset
		want  Period
	}{
		{0, Morning},
		{11*60 + 59, Morning},
		{12 * 60, Afternoon},
		{16*60 + 59, Afternoon},
		{17 * 60, Evening},
		{23 * 60, Evening},
	}
	for _, tt := range tests {
		t.Run(tt.start.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodOf(tt.start))
		})
	}
}

func TestGroupByPeriod(t *testing.T) {
	monday := []time.Weekday{time.Monday}
	rules := []WeeklyAvailability{
		{DaysOfWeek: monday, StartTime: "18:00", EndTime: "20:00"},
		{DaysOfWeek: monday, StartTime: "09:00", EndTime: "10:00"},
		{DaysOfWeek: monday, StartTime: "08:00", EndTime: "09:00"},
		{DaysOfWeek: monday, StartTime: "noon", EndTime: "13:00"},
	}

	groups := GroupByPeriod(rules)

	require.Len(t, groups, 2)
	assert.Equal(t, Morning, groups[0].Period)
	require.Len(t, groups[0].Rules, 2)
	assert.Equal(t, "09:00", groups[0].Rules[0].StartTime)
	assert.Equal(t, "08:00", groups[0].Rules[1].StartTime)
	assert.Equal(t, Evening, groups[1].Period)
	assert.Len(t, groups[1].Rules, 1)
}

func TestGroupByPeriod_Empty(t *testing.T) {
	assert.Empty(t, GroupByPeriod(nil))
}
