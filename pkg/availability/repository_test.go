package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	day := func(d int, month time.Month) time.Time {
		return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
	}

	fixedId := uuid.New()
	repo := NewMemoryRepository(
		[]WeeklyAvailability{{Id: fixedId, DaysOfWeek: []time.Weekday{time.Monday}, StartTime: "09:00", EndTime: "12:00"}},
		[]CustomAvailability{
			{Date: day(20, time.March), Status: Unavailable},
			{Date: day(10, time.March), Status: Available, StartTime: "14:00", EndTime: "15:00"},
			{Date: day(10, time.March), Status: Unavailable, StartTime: "08:00", EndTime: "09:00"},
			{Date: day(1, time.April), Status: Unavailable},
		},
	)

	t.Run("weekly keeps given id", func(t *testing.T) {
		weekly, err := repo.GetWeekly(ctx)
		require.NoError(t, err)
		require.Len(t, weekly, 1)
		assert.Equal(t, fixedId, weekly[0].Id)
	})

	t.Run("custom gets generated ids", func(t *testing.T) {
		custom, err := repo.GetCustomForMonth(ctx, 2025, time.April)
		require.NoError(t, err)
		require.Len(t, custom, 1)
		assert.NotEqual(t, uuid.Nil, custom[0].Id)
	})

	t.Run("custom for date ordered by start time", func(t *testing.T) {
		custom, err := repo.GetCustomForDate(ctx, day(10, time.March))
		require.NoError(t, err)
		require.Len(t, custom, 2)
		assert.Equal(t, "08:00", custom[0].StartTime)
		assert.Equal(t, "14:00", custom[1].StartTime)
	})

	t.Run("custom for month ordered by date", func(t *testing.T) {
		custom, err := repo.GetCustomForMonth(ctx, 2025, time.March)
		require.NoError(t, err)
		require.Len(t, custom, 3)
		assert.Equal(t, 10, custom[0].Date.Day())
		assert.Equal(t, 10, custom[1].Date.Day())
		assert.Equal(t, 20, custom[2].Date.Day())
	})

	t.Run("empty month is an empty list", func(t *testing.T) {
		custom, err := repo.GetCustomForMonth(ctx, 2024, time.March)
		require.NoError(t, err)
		assert.NotNil(t, custom)
		assert.Empty(t, custom)
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		weekly, _ := repo.GetWeekly(ctx)
		weekly[0].StartTime = "00:00"

		again, _ := repo.GetWeekly(ctx)
		assert.Equal(t, "09:00", again[0].StartTime)
	})

	t.Run("reset drops everything", func(t *testing.T) {
		repo.Reset()

		weekly, _ := repo.GetWeekly(ctx)
		assert.Empty(t, weekly)
		custom, _ := repo.GetCustomForDate(ctx, day(10, time.March))
		assert.Empty(t, custom)
	})
}
