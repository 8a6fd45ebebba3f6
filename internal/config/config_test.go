package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYaml = `
addr: ":8282"
slots:
  defaultformat: raw
availability:
  timezone: Europe/Warsaw
  weekly:
    - dayofweek: [MONDAY, WEDNESDAY]
      starttime: "09:00"
      endtime: "12:00"
      slotduration: 30
      maxcount: 2
      scheduletype: WAVE
  custom:
    - date: "2025-12-25"
      status: UNAVAILABLE
      reason: Holiday
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8181", cfg.Addr)
	assert.Equal(t, "clock", cfg.Slots.DefaultFormat)
	assert.Equal(t, 30, cfg.Slots.DefaultDuration)
	assert.Equal(t, "UTC", cfg.Availability.Timezone)
	assert.Equal(t, "MONDAY", cfg.Availability.WeekFirstDay)
	assert.Empty(t, cfg.Availability.Weekly)
	assert.Empty(t, cfg.Availability.Custom)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYaml), 0o600))

	t.Setenv("SLOTBOOK_ADDR", ":9090")
	t.Setenv("SLOTBOOK_SLOTS_DEFAULTDURATION", "15")
	t.Setenv("SLOTBOOK_AVAILABILITY_WEEKFIRSTDAY", "SUNDAY")

	cfg, err := Load(path)
	require.NoError(t, err)

	// env wins over file, file wins over defaults
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "raw", cfg.Slots.DefaultFormat)
	assert.Equal(t, 15, cfg.Slots.DefaultDuration)
	assert.Equal(t, "Europe/Warsaw", cfg.Availability.Timezone)
	assert.Equal(t, "SUNDAY", cfg.Availability.WeekFirstDay)

	require.Len(t, cfg.Availability.Weekly, 1)
	assert.Equal(t, WeeklyRule{
		DaysOfWeek:   []string{"MONDAY", "WEDNESDAY"},
		StartTime:    "09:00",
		EndTime:      "12:00",
		SlotDuration: 30,
		MaxCount:     2,
		ScheduleType: "WAVE",
	}, cfg.Availability.Weekly[0])

	require.Len(t, cfg.Availability.Custom, 1)
	assert.Equal(t, "2025-12-25", cfg.Availability.Custom[0].Date)
	assert.Equal(t, "UNAVAILABLE", cfg.Availability.Custom[0].Status)
	assert.Equal(t, "Holiday", cfg.Availability.Custom[0].Reason)
}

func TestLoad_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
