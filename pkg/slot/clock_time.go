package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

// MinuteOffset is the number of minutes elapsed since 00:00 of a day.
type MinuteOffset int

// MinutesPerDay bounds a single-day schedule: valid clock times map to [0, MinutesPerDay).
const MinutesPerDay MinuteOffset = 24 * 60

// TimeToMinutes converts a zero-padded 24h "HH:MM" string to minutes since midnight.
// Anything that is not two numeric parts of two digits each, or that falls outside
// 00:00-23:59, fails with ErrInvalidTimeFormat.
func TimeToMinutes(clockTime string) (MinuteOffset, error) {
	parts := strings.Split(clockTime, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q must be HH:MM", ErrInvalidTimeFormat, clockTime)
	}
	hours, err := parseTwoDigits(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q has invalid hours: %v", ErrInvalidTimeFormat, clockTime, err)
	}
	minutes, err := parseTwoDigits(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q has invalid minutes: %v", ErrInvalidTimeFormat, clockTime, err)
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidTimeFormat, clockTime)
	}
	return MinuteOffset(hours*60 + minutes), nil
}

// parseTwoDigits accepts exactly two ASCII digits; no sign, no padding spaces.
func parseTwoDigits(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("expected 2 digits, got %q", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric %q", s)
		}
	}
	return strconv.Atoi(s)
}

// MinutesToTime renders an offset as "HH:MM". Offsets of a day or more keep counting
// hours past 23 ("24:00", "25:30"); there is no wraparound.
func MinutesToTime(minutes MinuteOffset) string {
	h := int(minutes) / 60
	m := int(minutes) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ValidClockTime reports whether s is a well-formed "HH:MM" time of day.
func ValidClockTime(s string) bool {
	_, err := TimeToMinutes(s)
	return err == nil
}

// Hour returns the hour component of an offset.
func (m MinuteOffset) Hour() int {
	return int(m / 60)
}

// String returns the clock representation of the offset.
func (m MinuteOffset) String() string {
	return MinutesToTime(m)
}
