package slot

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown slot format")

// Format selects how a slot is rendered for display.
type Format string

const (
	// FormatClock renders "HH:MM - HH:MM". This is what booking screens show.
	FormatClock Format = "clock"
	// FormatRawOffset renders "<startMinutes> - <endMinutes>" with bare minute offsets.
	FormatRawOffset Format = "raw"
)

// ParseFormat maps a configuration or query value to a Format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatClock:
		return FormatClock, nil
	case FormatRawOffset:
		return FormatRawOffset, nil
	}
	return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownFormat, value, FormatClock, FormatRawOffset)
}

// Format renders the slot. An unknown format is an error, never a fallback.
func (s Slot) Format(format Format) (string, error) {
	switch format {
	case FormatClock:
		return s.StartTime() + " - " + s.EndTime(), nil
	case FormatRawOffset:
		return fmt.Sprintf("%d - %d", int(s.Start), int(s.End)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// String uses the clock format.
func (s Slot) String() string {
	return s.StartTime() + " - " + s.EndTime()
}
