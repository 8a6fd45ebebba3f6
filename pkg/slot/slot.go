package slot

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidSlotDuration = errors.New("invalid slot duration")

// Slot is one bookable interval of a day. End is always Start plus the slot duration
// of the sequence it belongs to.
type Slot struct {
	Start MinuteOffset
	End   MinuteOffset
}

// StartTime returns the start as "HH:MM".
func (s Slot) StartTime() string {
	return MinutesToTime(s.Start)
}

// EndTime returns the end as "HH:MM".
func (s Slot) EndTime() string {
	return MinutesToTime(s.End)
}

// Duration returns the slot length in minutes.
func (s Slot) Duration() int {
	return int(s.End - s.Start)
}

// Sequence is the ordered, contiguous result of a single Generate call.
type Sequence []Slot

// Generate tiles [startTime, endTime) with slots of slotDuration minutes, left to right.
// A trailing remainder shorter than slotDuration is dropped, so no slot ever ends after
// endTime. An end before the start is a valid degenerate window and yields no slots.
func Generate(startTime string, endTime string, slotDuration int) (Sequence, error) {
	if slotDuration <= 0 {
		return nil, fmt.Errorf("%w: %d minutes, must be positive", ErrInvalidSlotDuration, slotDuration)
	}
	start, err := TimeToMinutes(startTime)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	end, err := TimeToMinutes(endTime)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	log.Debugf("Generating slots: %s to %s, duration: %d", startTime, endTime, slotDuration)
	return GenerateBetween(start, end, slotDuration)
}

// GenerateBetween walks raw minute offsets the same way Generate walks clock times.
func GenerateBetween(start MinuteOffset, end MinuteOffset, slotDuration int) (Sequence, error) {
	if slotDuration <= 0 {
		return nil, fmt.Errorf("%w: %d minutes, must be positive", ErrInvalidSlotDuration, slotDuration)
	}
	step := MinuteOffset(slotDuration)
	slots := Sequence{}
	// end-cursor cannot overflow where cursor+step can for huge durations
	for cursor := start; end-cursor >= step; cursor += step {
		slots = append(slots, Slot{Start: cursor, End: cursor + step})
	}
	return slots, nil
}

// Strings renders every slot of the sequence with the given format.
func (seq Sequence) Strings(format Format) ([]string, error) {
	out := make([]string, 0, len(seq))
	for _, s := range seq {
		str, err := s.Format(format)
		if err != nil {
			return nil, err
		}
		out = append(out, str)
	}
	return out, nil
}
