package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"clock", FormatClock, false},
		{"CLOCK", FormatClock, false},
		{" raw ", FormatRawOffset, false},
		{"raw", FormatRawOffset, false},
		{"", "", true},
		{"minutes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlot_Format(t *testing.T) {
	s := Slot{Start: 540, End: 600}

	clock, err := s.Format(FormatClock)
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 10:00", clock)
	assert.Equal(t, clock, s.String())

	raw, err := s.Format(FormatRawOffset)
	require.NoError(t, err)
	assert.Equal(t, "540 - 600", raw)

	_, err = s.Format("")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSlot_Accessors(t *testing.T) {
	s := Slot{Start: 5, End: 50}

	assert.Equal(t, "00:05", s.StartTime())
	assert.Equal(t, "00:50", s.EndTime())
	assert.Equal(t, 45, s.Duration())
}
