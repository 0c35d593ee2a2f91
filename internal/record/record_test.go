package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/timereport/internal/clock"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "clock face",
			line: "9:00am,5:00pm",
			want: Record{TextA: "9:00am", ValueA: 540, TextB: "5:00pm", ValueB: 1020, Format: clock.ClockFace},
		},
		{
			name: "iso like",
			line: "2024-01-01 08:15,2024-01-01 20:45",
			want: Record{TextA: "2024-01-01 08:15", ValueA: 495, TextB: "2024-01-01 20:45", ValueB: 1245, Format: clock.IsoLike},
		},
		{
			name: "text kept verbatim",
			line: " 9:00 am , 5:00 PM",
			want: Record{TextA: " 9:00 am ", ValueA: 540, TextB: " 5:00 PM", ValueB: 1020, Format: clock.ClockFace},
		},
		{
			name: "midnight wraps to zero",
			line: "11:59pm,12:00am",
			want: Record{TextA: "11:59pm", ValueA: 1439, TextB: "12:00am", ValueB: 0, Format: clock.ClockFace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"no comma", "9:00am 5:00pm", ErrMissingComma},
		{"empty", "", ErrMissingComma},
		{"bad first field", "9:00,5:00pm", clock.ErrMalformedTime},
		{"bad second field", "9:00am,", clock.ErrMalformedTime},
		{"extra comma", "9:00am,5:00pm,6:00pm", clock.ErrMalformedTime},
		{"mixed formats", "9:00am,2024-01-01 08:15", clock.ErrMalformedTime},
		{"out of range", "13:00am,5:00pm", clock.ErrOutOfRange},
		{"iso out of range", "2024-01-01 08:15,2024-01-01 24:00", clock.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecord_EarlierLater(t *testing.T) {
	t.Run("A earlier", func(t *testing.T) {
		rec := Record{TextA: "a", ValueA: 10, TextB: "b", ValueB: 20}
		assert.Equal(t, "a", rec.Earlier())
		assert.Equal(t, "b", rec.Later())
		assert.NotEqual(t, rec.Earlier(), rec.Later())
	})

	t.Run("B earlier", func(t *testing.T) {
		rec := Record{TextA: "a", ValueA: 30, TextB: "b", ValueB: 20}
		assert.Equal(t, "b", rec.Earlier())
		assert.Equal(t, "a", rec.Later())
	})

	t.Run("tie resolves to B both ways", func(t *testing.T) {
		rec, err := Build("12:00pm,12:00 PM")
		require.NoError(t, err)
		assert.Equal(t, "12:00 PM", rec.Earlier())
		assert.Equal(t, "12:00 PM", rec.Later())
	})
}

func TestLineError(t *testing.T) {
	err := &LineError{Line: 3, Text: "bad", Err: ErrMissingComma}

	assert.Equal(t, `line 3 "bad": line has no comma separator`, err.Error())
	assert.ErrorIs(t, err, ErrMissingComma)

	var lineErr *LineError
	wrapped := errors.Join(errors.New("ingest"), err)
	require.ErrorAs(t, wrapped, &lineErr)
	assert.Equal(t, 3, lineErr.Line)
}
