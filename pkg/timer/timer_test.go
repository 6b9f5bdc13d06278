package timer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tm := New("tea", 180, false)
	assert.Len(t, tm.ID, 36)
	assert.Equal(t, "tea", tm.Name)
	assert.Equal(t, uint32(180), tm.Duration)
	assert.Zero(t, tm.Elapsed)
	assert.False(t, tm.IsRunning)
	assert.False(t, tm.IsPomodoro)

	assert.NotEqual(t, tm.ID, New("tea", 180, false).ID)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name        string
		duration    uint32
		elapsed     uint32
		step        uint32
		wantElapsed uint32
		wantRunning bool
	}{
		{"partial", 60, 0, 10, 10, true},
		{"exact finish", 60, 50, 10, 60, false},
		{"clamped", 60, 50, 30, 60, false},
		{"overflow step", 60, 1, math.MaxUint32, 60, false},
		{"zero step", 60, 5, 0, 5, true},
		{"zero duration", 0, 0, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Timer{Duration: tt.duration, Elapsed: tt.elapsed, IsRunning: true}
			tm.Advance(tt.step)
			assert.Equal(t, tt.wantElapsed, tm.Elapsed)
			assert.Equal(t, tt.wantRunning, tm.IsRunning)
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, uint32(PomodoroFocus), Timer{Duration: PomodoroFocus}.Remaining())
	assert.Equal(t, uint32(0), Timer{Duration: 10, Elapsed: 20}.Remaining())
	assert.True(t, Timer{Duration: 10, Elapsed: 10}.Done())
}

func TestFinished(t *testing.T) {
	running := Timer{Duration: 60, Elapsed: 59, IsRunning: true}
	after := running
	after.Advance(1)
	assert.True(t, Finished(running, after))

	// Restarting a timer that already ran out does not finish it twice.
	stale := Timer{Duration: 60, Elapsed: 60, IsRunning: true}
	again := stale
	again.Advance(1)
	assert.False(t, again.IsRunning)
	assert.False(t, Finished(stale, again))

	partial := Timer{Duration: 60, Elapsed: 10, IsRunning: true}
	next := partial
	next.Advance(1)
	assert.False(t, Finished(partial, next))
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"25", 1500, false},
		{" 5 ", 300, false},
		{"71582788", 71582788 * 60, false},
		{"71582789", 0, true},
		{"4294967295", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinutes(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMinutes)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{PomodoroFocus, "25:00"},
		{90 * 60, "1:30:00"},
		{3661, "1:01:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock(tt.in), "Clock(%d)", tt.in)
	}
}
