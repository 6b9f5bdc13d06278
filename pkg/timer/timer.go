package timer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Pomodoro phase lengths in seconds.
const (
	PomodoroFocus = 25 * 60
	PomodoroBreak = 5 * 60
)

// Timer counts toward Duration. Elapsed is advanced by whoever runs the
// ticking loop; the store only records it.
type Timer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Duration   uint32 `json:"duration"` // seconds
	Elapsed    uint32 `json:"elapsed"`  // seconds
	IsRunning  bool   `json:"is_running"`
	IsPomodoro bool   `json:"is_pomodoro"`
}

// MaxMinutes is the longest duration, in minutes, that fits in Duration.
const MaxMinutes = math.MaxUint32 / 60

// ErrInvalidMinutes is returned by ParseMinutes.
var ErrInvalidMinutes = errors.New("invalid minutes")

// New builds a stopped timer with nothing elapsed.
func New(name string, duration uint32, isPomodoro bool) Timer {
	return Timer{
		ID:         uuid.NewString(),
		Name:       name,
		Duration:   duration,
		IsPomodoro: isPomodoro,
	}
}

// Remaining is the number of seconds left before the timer finishes.
func (t Timer) Remaining() uint32 {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Done reports whether the timer has reached its duration.
func (t Timer) Done() bool {
	return t.Elapsed >= t.Duration
}

// Advance adds seconds to Elapsed, clamped at Duration. A timer that reaches
// its duration stops running.
func (t *Timer) Advance(seconds uint32) {
	if seconds > t.Remaining() {
		t.Elapsed = t.Duration
	} else {
		t.Elapsed += seconds
	}
	if t.Done() {
		t.IsRunning = false
	}
}

// Finished reports whether moving from before to after completed the timer.
// A timer that was already done before is not finished again.
func Finished(before, after Timer) bool {
	return !before.Done() && after.Done()
}

// ParseMinutes converts a whole number of minutes to seconds.
func ParseMinutes(s string) (uint32, error) {
	m, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || m == 0 || m > MaxMinutes {
		return 0, fmt.Errorf("%w %q", ErrInvalidMinutes, s)
	}
	return uint32(m) * 60, nil
}

// Clock renders seconds as MM:SS, or H:MM:SS from an hour up.
func Clock(seconds uint32) string {
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
