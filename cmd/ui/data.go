package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"log-manager/pkg/notify"
	"log-manager/pkg/schedule"
	"log-manager/pkg/task"
	"log-manager/pkg/timer"
)

// refresh replaces the cached snapshot with the service's current state.
func (ui *UI) refresh() {
	st, err := ui.svc.GetAppState()
	if err != nil {
		ui.fail("load state", err)
		return
	}
	ui.mu.Lock()
	ui.state = st
	ui.mu.Unlock()
}

// watch redraws whenever the service reports a change, from this window or
// the timer ticker.
func (ui *UI) watch(changes <-chan notify.Change) {
	for ch := range changes {
		ui.logger.Trace().
			Str("kind", string(ch.Kind)).
			Str("op", ch.Op).
			Str("id", ch.ID).
			Msg("state changed")
		ui.refresh()
		ui.win.Invalidate()
	}
}

// tickTimers advances every running timer once a second. A finished
// Pomodoro focus block starts a break timer.
func (ui *UI) tickTimers() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		for _, t := range ui.timers() {
			if !t.IsRunning {
				continue
			}
			advanced, err := ui.svc.AdvanceTimer(t.ID, 1)
			if err != nil {
				ui.fail("advance timer", err)
				continue
			}
			if timer.Finished(t, advanced) {
				ui.timerFinished(advanced)
			}
		}
	}
}

func (ui *UI) timerFinished(t timer.Timer) {
	ui.logger.Info().Str("timer", t.ID).Str("name", t.Name).Msg("timer finished")
	if !t.IsPomodoro || t.Duration != timer.PomodoroFocus {
		ui.setStatus(fmt.Sprintf("%s finished", t.Name))
		return
	}
	brk, err := ui.svc.CreateTimer(t.Name+" break", timer.PomodoroBreak, true)
	if err != nil {
		ui.fail("create break", err)
		return
	}
	if err := ui.svc.StartTimer(brk.ID); err != nil {
		ui.fail("start break", err)
		return
	}
	ui.setStatus(fmt.Sprintf("%s finished, break started", t.Name))
}

// do runs a service call off the frame goroutine and reports its error.
func (ui *UI) do(what string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			ui.fail(what, err)
			return
		}
		ui.setStatus("")
	}()
}

func (ui *UI) fail(what string, err error) {
	ui.logger.Error().Err(err).Msg(what)
	ui.setStatus(fmt.Sprintf("%s: %v", what, err))
}

func (ui *UI) setStatus(msg string) {
	ui.mu.Lock()
	ui.status = msg
	ui.mu.Unlock()
	ui.win.Invalidate()
}

func (ui *UI) tasks() []task.Task {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	out := values(ui.state.Tasks)
	slices.SortFunc(out, func(a, b task.Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func (ui *UI) schedules() []schedule.Schedule {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	out := values(ui.state.Schedules)
	slices.SortFunc(out, func(a, b schedule.Schedule) int {
		return a.StartTime.Compare(b.StartTime.Time)
	})
	return out
}

func (ui *UI) timers() []timer.Timer {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	out := values(ui.state.Timers)
	slices.SortFunc(out, func(a, b timer.Timer) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})
	return out
}

func values[T any](m map[string]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// optional maps an empty editor to "not given".
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
