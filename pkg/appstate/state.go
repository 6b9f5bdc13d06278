// Package appstate holds the in-memory store of tasks, schedules and timers,
// its JSON document form, the file it is persisted to, and the lock guarding it.
package appstate

import (
	"errors"
	"fmt"

	"log-manager/pkg/schedule"
	"log-manager/pkg/task"
	"log-manager/pkg/timer"
	"log-manager/pkg/walltime"
)

var (
	// ErrNotFound is returned when an ID is absent from its mapping.
	ErrNotFound = errors.New("not found")
	// ErrMalformed is returned when a required timestamp does not parse.
	ErrMalformed = errors.New("malformed")
)

// State is every record for one user. Keys always equal the record's ID.
type State struct {
	Tasks     map[string]task.Task         `json:"tasks"`
	Schedules map[string]schedule.Schedule `json:"schedules"`
	Timers    map[string]timer.Timer       `json:"timers"`
}

// New returns an empty State.
func New() *State {
	return &State{
		Tasks:     make(map[string]task.Task),
		Schedules: make(map[string]schedule.Schedule),
		Timers:    make(map[string]timer.Timer),
	}
}

// Snapshot returns a deep copy of s.
func (s *State) Snapshot() State {
	out := State{
		Tasks:     make(map[string]task.Task, len(s.Tasks)),
		Schedules: make(map[string]schedule.Schedule, len(s.Schedules)),
		Timers:    make(map[string]timer.Timer, len(s.Timers)),
	}
	for id, t := range s.Tasks {
		out.Tasks[id] = t.Clone()
	}
	for id, sc := range s.Schedules {
		out.Schedules[id] = sc.Clone()
	}
	for id, tm := range s.Timers {
		out.Timers[id] = tm
	}
	return out
}

// AddTask inserts a new task. A due date that does not parse is dropped.
func (s *State) AddTask(title, description string, dueDate *string) task.Task {
	t := task.New(title, description, walltime.ParseOptional(dueDate))
	s.Tasks[t.ID] = t
	return t.Clone()
}

// ToggleTask flips Completed and returns the new value.
func (s *State) ToggleTask(id string) (bool, error) {
	t, ok := s.Tasks[id]
	if !ok {
		return false, notFound("task", id)
	}
	t.Completed = !t.Completed
	s.Tasks[id] = t
	return t.Completed, nil
}

// DeleteTask removes a task or returns ErrNotFound.
func (s *State) DeleteTask(id string) error {
	if _, ok := s.Tasks[id]; !ok {
		return notFound("task", id)
	}
	delete(s.Tasks, id)
	return nil
}

// AddSchedule inserts a new entry. startTime must parse in walltime.Layout;
// an endTime that does not parse is dropped.
func (s *State) AddSchedule(title, description, startTime string, endTime *string, isReminder bool) (schedule.Schedule, error) {
	start, err := walltime.Parse(startTime)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("%w start_time: %w", ErrMalformed, err)
	}
	sc := schedule.New(title, description, start, walltime.ParseOptional(endTime), isReminder)
	s.Schedules[sc.ID] = sc
	return sc.Clone(), nil
}

// DeleteSchedule removes a schedule entry or returns ErrNotFound.
func (s *State) DeleteSchedule(id string) error {
	if _, ok := s.Schedules[id]; !ok {
		return notFound("schedule", id)
	}
	delete(s.Schedules, id)
	return nil
}

// CreateTimer adds a stopped timer. It cannot fail.
func (s *State) CreateTimer(name string, duration uint32, isPomodoro bool) timer.Timer {
	tm := timer.New(name, duration, isPomodoro)
	s.Timers[tm.ID] = tm
	return tm
}

// StartTimer marks the timer running. Starting a running timer is a no-op.
func (s *State) StartTimer(id string) error {
	return s.updateTimer(id, func(tm *timer.Timer) { tm.IsRunning = true })
}

// StopTimer marks the timer stopped. Stopping a stopped timer is a no-op.
func (s *State) StopTimer(id string) error {
	return s.updateTimer(id, func(tm *timer.Timer) { tm.IsRunning = false })
}

// ResetTimer clears Elapsed and stops the timer.
func (s *State) ResetTimer(id string) error {
	return s.updateTimer(id, func(tm *timer.Timer) {
		tm.Elapsed = 0
		tm.IsRunning = false
	})
}

// AdvanceTimer adds seconds to Elapsed, see timer.Timer.Advance.
func (s *State) AdvanceTimer(id string, seconds uint32) (timer.Timer, error) {
	var out timer.Timer
	err := s.updateTimer(id, func(tm *timer.Timer) {
		tm.Advance(seconds)
		out = *tm
	})
	return out, err
}

// DeleteTimer removes a timer or returns ErrNotFound.
func (s *State) DeleteTimer(id string) error {
	if _, ok := s.Timers[id]; !ok {
		return notFound("timer", id)
	}
	delete(s.Timers, id)
	return nil
}

func (s *State) updateTimer(id string, fn func(*timer.Timer)) error {
	tm, ok := s.Timers[id]
	if !ok {
		return notFound("timer", id)
	}
	fn(&tm)
	s.Timers[id] = tm
	return nil
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
