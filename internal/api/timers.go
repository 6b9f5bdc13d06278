package api

import (
	"log-manager/pkg/appstate"
	"log-manager/pkg/notify"
	"log-manager/pkg/timer"
)

// CreateTimer adds a stopped timer of duration seconds.
func (s *Service) CreateTimer(name string, duration uint32, isPomodoro bool) (timer.Timer, error) {
	var tm timer.Timer
	err := s.mutate(notify.KindTimer, "create", func(st *appstate.State) (string, error) {
		tm = st.CreateTimer(name, duration, isPomodoro)
		return tm.ID, nil
	})
	return tm, err
}

// StartTimer marks a timer running. Starting a running timer is a no-op.
func (s *Service) StartTimer(timerID string) error {
	return s.mutate(notify.KindTimer, "start", func(st *appstate.State) (string, error) {
		return timerID, st.StartTimer(timerID)
	})
}

// StopTimer marks a timer stopped.
func (s *Service) StopTimer(timerID string) error {
	return s.mutate(notify.KindTimer, "stop", func(st *appstate.State) (string, error) {
		return timerID, st.StopTimer(timerID)
	})
}

// ResetTimer clears elapsed time and stops the timer.
func (s *Service) ResetTimer(timerID string) error {
	return s.mutate(notify.KindTimer, "reset", func(st *appstate.State) (string, error) {
		return timerID, st.ResetTimer(timerID)
	})
}

// AdvanceTimer records seconds of progress; the timer stops once it reaches
// its duration.
func (s *Service) AdvanceTimer(timerID string, seconds uint32) (timer.Timer, error) {
	var tm timer.Timer
	err := s.mutate(notify.KindTimer, "advance", func(st *appstate.State) (string, error) {
		var err error
		tm, err = st.AdvanceTimer(timerID, seconds)
		return timerID, err
	})
	return tm, err
}

// DeleteTimer removes a timer by ID.
func (s *Service) DeleteTimer(timerID string) error {
	return s.mutate(notify.KindTimer, "delete", func(st *appstate.State) (string, error) {
		return timerID, st.DeleteTimer(timerID)
	})
}
