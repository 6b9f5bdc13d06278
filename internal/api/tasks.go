package api

import (
	"log-manager/pkg/appstate"
	"log-manager/pkg/notify"
	"log-manager/pkg/task"
)

// AddTask creates a task. dueDate is "YYYY-MM-DD HH:MM:SS"; anything else is
// ignored.
func (s *Service) AddTask(title, description string, dueDate *string) (task.Task, error) {
	var t task.Task
	err := s.mutate(notify.KindTask, "add", func(st *appstate.State) (string, error) {
		t = st.AddTask(title, description, dueDate)
		return t.ID, nil
	})
	return t, err
}

// ToggleTask flips the task's completed flag and returns the new value.
func (s *Service) ToggleTask(taskID string) (bool, error) {
	var completed bool
	err := s.mutate(notify.KindTask, "toggle", func(st *appstate.State) (string, error) {
		var err error
		completed, err = st.ToggleTask(taskID)
		return taskID, err
	})
	return completed, err
}

// DeleteTask removes a task by ID.
func (s *Service) DeleteTask(taskID string) error {
	return s.mutate(notify.KindTask, "delete", func(st *appstate.State) (string, error) {
		return taskID, st.DeleteTask(taskID)
	})
}
