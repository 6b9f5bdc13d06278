package task

import (
	"time"

	"github.com/google/uuid"

	"log-manager/pkg/walltime"
)

// Task is a to-do item.
type Task struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Completed   bool           `json:"completed"`
	CreatedAt   time.Time      `json:"created_at"` // local zone
	DueDate     *walltime.Time `json:"due_date"`   // nil = no due date
}

// New builds an open task with a fresh random ID, created now.
func New(title, description string, due *walltime.Time) Task {
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().Round(0),
		DueDate:     due,
	}
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	t.DueDate = walltime.Clone(t.DueDate)
	return t
}
