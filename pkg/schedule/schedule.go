package schedule

import (
	"github.com/google/uuid"

	"log-manager/pkg/walltime"
)

// Schedule is a calendar entry. A reminder marks a single point in time; an
// event may span StartTime to EndTime.
type Schedule struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartTime   walltime.Time  `json:"start_time"`
	EndTime     *walltime.Time `json:"end_time"`
	IsReminder  bool           `json:"is_reminder"`
}

// New builds a schedule entry with a fresh random ID.
func New(title, description string, start walltime.Time, end *walltime.Time, isReminder bool) Schedule {
	return Schedule{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		IsReminder:  isReminder,
	}
}

// Clone returns a copy that shares no memory with s.
func (s Schedule) Clone() Schedule {
	s.EndTime = walltime.Clone(s.EndTime)
	return s
}
