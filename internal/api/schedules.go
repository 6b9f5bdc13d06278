package api

import (
	"log-manager/pkg/appstate"
	"log-manager/pkg/notify"
	"log-manager/pkg/schedule"
)

// AddSchedule creates a schedule entry. startTime must be
// "YYYY-MM-DD HH:MM:SS"; an unparsable endTime is ignored.
func (s *Service) AddSchedule(title, description, startTime string, endTime *string, isReminder bool) (schedule.Schedule, error) {
	var sc schedule.Schedule
	err := s.mutate(notify.KindSchedule, "add", func(st *appstate.State) (string, error) {
		var err error
		sc, err = st.AddSchedule(title, description, startTime, endTime, isReminder)
		return sc.ID, err
	})
	return sc, err
}

// DeleteSchedule removes a schedule entry by ID.
func (s *Service) DeleteSchedule(scheduleID string) error {
	return s.mutate(notify.KindSchedule, "delete", func(st *appstate.State) (string, error) {
		return scheduleID, st.DeleteSchedule(scheduleID)
	})
}
