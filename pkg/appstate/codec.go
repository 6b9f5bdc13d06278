package appstate

import (
	"encoding/json"
	"fmt"
	"time"
)

// Encode renders s as one indented JSON document.
func Encode(s *State) ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return b, nil
}

// Decode parses a document written by Encode. Missing mappings come back
// empty, task creation times are moved into the local zone, and a record
// whose id disagrees with its key takes the key.
func Decode(b []byte) (*State, error) {
	s := New()
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	fresh := New()
	if s.Tasks == nil {
		s.Tasks = fresh.Tasks
	}
	if s.Schedules == nil {
		s.Schedules = fresh.Schedules
	}
	if s.Timers == nil {
		s.Timers = fresh.Timers
	}
	for id, t := range s.Tasks {
		t.ID = id
		t.CreatedAt = t.CreatedAt.In(time.Local)
		s.Tasks[id] = t
	}
	for id, sc := range s.Schedules {
		sc.ID = id
		s.Schedules[id] = sc
	}
	for id, tm := range s.Timers {
		tm.ID = id
		s.Timers[id] = tm
	}
	return s, nil
}
