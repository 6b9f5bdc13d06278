package api

import (
	"sync"

	"github.com/rs/zerolog"

	"log-manager/pkg/appstate"
	"log-manager/pkg/notify"
)

// Service is the set of operations the UI layer invokes. Each mutation runs
// under the state guard together with a full save of the document.
type Service struct {
	cell   *appstate.Cell[*appstate.State]
	store  appstate.Persister
	bus    *notify.Bus
	logger zerolog.Logger
}

// New creates a Service over an already guarded state. A nil bus gets a
// fresh one.
func New(cell *appstate.Cell[*appstate.State], store appstate.Persister, bus *notify.Bus, logger zerolog.Logger) *Service {
	if bus == nil {
		bus = notify.NewBus()
	}
	return &Service{
		cell:   cell,
		store:  store,
		bus:    bus,
		logger: logger,
	}
}

// Open loads the state from store and guards it with its own mutex. A load
// failure is logged and the service starts empty.
func Open(store appstate.Persister, bus *notify.Bus, logger zerolog.Logger) *Service {
	state, err := store.Load()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to load app state, starting empty")
	}
	if state == nil {
		state = appstate.New()
	}
	logger.Debug().
		Int("tasks", len(state.Tasks)).
		Int("schedules", len(state.Schedules)).
		Int("timers", len(state.Timers)).
		Msg("loaded app state")
	return New(appstate.NewCell(state, &sync.Mutex{}), store, bus, logger)
}

// GetAppState returns a snapshot of everything.
func (s *Service) GetAppState() (appstate.State, error) {
	var snap appstate.State
	err := s.cell.Do(func(st *appstate.State) error {
		snap = st.Snapshot()
		return nil
	})
	return snap, err
}

// Subscribe returns a channel receiving a Change after every successful
// mutation.
func (s *Service) Subscribe() chan notify.Change {
	return s.bus.Subscribe()
}

// Unsubscribe stops delivery to ch and closes it.
func (s *Service) Unsubscribe(ch chan notify.Change) {
	s.bus.Unsubscribe(ch)
}

// mutate applies fn and saves while holding the guard. fn returns the ID of
// the record it touched. Save failures are logged only; the in-memory
// change stands.
func (s *Service) mutate(kind notify.Kind, op string, fn func(*appstate.State) (string, error)) error {
	var id string
	err := s.cell.Do(func(st *appstate.State) error {
		var err error
		id, err = fn(st)
		if err != nil {
			return err
		}
		s.save(st)
		return nil
	})
	if err != nil {
		s.logger.Debug().
			Err(err).
			Str("kind", string(kind)).
			Str("op", op).
			Msg("operation failed")
		return err
	}

	s.logger.Debug().
		Str("kind", string(kind)).
		Str("op", op).
		Str("id", id).
		Msg("applied")
	s.bus.Publish(notify.Change{Kind: kind, Op: op, ID: id})
	return nil
}

func (s *Service) save(st *appstate.State) {
	if err := s.store.Save(st); err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to save app state")
	}
}
