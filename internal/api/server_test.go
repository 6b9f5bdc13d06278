package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"log-manager/pkg/appstate"
	"log-manager/pkg/notify"
)

// --- Fake persister ---

type fakeStore struct {
	mu      sync.Mutex
	loaded  *appstate.State
	loadErr error
	saveErr error
	saves   int
	last    []byte
}

func (f *fakeStore) Load() (*appstate.State, error) {
	if f.loaded == nil {
		return appstate.New(), f.loadErr
	}
	return f.loaded, f.loadErr
}

func (f *fakeStore) Save(s *appstate.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	b, err := appstate.Encode(s)
	if err != nil {
		return err
	}
	f.last = b
	return nil
}

func (f *fakeStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

func (f *fakeStore) lastState(t *testing.T) appstate.State {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotNil(t, f.last, "nothing saved")
	s, err := appstate.Decode(f.last)
	require.NoError(t, err)
	return s.Snapshot()
}

// newTestService logs into a buffer. Writes go through SyncWriter because
// mutate logs after releasing the guard.
func newTestService(t *testing.T, store *fakeStore) (*Service, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	return Open(store, nil, zerolog.New(zerolog.SyncWriter(&logs))), &logs
}

func strPtr(s string) *string { return &s }

// --- Tests ---

func TestOpenEmpty(t *testing.T) {
	svc, logs := newTestService(t, &fakeStore{})
	st, err := svc.GetAppState()
	require.NoError(t, err)
	assert.Empty(t, st.Tasks)
	assert.Empty(t, st.Schedules)
	assert.Empty(t, st.Timers)
	assert.NotContains(t, logs.String(), `"level":"error"`)
}

func TestOpenLoadFailureStartsEmpty(t *testing.T) {
	svc, logs := newTestService(t, &fakeStore{loadErr: errors.New("parse app_data.json: bad")})
	st, err := svc.GetAppState()
	require.NoError(t, err)
	assert.Empty(t, st.Tasks)
	assert.Contains(t, logs.String(), "failed to load app state")
}

func TestEveryMutationSaves(t *testing.T) {
	store := &fakeStore{}
	svc, _ := newTestService(t, store)

	tk, err := svc.AddTask("write", "", strPtr("2024-01-20 17:00:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, store.saveCount())
	assert.Contains(t, store.lastState(t).Tasks, tk.ID)

	completed, err := svc.ToggleTask(tk.ID)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.True(t, store.lastState(t).Tasks[tk.ID].Completed)

	sc, err := svc.AddSchedule("standup", "", "2024-01-15 09:00:00", nil, false)
	require.NoError(t, err)
	tm, err := svc.CreateTimer("focus", 1500, true)
	require.NoError(t, err)
	require.NoError(t, svc.StartTimer(tm.ID))
	assert.True(t, store.lastState(t).Timers[tm.ID].IsRunning)
	_, err = svc.AdvanceTimer(tm.ID, 60)
	require.NoError(t, err)
	require.NoError(t, svc.StopTimer(tm.ID))
	require.NoError(t, svc.ResetTimer(tm.ID))
	require.NoError(t, svc.DeleteSchedule(sc.ID))
	require.NoError(t, svc.DeleteTask(tk.ID))
	require.NoError(t, svc.DeleteTimer(tm.ID))

	assert.Equal(t, 11, store.saveCount())
	final := store.lastState(t)
	assert.Empty(t, final.Tasks)
	assert.Empty(t, final.Schedules)
	assert.Empty(t, final.Timers)
}

func TestFailedOperationsDoNotSave(t *testing.T) {
	store := &fakeStore{}
	svc, _ := newTestService(t, store)

	_, err := svc.ToggleTask("nope")
	assert.ErrorIs(t, err, appstate.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteTask("nope"), appstate.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteSchedule("nope"), appstate.ErrNotFound)
	assert.ErrorIs(t, svc.StartTimer("nope"), appstate.ErrNotFound)
	assert.ErrorIs(t, svc.StopTimer("nope"), appstate.ErrNotFound)
	_, err = svc.AddSchedule("x", "", "not-a-date", nil, false)
	assert.ErrorIs(t, err, appstate.ErrMalformed)

	assert.Zero(t, store.saveCount())
	st, err := svc.GetAppState()
	require.NoError(t, err)
	assert.Empty(t, st.Schedules)
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	svc, logs := newTestService(t, store)

	tk, err := svc.AddTask("keep me", "", nil)
	require.NoError(t, err)

	st, err := svc.GetAppState()
	require.NoError(t, err)
	assert.Contains(t, st.Tasks, tk.ID)
	assert.Contains(t, logs.String(), "failed to save app state")
	assert.Contains(t, logs.String(), "disk full")

	// Each save is independent: the next mutation tries again.
	_, err = svc.ToggleTask(tk.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, store.saveCount())
}

func TestConcurrentTogglesAreNotLost(t *testing.T) {
	store := &fakeStore{}
	svc, _ := newTestService(t, store)

	a, err := svc.AddTask("a", "", nil)
	require.NoError(t, err)
	b, err := svc.AddTask("b", "", nil)
	require.NoError(t, err)

	var g errgroup.Group
	for _, id := range []string{a.ID, b.ID} {
		g.Go(func() error {
			_, err := svc.ToggleTask(id)
			return err
		})
	}
	require.NoError(t, g.Wait())

	st, err := svc.GetAppState()
	require.NoError(t, err)
	assert.True(t, st.Tasks[a.ID].Completed)
	assert.True(t, st.Tasks[b.ID].Completed)

	saved := store.lastState(t)
	assert.True(t, saved.Tasks[a.ID].Completed)
	assert.True(t, saved.Tasks[b.ID].Completed)
}

func TestConcurrentMixedOperations(t *testing.T) {
	store := &fakeStore{}
	svc, logs := newTestService(t, store)

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			tk, err := svc.AddTask("t", "", nil)
			if err != nil {
				return err
			}
			_, err = svc.ToggleTask(tk.ID)
			return err
		})
		g.Go(func() error {
			tm, err := svc.CreateTimer("tm", 10, false)
			if err != nil {
				return err
			}
			return svc.StartTimer(tm.ID)
		})
	}
	require.NoError(t, g.Wait())

	st, err := svc.GetAppState()
	require.NoError(t, err)
	require.Len(t, st.Tasks, 20)
	require.Len(t, st.Timers, 20)
	for id, tk := range st.Tasks {
		assert.Equal(t, id, tk.ID)
		assert.True(t, tk.Completed)
	}
	for _, tm := range st.Timers {
		assert.True(t, tm.IsRunning)
	}
	// The last save reflects every mutation.
	saved := store.lastState(t)
	assert.Len(t, saved.Tasks, 20)
	assert.Len(t, saved.Timers, 20)

	// One intact log line per operation.
	assert.Equal(t, 80, strings.Count(logs.String(), `"message":"applied"`))
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		assert.True(t, json.Valid([]byte(line)), "log line %q", line)
	}
}

func TestChangesPublished(t *testing.T) {
	svc, _ := newTestService(t, &fakeStore{})
	ch := svc.Subscribe()
	defer svc.Unsubscribe(ch)

	tk, err := svc.AddTask("a", "", nil)
	require.NoError(t, err)
	assert.Equal(t, notify.Change{Kind: notify.KindTask, Op: "add", ID: tk.ID}, receive(t, ch))

	require.Error(t, svc.DeleteTask("nope"))
	_, err = svc.ToggleTask(tk.ID)
	require.NoError(t, err)
	assert.Equal(t, notify.Change{Kind: notify.KindTask, Op: "toggle", ID: tk.ID}, receive(t, ch))
	assert.Empty(t, ch, "failed operations publish nothing")
}

func TestSnapshotsAreDetached(t *testing.T) {
	svc, _ := newTestService(t, &fakeStore{})
	tk, err := svc.AddTask("a", "", strPtr("2024-01-20 17:00:00"))
	require.NoError(t, err)

	st, err := svc.GetAppState()
	require.NoError(t, err)
	st.Tasks[tk.ID].DueDate.Time = time.Time{}
	delete(st.Tasks, tk.ID)

	again, err := svc.GetAppState()
	require.NoError(t, err)
	require.Contains(t, again.Tasks, tk.ID)
	assert.Equal(t, 2024, again.Tasks[tk.ID].DueDate.Year())
}

func TestWithFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log-manager", "app_data.json")
	logger := zerolog.Nop()

	svc := Open(appstate.NewFileStore(path), nil, logger)
	tk, err := svc.AddTask("persisted", "", nil)
	require.NoError(t, err)
	tm, err := svc.CreateTimer("focus", 1500, true)
	require.NoError(t, err)
	require.NoError(t, svc.StartTimer(tm.ID))

	reopened := Open(appstate.NewFileStore(path), nil, logger)
	st, err := reopened.GetAppState()
	require.NoError(t, err)
	assert.Equal(t, "persisted", st.Tasks[tk.ID].Title)
	assert.True(t, st.Timers[tm.ID].IsRunning)
}

func TestPoisonedServiceRefusesWork(t *testing.T) {
	store := &fakeStore{}
	cell := appstate.NewCell(appstate.New(), &sync.Mutex{})
	svc := New(cell, store, nil, zerolog.Nop())

	assert.Panics(t, func() {
		_ = cell.Do(func(*appstate.State) error { panic("mid-write") })
	})

	_, err := svc.AddTask("a", "", nil)
	assert.ErrorIs(t, err, appstate.ErrPoisoned)
	_, err = svc.GetAppState()
	assert.ErrorIs(t, err, appstate.ErrPoisoned)
	assert.Zero(t, store.saveCount())
}

func receive(t *testing.T, ch chan notify.Change) notify.Change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(time.Second):
		t.Fatal("no change published")
		return notify.Change{}
	}
}
